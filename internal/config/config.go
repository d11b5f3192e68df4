package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-discussion/domain"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultBloomBitSize = 10000000
)

type Config struct {
	ServerAddress  string
	ContextTimeout time.Duration
	StoreDriver    string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	MongoURI      string
	MongoDatabase string

	CacheHost string
	CachePort string
	CachePass string
	CacheDB   int

	BloomBitSize   uint64
	BloomRefresh   time.Duration
	ThreadCacheTTL time.Duration

	JWTSecret []byte
	JWTTTL    time.Duration

	AuthorPolicy    domain.AuthorPolicy
	AuthorCacheSize int
	AuthorCacheTTL  time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	UploadDriver        string
	UploadDir           string
	UploadBaseURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	LogLevel  string
	LogFormat string
}

// Load 读取 .env (可选) 和环境变量
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env not loaded, using process environment")
	}

	cfg := Config{
		ServerAddress:  str("SERVER_ADDRESS", defaultAddress),
		ContextTimeout: seconds("CONTEXT_TIMEOUT", defaultTimeout),
		StoreDriver:    strings.ToLower(str("STORE_DRIVER", "mysql")),

		DBHost: os.Getenv("DATABASE_HOST"),
		DBPort: str("DATABASE_PORT", "3306"),
		DBUser: os.Getenv("DATABASE_USER"),
		DBPass: os.Getenv("DATABASE_PASS"),
		DBName: os.Getenv("DATABASE_NAME"),

		MongoURI:      str("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: str("MONGO_DATABASE", "blog"),

		CacheHost: str("CACHE_HOST", "localhost"),
		CachePort: str("CACHE_PORT", "6379"),
		CachePass: os.Getenv("CACHE_PASS"),
		CacheDB:   integer("CACHE_DB", 0),

		BloomBitSize:   uint64(integer("BLOOM_FILTER_SIZE", defaultBloomBitSize)),
		BloomRefresh:   seconds("BLOOM_REFRESH_SECONDS", 60),
		ThreadCacheTTL: seconds("THREAD_CACHE_SECONDS", 30),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		JWTTTL:    time.Duration(integer("JWT_EXPIRE_HOURS", 24)) * time.Hour,

		AuthorPolicy:    domain.AuthorPolicy(strings.ToLower(str("AUTHOR_POLICY", string(domain.AuthorJoinAtRead)))),
		AuthorCacheSize: integer("AUTHOR_CACHE_SIZE", 500),
		AuthorCacheTTL:  seconds("AUTHOR_CACHE_SECONDS", 60),

		RateLimitRPS:   float("RATE_LIMIT_RPS", 5),
		RateLimitBurst: integer("RATE_LIMIT_BURST", 10),

		UploadDriver:        strings.ToLower(str("UPLOAD_DRIVER", "local")),
		UploadDir:           str("UPLOAD_DIR", "./uploads"),
		UploadBaseURL:       str("UPLOAD_BASE_URL", "/uploads"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    str("CLOUDINARY_FOLDER", "blog-comments"),

		LogLevel:  str("LOG_LEVEL", "info"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case "mysql", "mongo":
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.AuthorPolicy {
	case domain.AuthorJoinAtRead, domain.AuthorSnapshotAtWrite:
	default:
		return fmt.Errorf("unsupported AUTHOR_POLICY %q", c.AuthorPolicy)
	}
	switch c.UploadDriver {
	case "local":
	case "cloudinary":
		if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
			return fmt.Errorf("cloudinary upload driver needs CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")
		}
	default:
		return fmt.Errorf("unsupported UPLOAD_DRIVER %q", c.UploadDriver)
	}
	if len(c.JWTSecret) == 0 {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// DSN 是 gorm mysql 驱动使用的连接串
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func (c Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}

// SetupLogger 配置 logrus 全局 logger
func (c Config) SetupLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("failed to parse %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}

func float(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logrus.Warnf("failed to parse %s=%q, using default %v", key, v, def)
		return def
	}
	return n
}

func seconds(key string, def int) time.Duration {
	return time.Duration(integer(key, def)) * time.Second
}
