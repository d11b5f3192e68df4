package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/config"
	"github.com/Guyuepp/blog-discussion/internal/repository"
	lruRepo "github.com/Guyuepp/blog-discussion/internal/repository/lru"
	mongoRepo "github.com/Guyuepp/blog-discussion/internal/repository/mongo"
	mysqlRepo "github.com/Guyuepp/blog-discussion/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/blog-discussion/internal/repository/redis"
	"github.com/Guyuepp/blog-discussion/internal/rest"
	"github.com/Guyuepp/blog-discussion/internal/rest/middleware"
	"github.com/Guyuepp/blog-discussion/internal/storage"
	"github.com/Guyuepp/blog-discussion/internal/usecase/comment"
	"github.com/Guyuepp/blog-discussion/internal/usecase/upload"
	"github.com/Guyuepp/blog-discussion/internal/usecase/user"
	"github.com/Guyuepp/blog-discussion/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
	maxUploadMemory    = 32 << 20
)

// stores 是按 STORE_DRIVER 选出的持久化实现
type stores struct {
	comments domain.CommentRepository
	blogs    domain.BlogRepository
	users    domain.UserRepository
	close    func()
}

func openMySQL(cfg config.Config) stores {
	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if err = dbErr; err == nil {
				if err = sqlDB.Ping(); err == nil {
					break
				}
				_ = sqlDB.Close()
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}

	if err := mysqlRepo.AutoMigrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	return stores{
		comments: mysqlRepo.NewCommentRepository(db),
		blogs:    mysqlRepo.NewBlogRepository(db),
		users:    mysqlRepo.NewUserRepository(db),
		close: func() {
			sqlDB, err := db.DB()
			if err != nil {
				logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
				return
			}
			if err := sqlDB.Close(); err != nil {
				logrus.Errorf("got error when closing the DB connection: %v", err)
			}
		},
	}
}

func openMongo(cfg config.Config) stores {
	client, err := mongodrv.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logrus.Fatalf("failed to create mongo client: %v", err)
	}

	for i := range dbMaxRetry {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = client.Ping(ctx, readpref.Primary())
		cancel()
		if err == nil {
			break
		}
		logrus.Warnf("failed to ping mongo (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	if err != nil {
		logrus.Fatalf("could not connect to mongo after retries: %v", err)
	}

	db := client.Database(cfg.MongoDatabase)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := mongoRepo.EnsureIndexes(ctx, db); err != nil {
		logrus.Fatalf("failed to create mongo indexes: %v", err)
	}

	return stores{
		comments: mongoRepo.NewCommentRepository(db),
		blogs:    mongoRepo.NewBlogRepository(db),
		users:    mongoRepo.NewUserRepository(db),
		close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				logrus.Errorf("got error when closing the mongo connection: %v", err)
			}
		},
	}
}

func newAttachmentStorage(cfg config.Config) domain.AttachmentStorage {
	if cfg.UploadDriver == "cloudinary" {
		cld, err := storage.NewCloudinary(storage.CloudinaryConfig{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.CloudinaryFolder,
		})
		if err != nil {
			logrus.Fatalf("failed to create cloudinary client: %v", err)
		}
		return cld
	}
	local, err := storage.NewLocal(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		logrus.Fatalf("failed to prepare upload dir: %v", err)
	}
	return local
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	cfg.SetupLogger()

	// prepare database
	var st stores
	if cfg.StoreDriver == "mongo" {
		st = openMongo(cfg)
	} else {
		st = openMySQL(cfg)
	}
	defer st.close()

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr(),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	// Comment相关的三层架构
	// 1. DB层 st.comments
	// 2. Cache层
	threadCache := myRedisCache.NewCommentCache(client)
	likeCache := myRedisCache.NewLikeCache(client)
	// 3. Repository协调层
	commentRepo := repository.NewCommentRepository(st.comments, threadCache, cfg.ThreadCacheTTL)

	userRepo, err := lruRepo.NewUserRepository(st.users, cfg.AuthorCacheSize, cfg.AuthorCacheTTL)
	if err != nil {
		logrus.Fatalf("failed to create author cache: %v", err)
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	likesSyncer := workers.NewSyncLikesWorker(st.comments, likeCache)
	go likesSyncer.Start(ctx)

	// Prepare bloom filter
	blogIDSyncer := workers.NewSyncBlogIDsWorker(st.blogs, bloomRepo, cfg.BloomRefresh)
	n, err := blogIDSyncer.Sync(ctx)
	if err != nil {
		logrus.Errorf("failed to init bloom filter: %v", err)
		return
	}
	logrus.Infof("bloom filter loaded with %d blog ids", n)
	go blogIDSyncer.Start(ctx)

	// Build service Layer
	commentSvc := comment.NewService(commentRepo, st.blogs, userRepo, bloomRepo, likeCache, likesSyncer, cfg.AuthorPolicy)
	userSvc := user.NewService(st.users, cfg.JWTSecret, cfg.JWTTTL)
	uploadSvc := upload.NewService(newAttachmentStorage(cfg))

	commentHandler := rest.NewCommentHandler(commentSvc)
	userHandler := rest.NewUserHandler(userSvc)
	uploadHandler := rest.NewUploadHandler(uploadSvc)

	// prepare gin
	route := gin.New()
	route.MaxMultipartMemory = maxUploadMemory
	route.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	authMiddleware := middleware.AuthMiddleware(string(cfg.JWTSecret))
	rateLimit := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Register routes
	route.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.UploadDriver == "local" {
		route.Static("/uploads", cfg.UploadDir)
	}

	route.POST("/register", rateLimit, userHandler.Register)
	route.POST("/login", rateLimit, userHandler.Login)

	route.GET("/comments", commentHandler.FetchCommentsByBlog)
	route.GET("/blogs/:id/comments", commentHandler.FetchCommentsByBlog)

	authorized := route.Group("/")
	authorized.Use(authMiddleware, rateLimit)
	{
		authorized.POST("/comments", commentHandler.CreateComment)
		authorized.POST("/comments/:id/like", commentHandler.ToggleLike)
		authorized.PATCH("/comments/:id", commentHandler.EditComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)
		authorized.POST("/uploads/comment-files", uploadHandler.UploadCommentFiles)
	}

	admin := route.Group("/admin")
	admin.Use(authMiddleware, middleware.RequireRole(domain.RoleAdmin))
	{
		admin.PATCH("/comments/:id/status", commentHandler.ModerateComment)
	}

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	select {
	case <-likesSyncer.Done():
	case <-shutdownCtx.Done():
		logrus.Warn("like sync worker did not finish in time")
	}

	logrus.Info("Server exiting")
}
