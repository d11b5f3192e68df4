package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"

	"github.com/Guyuepp/blog-discussion/domain"
)

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	// Endpoint 覆盖 SDK 默认的上传地址, 为空时使用官方地址
	Endpoint string
}

// Cloudinary 使用签名上传接口保存附件
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

var _ domain.AttachmentStorage = (*Cloudinary)(nil)

func NewCloudinary(cfg CloudinaryConfig) (*Cloudinary, error) {
	conf, err := config.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	if cfg.Endpoint != "" {
		conf.API.UploadPrefix = strings.TrimRight(cfg.Endpoint, "/")
	}
	// 各个 API 持有配置的副本, 必须在创建前设置好
	cld, err := cloudinary.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld, folder: cfg.Folder}, nil
}

func (c *Cloudinary) Put(ctx context.Context, name string, mimeType string, body io.Reader) (domain.StoredObject, error) {
	res, err := c.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder:       c.folder,
		PublicID:     strings.TrimSuffix(name, path.Ext(name)),
		ResourceType: "auto",
		Overwrite:    api.Bool(false),
	})
	if err != nil {
		return domain.StoredObject{}, fmt.Errorf("cloudinary: upload %s: %w", name, err)
	}
	if res.Error.Message != "" {
		return domain.StoredObject{}, fmt.Errorf("cloudinary: upload failed: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return domain.StoredObject{}, errors.New("cloudinary: upload returned no url")
	}
	return domain.StoredObject{URL: res.SecureURL, PublicID: res.PublicID}, nil
}
