package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/repository/mysql/model"
)

type blogRepository struct {
	DB *gorm.DB
}

var _ domain.BlogRepository = (*blogRepository)(nil)

func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{db}
}

func (m *blogRepository) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	var blog model.Blog
	err := m.DB.WithContext(ctx).First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Blog{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Blog{}, err
	}
	return blog.ToDomain(), nil
}

func (m *blogRepository) FetchIDs(ctx context.Context, cursor string, limit int64) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Blog{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
