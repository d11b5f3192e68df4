package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-discussion/internal/repository/mysql/model"
)

// AutoMigrate creates or updates the tables used by the discussion service.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Blog{}, &model.Comment{}, &model.CommentLike{})
}
