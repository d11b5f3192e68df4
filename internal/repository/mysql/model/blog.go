package model

import (
	"time"

	"github.com/Guyuepp/blog-discussion/domain"
)

type Blog struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Title           string    `gorm:"type:varchar(255);not null"`
	AuthorID        string    `gorm:"column:author_id;type:varchar(36);not null"`
	CommentsEnabled bool      `gorm:"column:comments_enabled;default:true"`
	CreatedAt       time.Time `gorm:"type:datetime(3)"`
}

func (Blog) TableName() string {
	return "blog"
}

func (m *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		ID:              m.ID,
		Title:           m.Title,
		AuthorID:        m.AuthorID,
		CommentsEnabled: m.CommentsEnabled,
		CreatedAt:       m.CreatedAt,
	}
}
