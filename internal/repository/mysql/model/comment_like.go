package model

import (
	"time"

	"github.com/Guyuepp/blog-discussion/domain"
)

// CommentLike 一条点赞记录, (comment_id, user_id) 唯一
type CommentLike struct {
	CommentID string    `gorm:"column:comment_id;type:varchar(36);primaryKey"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);primaryKey"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func NewCommentLikeFromDomain(cl domain.CommentLike) CommentLike {
	createdAt := cl.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return CommentLike{
		CommentID: cl.CommentID,
		UserID:    cl.UserID,
		CreatedAt: createdAt,
	}
}
