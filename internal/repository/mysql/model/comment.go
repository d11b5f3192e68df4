package model

import (
	"time"

	"github.com/Guyuepp/blog-discussion/domain"
)

// Comment 点赞集合存放在 comment_likes 表, 这里只保留计数
type Comment struct {
	ID           string              `gorm:"primaryKey;type:varchar(36)"`
	BlogID       string              `gorm:"column:blog_id;type:varchar(36);not null;index:idx_blog_created,priority:1"`
	AuthorID     string              `gorm:"column:author_id;type:varchar(36);not null;index"`
	AuthorName   string              `gorm:"column:author_name;type:varchar(100)"`
	AuthorAvatar string              `gorm:"column:author_avatar;type:varchar(512)"`
	Content      string              `gorm:"type:text;not null"`
	Attachments  []domain.Attachment `gorm:"serializer:json;type:json"`
	ParentID     string              `gorm:"column:parent_id;type:varchar(36);index"`
	Status       string              `gorm:"type:varchar(16);not null;default:active"`
	LikeCount    int64               `gorm:"column:like_count;default:0"`
	IsEdited     bool                `gorm:"column:is_edited;default:false"`
	EditedAt     *time.Time          `gorm:"column:edited_at;type:datetime(3)"`
	CreatedAt    time.Time           `gorm:"type:datetime(3);index:idx_blog_created,priority:2,sort:desc"`
	UpdatedAt    time.Time           `gorm:"type:datetime(3)"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	m := &Comment{
		ID:          c.ID,
		BlogID:      c.BlogID,
		AuthorID:    c.AuthorID,
		Content:     c.Content,
		Attachments: c.Attachments,
		ParentID:    c.ParentID,
		Status:      string(c.Status),
		LikeCount:   int64(len(c.Likes)),
		IsEdited:    c.IsEdited,
		EditedAt:    c.EditedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Author != nil {
		m.AuthorName = c.Author.Name
		m.AuthorAvatar = c.Author.AvatarURL
	}
	return m
}

// ToDomain returns an empty like set, the repository fills it from comment_likes.
func (m *Comment) ToDomain() *domain.Comment {
	c := &domain.Comment{
		ID:          m.ID,
		BlogID:      m.BlogID,
		AuthorID:    m.AuthorID,
		Content:     m.Content,
		Attachments: m.Attachments,
		ParentID:    m.ParentID,
		Status:      domain.CommentStatus(m.Status),
		IsEdited:    m.IsEdited,
		EditedAt:    m.EditedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.AuthorName != "" {
		c.Author = &domain.AuthorView{ID: m.AuthorID, Name: m.AuthorName, AvatarURL: m.AuthorAvatar}
	}
	c.Normalize()
	return c
}
