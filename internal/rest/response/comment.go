package response

import (
	"time"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/render"
)

const DateTimeFormat = time.RFC3339

type Attachment struct {
	Type         string `json:"type"`
	URL          string `json:"url"`
	PublicID     string `json:"publicId,omitempty"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
	UploadedAt   string `json:"uploadedAt"`
}

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Comment struct {
	ID          string       `json:"id"`
	BlogID      string       `json:"blogId"`
	Author      Author       `json:"author"`
	Content     string       `json:"content"`
	ContentHTML string       `json:"contentHtml"`
	Attachments []Attachment `json:"attachments"`
	ParentID    string       `json:"parentId,omitempty"`
	Likes       []string     `json:"likes"`
	LikesCount  int          `json:"likesCount"`
	Status      string       `json:"status"`
	IsEdited    bool         `json:"isEdited"`
	EditedAt    string       `json:"editedAt,omitempty"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`

	// Replies 子评论列表, 只在顶层评论上出现
	Replies []*Comment `json:"replies,omitempty"`
}

func NewAttachmentsFromDomain(atts []domain.Attachment) []Attachment {
	res := make([]Attachment, 0, len(atts))
	for _, a := range atts {
		res = append(res, Attachment{
			Type:         string(a.Kind),
			URL:          a.URL,
			PublicID:     a.PublicID,
			Filename:     a.Filename,
			OriginalName: a.OriginalName,
			Size:         a.SizeBytes,
			MimeType:     a.MimeType,
			UploadedAt:   a.UploadedAt.Format(DateTimeFormat),
		})
	}
	return res
}

func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	author := domain.PlaceholderAuthor(c.AuthorID)
	if c.Author != nil {
		author = *c.Author
	}
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	res := &Comment{
		ID:          c.ID,
		BlogID:      c.BlogID,
		Author:      Author{ID: author.ID, Name: author.Name, Avatar: author.AvatarURL},
		Content:     c.Content,
		ContentHTML: render.Markdown(c.Content),
		Attachments: NewAttachmentsFromDomain(c.Attachments),
		ParentID:    c.ParentID,
		Likes:       likes,
		LikesCount:  len(likes),
		Status:      string(c.Status),
		IsEdited:    c.IsEdited,
		CreatedAt:   c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:   c.UpdatedAt.Format(DateTimeFormat),
	}
	if c.EditedAt != nil {
		res.EditedAt = c.EditedAt.Format(DateTimeFormat)
	}
	return res
}

// NewThreadFromDomain: Domain -> Response, 同时返回评论总数(含回复)
func NewThreadFromDomain(thread []*domain.ThreadNode) ([]*Comment, int) {
	res := make([]*Comment, 0, len(thread))
	total := 0
	for _, node := range thread {
		if node == nil || node.Comment == nil {
			continue
		}
		root := NewSingleCommentFromDomain(node.Comment)
		root.Replies = make([]*Comment, 0, len(node.Replies))
		for _, r := range node.Replies {
			if r == nil || r.Comment == nil {
				continue
			}
			root.Replies = append(root.Replies, NewSingleCommentFromDomain(r.Comment))
		}
		total += 1 + len(root.Replies)
		res = append(res, root)
	}
	return res, total
}
