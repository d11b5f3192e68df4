package request

import (
	"time"

	"github.com/Guyuepp/blog-discussion/domain"
)

type Attachment struct {
	Type         string    `json:"type"`
	URL          string    `json:"url" binding:"required"`
	PublicID     string    `json:"publicId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	SizeBytes    int64     `json:"sizeBytes" binding:"gte=0"`
	Size         int64     `json:"size" binding:"gte=0"` // 旧字段名
	MimeType     string    `json:"mimeType"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type CreateComment struct {
	BlogID          string       `json:"blogId" binding:"required"`
	Content         string       `json:"content"`
	ParentCommentID string       `json:"parentCommentId"`
	ParentID        string       `json:"parentId"` // parentCommentId 的别名
	Attachments     []Attachment `json:"attachments" binding:"omitempty,dive"`
}

func (a *Attachment) sizeBytes() int64 {
	if a.SizeBytes > 0 {
		return a.SizeBytes
	}
	return a.Size
}

func (r *CreateComment) parentID() string {
	if r.ParentCommentID != "" {
		return r.ParentCommentID
	}
	return r.ParentID
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain(authorID string) domain.CreateCommentInput {
	atts := make([]domain.Attachment, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		atts = append(atts, domain.Attachment{
			Kind:         domain.AttachmentKind(a.Type),
			URL:          a.URL,
			PublicID:     a.PublicID,
			Filename:     a.Filename,
			OriginalName: a.OriginalName,
			SizeBytes:    a.sizeBytes(),
			MimeType:     a.MimeType,
			UploadedAt:   a.UploadedAt,
		})
	}
	return domain.CreateCommentInput{
		BlogID:      r.BlogID,
		AuthorID:    authorID,
		Content:     r.Content,
		ParentID:    r.parentID(),
		Attachments: atts,
	}
}

type EditComment struct {
	Content string `json:"content"`
}

type ModerateComment struct {
	Status string `json:"status" binding:"required,oneof=active hidden deleted"`
}
