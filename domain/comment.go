package domain

import (
	"context"
	"slices"
	"strings"
	"time"
)

// AttachmentKind is the coarse category of an uploaded file.
type AttachmentKind string

const (
	KindImage    AttachmentKind = "image"
	KindDocument AttachmentKind = "document"
	KindVideo    AttachmentKind = "video"
	KindAudio    AttachmentKind = "audio"
	KindOther    AttachmentKind = "other"
)

// KindFromMIME infers the attachment kind from a MIME type.
func KindFromMIME(mimeType string) AttachmentKind {
	mt := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(mt, "image/"):
		return KindImage
	case strings.HasPrefix(mt, "video/"):
		return KindVideo
	case strings.HasPrefix(mt, "audio/"):
		return KindAudio
	case strings.Contains(mt, "pdf"), strings.Contains(mt, "document"), strings.Contains(mt, "msword"):
		return KindDocument
	default:
		return KindOther
	}
}

// Attachment describes one uploaded file embedded in a comment.
type Attachment struct {
	Kind         AttachmentKind `json:"type"`
	URL          string         `json:"url"`
	PublicID     string         `json:"publicId,omitempty"`
	Filename     string         `json:"filename"`
	OriginalName string         `json:"originalName"`
	SizeBytes    int64          `json:"size"`
	MimeType     string         `json:"mimeType"`
	UploadedAt   time.Time      `json:"uploadedAt"`
}

// CommentStatus is the moderation state of a comment. Comments are never physically removed.
type CommentStatus string

const (
	StatusActive  CommentStatus = "active"
	StatusDeleted CommentStatus = "deleted"
	StatusHidden  CommentStatus = "hidden"
)

func (s CommentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusDeleted, StatusHidden:
		return true
	}
	return false
}

// Comment is one message in a blog's discussion.
type Comment struct {
	ID          string        `json:"id"`
	BlogID      string        `json:"blogId"`
	AuthorID    string        `json:"authorId"`
	Author      *AuthorView   `json:"author,omitempty"`
	Content     string        `json:"content"`
	Attachments []Attachment  `json:"attachments"`
	ParentID    string        `json:"parentId,omitempty"` // empty for top-level comments
	Likes       []string      `json:"likes"`
	Status      CommentStatus `json:"status"`
	IsEdited    bool          `json:"isEdited"`
	EditedAt    *time.Time    `json:"editedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (c *Comment) IsTopLevel() bool {
	return c.ParentID == ""
}

func (c *Comment) LikedBy(userID string) bool {
	return slices.Contains(c.Likes, userID)
}

// Normalize replaces absent collections with empty ones so callers never see nil.
// Records written before attachments existed come back with a nil slice.
func (c *Comment) Normalize() {
	if c.Attachments == nil {
		c.Attachments = []Attachment{}
	}
	if c.Likes == nil {
		c.Likes = []string{}
	}
}

// ThreadNode is a comment together with its direct replies, as rendered.
type ThreadNode struct {
	*Comment
	Replies []*ThreadNode `json:"replies"`
}

// CreateCommentInput carries what a caller submits when posting a comment.
type CreateCommentInput struct {
	BlogID      string
	AuthorID    string
	Content     string
	Attachments []Attachment
	ParentID    string
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, in CreateCommentInput) (*Comment, error)
	ListByBlog(ctx context.Context, blogID string) ([]*ThreadNode, error)
	ToggleLike(ctx context.Context, commentID string, userID string) (LikeResult, error)
	Edit(ctx context.Context, commentID string, actor Identity, content string) (*Comment, error)
	Delete(ctx context.Context, commentID string, actor Identity) error
	Moderate(ctx context.Context, commentID string, status CommentStatus) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store persists a new comment and backfills its ID.
	Store(ctx context.Context, c *Comment) error

	// GetByID returns ErrNotFound if the comment doesn't exist, whatever its status.
	GetByID(ctx context.Context, id string) (*Comment, error)

	// FetchByBlog returns every comment of a blog with the given status, in any order.
	FetchByBlog(ctx context.Context, blogID string, status CommentStatus) ([]*Comment, error)

	// Update writes content, edit markers and status of an existing comment.
	Update(ctx context.Context, c *Comment) error

	// ToggleLike flips userID's membership in the like set atomically inside the store.
	ToggleLike(ctx context.Context, commentID string, userID string) (LikeResult, error)

	// ApplyLikeChanges adds and removes like set members in one batch.
	ApplyLikeChanges(ctx context.Context, changes LikeStateChanges) error
}

// CommentCache caches the flat comment list of a blog.
type CommentCache interface {
	// GetThread returns ErrCacheMiss when nothing is cached for blogID.
	GetThread(ctx context.Context, blogID string) (comments []*Comment, expired bool, err error)
	SetThread(ctx context.Context, blogID string, comments []*Comment, ttl time.Duration) error
	DeleteThread(ctx context.Context, blogID string) error
}
