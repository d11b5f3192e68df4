package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Guyuepp/blog-discussion/domain"
)

const (
	CollectionComments = "comments"
	CollectionBlogs    = "blogs"
	CollectionUsers    = "users"
)

// parseID 将十六进制字符串转换为 ObjectID
func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, domain.ErrMalformedID
	}
	return oid, nil
}

type attachmentDocument struct {
	Kind         string    `bson:"type"`
	URL          string    `bson:"url"`
	PublicID     string    `bson:"public_id,omitempty"`
	Filename     string    `bson:"filename"`
	OriginalName string    `bson:"original_name"`
	SizeBytes    int64     `bson:"size"`
	MimeType     string    `bson:"mime_type"`
	UploadedAt   time.Time `bson:"uploaded_at"`
}

type commentDocument struct {
	ID            bson.ObjectID        `bson:"_id,omitempty"`
	Blog          bson.ObjectID        `bson:"blog"`
	Author        bson.ObjectID        `bson:"author"`
	AuthorView    *domain.AuthorView   `bson:"author_view,omitempty"`
	Content       string               `bson:"content"`
	Attachments   []attachmentDocument `bson:"attachments,omitempty"`
	ParentComment *bson.ObjectID       `bson:"parent_comment,omitempty"`
	Likes         []bson.ObjectID      `bson:"likes"`
	Status        string               `bson:"status"`
	IsEdited      bool                 `bson:"is_edited"`
	EditedAt      *time.Time           `bson:"edited_at,omitempty"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

func newCommentDocument(c *domain.Comment) (*commentDocument, error) {
	blogID, err := parseID(c.BlogID)
	if err != nil {
		return nil, err
	}
	authorID, err := parseID(c.AuthorID)
	if err != nil {
		return nil, err
	}

	doc := &commentDocument{
		Blog:        blogID,
		Author:      authorID,
		AuthorView:  c.Author,
		Content:     c.Content,
		Attachments: make([]attachmentDocument, 0, len(c.Attachments)),
		Likes:       make([]bson.ObjectID, 0, len(c.Likes)),
		Status:      string(c.Status),
		IsEdited:    c.IsEdited,
		EditedAt:    c.EditedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.ID != "" {
		if doc.ID, err = parseID(c.ID); err != nil {
			return nil, err
		}
	}
	if c.ParentID != "" {
		parentID, err := parseID(c.ParentID)
		if err != nil {
			return nil, err
		}
		doc.ParentComment = &parentID
	}
	for _, uid := range c.Likes {
		oid, err := parseID(uid)
		if err != nil {
			return nil, err
		}
		doc.Likes = append(doc.Likes, oid)
	}
	for _, a := range c.Attachments {
		doc.Attachments = append(doc.Attachments, attachmentDocument{
			Kind:         string(a.Kind),
			URL:          a.URL,
			PublicID:     a.PublicID,
			Filename:     a.Filename,
			OriginalName: a.OriginalName,
			SizeBytes:    a.SizeBytes,
			MimeType:     a.MimeType,
			UploadedAt:   a.UploadedAt,
		})
	}
	return doc, nil
}

// toDomain 旧文档可能没有 attachments 字段
func (d *commentDocument) toDomain() *domain.Comment {
	c := &domain.Comment{
		ID:          d.ID.Hex(),
		BlogID:      d.Blog.Hex(),
		AuthorID:    d.Author.Hex(),
		Author:      d.AuthorView,
		Content:     d.Content,
		Attachments: make([]domain.Attachment, 0, len(d.Attachments)),
		Likes:       make([]string, 0, len(d.Likes)),
		Status:      domain.CommentStatus(d.Status),
		IsEdited:    d.IsEdited,
		EditedAt:    d.EditedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	if d.ParentComment != nil {
		c.ParentID = d.ParentComment.Hex()
	}
	for _, uid := range d.Likes {
		c.Likes = append(c.Likes, uid.Hex())
	}
	for _, a := range d.Attachments {
		c.Attachments = append(c.Attachments, domain.Attachment{
			Kind:         domain.AttachmentKind(a.Kind),
			URL:          a.URL,
			PublicID:     a.PublicID,
			Filename:     a.Filename,
			OriginalName: a.OriginalName,
			SizeBytes:    a.SizeBytes,
			MimeType:     a.MimeType,
			UploadedAt:   a.UploadedAt,
		})
	}
	return c
}

type blogDocument struct {
	ID              bson.ObjectID `bson:"_id"`
	Title           string        `bson:"title"`
	Author          bson.ObjectID `bson:"author"`
	CommentsEnabled *bool         `bson:"comments_enabled,omitempty"`
	CreatedAt       time.Time     `bson:"created_at"`
}

// toDomain 未设置 comments_enabled 的博客默认允许评论
func (d *blogDocument) toDomain() domain.Blog {
	enabled := true
	if d.CommentsEnabled != nil {
		enabled = *d.CommentsEnabled
	}
	return domain.Blog{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		AuthorID:        d.Author.Hex(),
		CommentsEnabled: enabled,
		CreatedAt:       d.CreatedAt,
	}
}

type userDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	AvatarURL string        `bson:"avatar,omitempty"`
	Role      string        `bson:"role"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

func (d *userDocument) toDomain() domain.User {
	role := d.Role
	if role == "" {
		role = domain.RoleUser
	}
	return domain.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		AvatarURL: d.AvatarURL,
		Role:      role,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
