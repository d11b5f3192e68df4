package domain

import (
	"context"
	"io"
)

// MaxAttachmentSize is the largest file accepted as a comment attachment.
const MaxAttachmentSize = 10 * 1024 * 1024

// UploadFile is one raw file handed over by the transport layer.
type UploadFile struct {
	Name     string
	Size     int64
	MimeType string
	Body     io.Reader
}

// StoredObject is what object storage reports back for a stored file.
type StoredObject struct {
	URL      string
	PublicID string
}

// AttachmentStorage puts raw bytes into object storage.
type AttachmentStorage interface {
	Put(ctx context.Context, name string, mimeType string, body io.Reader) (StoredObject, error)
}

type UploadUsecase interface {
	// UploadCommentFiles stores every file and returns one Attachment per file, in order.
	UploadCommentFiles(ctx context.Context, files []UploadFile) ([]Attachment, error)
}
