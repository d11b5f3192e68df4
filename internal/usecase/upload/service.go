package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/metrics"
)

// sniffLen 与 mimetype 默认读取长度一致
const sniffLen = 3072

type Service struct {
	storage domain.AttachmentStorage
	maxSize int64
}

var _ domain.UploadUsecase = (*Service)(nil)

func NewService(storage domain.AttachmentStorage) *Service {
	return &Service{
		storage: storage,
		maxSize: domain.MaxAttachmentSize,
	}
}

// UploadCommentFiles checks every file before storing any of them.
func (s *Service) UploadCommentFiles(ctx context.Context, files []domain.UploadFile) ([]domain.Attachment, error) {
	if len(files) == 0 {
		return nil, domain.NewError(domain.ErrInvalidArgument, "no files uploaded")
	}
	for _, f := range files {
		if f.Size > s.maxSize {
			return nil, domain.NewError(domain.ErrInvalidArgument,
				fmt.Sprintf("%s is larger than the %s limit", f.Name, humanize.IBytes(uint64(s.maxSize))))
		}
		if f.Body == nil {
			return nil, domain.NewError(domain.ErrInvalidArgument, fmt.Sprintf("%s has no content", f.Name))
		}
	}

	out := make([]domain.Attachment, 0, len(files))
	for _, f := range files {
		body, mimeType, err := detectMIME(f.Body, f.MimeType)
		if err != nil {
			return nil, domain.NewError(domain.ErrInvalidArgument, fmt.Sprintf("failed to read %s", f.Name))
		}

		objectName := uuid.NewString() + strings.ToLower(path.Ext(f.Name))
		obj, err := s.storage.Put(ctx, objectName, mimeType, body)
		if err != nil {
			logrus.Errorf("failed to store attachment %s: %v", f.Name, err)
			return nil, domain.ErrServiceUnavailable
		}

		a := domain.Attachment{
			Kind:         domain.KindFromMIME(mimeType),
			URL:          obj.URL,
			PublicID:     obj.PublicID,
			Filename:     objectName,
			OriginalName: f.Name,
			SizeBytes:    f.Size,
			MimeType:     mimeType,
			UploadedAt:   time.Now(),
		}
		metrics.AttachmentsUploaded.WithLabelValues(string(a.Kind)).Inc()
		out = append(out, a)
	}
	return out, nil
}

// detectMIME sniffs the content when the client did not send a usable type.
// The returned reader still yields the whole body.
func detectMIME(body io.Reader, declared string) (io.Reader, string, error) {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return body, declared, nil
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", err
	}
	head = head[:n]

	detected, _, _ := strings.Cut(mimetype.Detect(head).String(), ";")
	return io.MultiReader(bytes.NewReader(head), body), detected, nil
}
