package upload_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/domain/mocks"
	"github.com/Guyuepp/blog-discussion/internal/usecase/upload"
)

// smallest valid PNG header
var pngHead = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestUploadCommentFiles(t *testing.T) {
	t.Run("declared mime type", func(t *testing.T) {
		storage := mocks.NewAttachmentStorage(t)
		storage.On("Put", mock.Anything, mock.MatchedBy(func(name string) bool {
			return strings.HasSuffix(name, ".pdf")
		}), "application/pdf", mock.Anything).
			Return(domain.StoredObject{URL: "/uploads/x.pdf"}, nil).Once()

		out, err := upload.NewService(storage).UploadCommentFiles(context.TODO(), []domain.UploadFile{
			{Name: "Report.PDF", Size: 4, MimeType: "application/pdf", Body: strings.NewReader("%PDF")},
		})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, domain.KindDocument, out[0].Kind)
		assert.Equal(t, "/uploads/x.pdf", out[0].URL)
		assert.Equal(t, "Report.PDF", out[0].OriginalName)
		assert.Equal(t, int64(4), out[0].SizeBytes)
		assert.False(t, out[0].UploadedAt.IsZero())
	})

	t.Run("sniffs octet-stream and keeps the whole body", func(t *testing.T) {
		storage := mocks.NewAttachmentStorage(t)
		storage.On("Put", mock.Anything, mock.Anything, "image/png", mock.Anything).
			Run(func(args mock.Arguments) {
				b, err := io.ReadAll(args.Get(3).(io.Reader))
				assert.NoError(t, err)
				assert.Equal(t, pngHead, b)
			}).
			Return(domain.StoredObject{URL: "https://cdn/x.png", PublicID: "comments/x"}, nil).Once()

		out, err := upload.NewService(storage).UploadCommentFiles(context.TODO(), []domain.UploadFile{
			{Name: "x", Size: int64(len(pngHead)), MimeType: "application/octet-stream", Body: strings.NewReader(string(pngHead))},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.KindImage, out[0].Kind)
		assert.Equal(t, "comments/x", out[0].PublicID)
	})

	t.Run("no files", func(t *testing.T) {
		_, err := upload.NewService(mocks.NewAttachmentStorage(t)).UploadCommentFiles(context.TODO(), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := upload.NewService(mocks.NewAttachmentStorage(t)).UploadCommentFiles(context.TODO(), []domain.UploadFile{
			{Name: "ok.txt", Size: 1, MimeType: "text/plain", Body: strings.NewReader("a")},
			{Name: "big.mov", Size: domain.MaxAttachmentSize + 1, MimeType: "video/quicktime", Body: strings.NewReader("")},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "10 MiB")
	})

	t.Run("storage down", func(t *testing.T) {
		storage := mocks.NewAttachmentStorage(t)
		storage.On("Put", mock.Anything, mock.Anything, "text/plain", mock.Anything).
			Return(domain.StoredObject{}, errors.New("timeout")).Once()

		_, err := upload.NewService(storage).UploadCommentFiles(context.TODO(), []domain.UploadFile{
			{Name: "a.txt", Size: 1, MimeType: "text/plain", Body: strings.NewReader("a")},
		})
		assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	})
}
