package rest

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/rest/response"
)

const uploadField = "files"

type UploadHandler struct {
	Service domain.UploadUsecase
}

func NewUploadHandler(svc domain.UploadUsecase) *UploadHandler {
	return &UploadHandler{Service: svc}
}

// UploadCommentFiles stores the multipart files and returns their attachment records
func (h *UploadHandler) UploadCommentFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		abortWithError(c, domain.NewError(domain.ErrInvalidArgument, "no files uploaded"))
		return
	}
	headers := form.File[uploadField]

	files := make([]domain.UploadFile, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			abortWithError(c, domain.NewError(domain.ErrInvalidArgument, "failed to read "+fh.Filename))
			return
		}
		opened = append(opened, f)
		files = append(files, domain.UploadFile{
			Name:     fh.Filename,
			Size:     fh.Size,
			MimeType: fh.Header.Get("Content-Type"),
			Body:     f,
		})
	}

	atts, err := h.Service.UploadCommentFiles(c.Request.Context(), files)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": response.NewAttachmentsFromDomain(atts)})
}
