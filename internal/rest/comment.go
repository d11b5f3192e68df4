package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/rest/middleware"
	"github.com/Guyuepp/blog-discussion/internal/rest/request"
	"github.com/Guyuepp/blog-discussion/internal/rest/response"
)

// CommentHandler represent the httphandler for comment
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// CreateComment will store the comment by given request body
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	// Get user ID from context (set by authentication middleware)
	id, ok := middleware.Identity(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	comment, err := h.Service.Create(c.Request.Context(), req.ToDomain(id.UserID))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": response.NewSingleCommentFromDomain(comment)})
}

// FetchCommentsByBlog serves both /blogs/:id/comments and /comments?blogId=
func (h *CommentHandler) FetchCommentsByBlog(c *gin.Context) {
	blogID := c.Param("id")
	if blogID == "" {
		blogID = c.Query("blogId")
	}
	if blogID == "" {
		abortWithError(c, domain.NewError(domain.ErrInvalidArgument, "blogId is required"))
		return
	}

	thread, err := h.Service.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	comments, total := response.NewThreadFromDomain(thread)
	c.JSON(http.StatusOK, gin.H{"comments": comments, "total": total})
}

// ToggleLike likes the comment, or removes the like if it is already there
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	res, err := h.Service.ToggleLike(c.Request.Context(), c.Param("id"), id.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": res.Liked, "likesCount": res.LikeCount})
}

func (h *CommentHandler) EditComment(c *gin.Context) {
	var req request.EditComment
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, ok := middleware.Identity(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	comment, err := h.Service.Edit(c.Request.Context(), c.Param("id"), id, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": response.NewSingleCommentFromDomain(comment)})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ModerateComment 管理员修改评论状态
func (h *CommentHandler) ModerateComment(c *gin.Context) {
	var req request.ModerateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	status := domain.CommentStatus(req.Status)
	if err := h.Service.Moderate(c.Request.Context(), c.Param("id"), status); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": status})
}
