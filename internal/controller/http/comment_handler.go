package http

import (
	"errors"
	"net/http"
	"strconv"

	"movielist/internal/entity"
	"movielist/internal/usecase"
	"movielist/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

// ListComments godoc
// @Summary      List comments for a post
// @Description  Get all comments for a post, newest first
// @Tags         comments
// @Produce      json
// @Param        post_id query int true "Post ID"
// @Success      200  {array}   entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Query("post_id"), 10, 64)
	if err != nil || postID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID for fetching comments."})
		return
	}

	comments, err := h.commentUseCase.ListForPost(postID)
	if err != nil {
		if entity.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to fetch comments for post %d: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments."})
		return
	}

	c.JSON(http.StatusOK, comments)
}

type SubmitCommentRequest struct {
	PostID   int64  `json:"post_id"`
	Username string `json:"username"`
	Comment  string `json:"comment"`
}

// SubmitComment godoc
// @Summary      Submit a comment
// @Description  Add a comment to a post. Username and comment are HTML-escaped before storage.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request body SubmitCommentRequest true "Comment data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	var req SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields (post_id, username, comment)."})
		return
	}

	comment, err := h.commentUseCase.SubmitComment(req.PostID, req.Username, req.Comment)
	if err != nil {
		if entity.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, entity.ErrPostNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID. Cannot add comment to non-existent post."})
			return
		}
		h.logger.Error("Failed to save comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while saving comment."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"comment": comment,
	})
}
