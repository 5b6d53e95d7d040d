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

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary      List posts
// @Description  Get all posts, newest first. Descriptions are omitted from the listing.
// @Tags         posts
// @Produce      json
// @Success      200  {array}   entity.PostSummary
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts()
	if err != nil {
		h.logger.Error("Failed to fetch posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Get full post details including the description
// @Tags         posts
// @Produce      json
// @Param        id query int true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /post [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID specified."})
		return
	}

	post, err := h.postUseCase.GetPost(id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found."})
			return
		}
		if entity.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to fetch post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post details."})
		return
	}

	c.JSON(http.StatusOK, post)
}

type BumpViewRequest struct {
	ID int64 `json:"id"`
}

// BumpView godoc
// @Summary      Increment post view count
// @Description  Atomically increment the view counter and return the new value. Bumping a missing post is a no-op.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body BumpViewRequest true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /view [post]
func (h *PostHandler) BumpView(c *gin.Context) {
	var req BumpViewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID provided."})
		return
	}

	newCount, err := h.postUseCase.BumpView(req.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "Post not found or view count not updated.",
			})
			return
		}
		if entity.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update view count for post %d: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update view count."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"new_count": newCount,
	})
}
