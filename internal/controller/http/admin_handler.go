package http

import (
	"errors"
	"net/http"
	"strconv"

	"movielist/internal/entity"
	"movielist/internal/usecase"
	"movielist/pkg/logger"
	"movielist/pkg/middleware"
	"movielist/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	flashSuccess = "success"
	flashDanger  = "danger"
	flashWarning = "warning"
)

// AdminHandler serves the whole admin panel from a single /admin URL.
// Pages and mutations are selected by the action query parameter, login
// and post saves by form markers on POST.
type AdminHandler struct {
	postUseCase    usecase.PostUseCase
	commentUseCase usecase.CommentUseCase
	authUseCase    usecase.AuthUseCase
	sessions       session.Store
	cookieName     string
	logger         *logger.Logger
}

func NewAdminHandler(
	postUseCase usecase.PostUseCase,
	commentUseCase usecase.CommentUseCase,
	authUseCase usecase.AuthUseCase,
	sessions session.Store,
	cookieName string,
	logger *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		postUseCase:    postUseCase,
		commentUseCase: commentUseCase,
		authUseCase:    authUseCase,
		sessions:       sessions,
		cookieName:     cookieName,
		logger:         logger,
	}
}

func (h *AdminHandler) Dispatch(c *gin.Context) {
	if c.Request.Method == http.MethodPost && c.PostForm("login") == "1" {
		h.handleLogin(c)
		return
	}

	sess := middleware.CurrentSession(c)
	if sess == nil || !sess.LoggedIn {
		h.renderLogin(c, "")
		return
	}

	if c.Request.Method == http.MethodPost && c.PostForm("save_post") == "1" {
		h.handleSavePost(c, sess)
		return
	}

	switch parseAdminAction(c.Query("action")) {
	case actionDashboard:
		h.showDashboard(c, sess)
	case actionAddPost:
		h.showPostForm(c, sess, nil)
	case actionEditPost:
		h.showEditForm(c, sess)
	case actionManagePosts:
		h.showManagePosts(c, sess)
	case actionManageComments:
		h.showManageComments(c, sess)
	case actionDeletePost:
		h.handleDeletePost(c, sess)
	case actionDeleteComment:
		h.handleDeleteComment(c, sess)
	case actionLogout:
		h.handleLogout(c, sess)
	case actionUnknown:
		h.renderPage(c, sess, "admin/invalid", "", gin.H{})
	}
}

func (h *AdminHandler) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	sess, err := h.authUseCase.Login(c.Request.Context(), username, password)
	if err != nil {
		msg := "Invalid username or password."
		if entity.IsValidationError(err) {
			msg = err.Error()
		} else if !errors.Is(err, entity.ErrInvalidCredentials) {
			h.logger.Error("Admin login failed: %v", err)
			msg = "Login is temporarily unavailable."
		}
		h.renderLogin(c, msg)
		return
	}

	c.SetCookie(h.cookieName, sess.ID, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) handleLogout(c *gin.Context, sess *session.Session) {
	if err := h.authUseCase.Logout(c.Request.Context(), sess.ID); err != nil {
		h.logger.Error("Failed to destroy session %s: %v", sess.ID, err)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) handleSavePost(c *gin.Context, sess *session.Session) {
	id, _ := strconv.ParseInt(c.PostForm("post_id"), 10, 64)
	fields := entity.PostFields{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ImageURL:    c.PostForm("image_url"),
		Link480p:    c.PostForm("link_480p"),
		Link720p:    c.PostForm("link_720p"),
		Link1080p:   c.PostForm("link_1080p"),
	}

	_, created, err := h.postUseCase.SavePost(id, fields)
	if err != nil {
		switch {
		case entity.IsValidationError(err):
			h.setFlash(c, sess, flashDanger, err.Error())
			if id > 0 {
				c.Redirect(http.StatusFound, "/admin?action=edit_post&id="+strconv.FormatInt(id, 10))
			} else {
				c.Redirect(http.StatusFound, "/admin?action=add_post")
			}
		case errors.Is(err, entity.ErrNotFound):
			h.setFlash(c, sess, flashDanger, "Post not found for editing.")
			c.Redirect(http.StatusFound, "/admin?action=manage_posts")
		default:
			h.logger.Error("Failed to save post: %v", err)
			h.setFlash(c, sess, flashDanger, "Error saving post.")
			c.Redirect(http.StatusFound, "/admin?action=manage_posts")
		}
		return
	}

	if created {
		h.setFlash(c, sess, flashSuccess, "Post added successfully.")
	} else {
		h.setFlash(c, sess, flashSuccess, "Post updated successfully.")
	}
	c.Redirect(http.StatusFound, "/admin?action=manage_posts")
}

func (h *AdminHandler) handleDeletePost(c *gin.Context, sess *session.Session) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		h.setFlash(c, sess, flashDanger, "Invalid post ID specified.")
		c.Redirect(http.StatusFound, "/admin?action=manage_posts")
		return
	}

	if err := h.postUseCase.DeletePost(id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			h.setFlash(c, sess, flashDanger, "Post not found.")
		} else {
			h.logger.Error("Failed to delete post %d: %v", id, err)
			h.setFlash(c, sess, flashDanger, "Error deleting post.")
		}
	} else {
		h.setFlash(c, sess, flashSuccess, "Post deleted successfully.")
	}
	c.Redirect(http.StatusFound, "/admin?action=manage_posts")
}

func (h *AdminHandler) handleDeleteComment(c *gin.Context, sess *session.Session) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		h.setFlash(c, sess, flashDanger, "Invalid comment ID specified.")
		c.Redirect(http.StatusFound, "/admin?action=manage_comments")
		return
	}

	if err := h.commentUseCase.DeleteComment(id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			h.setFlash(c, sess, flashDanger, "Comment not found.")
		} else {
			h.logger.Error("Failed to delete comment %d: %v", id, err)
			h.setFlash(c, sess, flashDanger, "Error deleting comment.")
		}
	} else {
		h.setFlash(c, sess, flashSuccess, "Comment deleted successfully.")
	}
	c.Redirect(http.StatusFound, "/admin?action=manage_comments")
}

func (h *AdminHandler) showDashboard(c *gin.Context, sess *session.Session) {
	stats, err := h.postUseCase.Stats()
	if err != nil {
		h.logger.Error("Failed to load dashboard stats: %v", err)
		stats = &entity.Stats{}
	}
	h.renderPage(c, sess, "admin/dashboard", "dashboard", gin.H{"Stats": stats})
}

func (h *AdminHandler) showPostForm(c *gin.Context, sess *session.Session, post *entity.Post) {
	active := "add_post"
	if post != nil {
		active = "manage_posts"
	}
	h.renderPage(c, sess, "admin/post_form", active, gin.H{"Post": post})
}

func (h *AdminHandler) showEditForm(c *gin.Context, sess *session.Session) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		h.setFlash(c, sess, flashWarning, "Post not found for editing.")
		c.Redirect(http.StatusFound, "/admin?action=manage_posts")
		return
	}

	post, err := h.postUseCase.GetPost(id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) || entity.IsValidationError(err) {
			h.setFlash(c, sess, flashWarning, "Post not found for editing.")
		} else {
			h.logger.Error("Failed to load post %d for editing: %v", id, err)
			h.setFlash(c, sess, flashDanger, "Error loading post.")
		}
		c.Redirect(http.StatusFound, "/admin?action=manage_posts")
		return
	}

	h.showPostForm(c, sess, post)
}

func (h *AdminHandler) showManagePosts(c *gin.Context, sess *session.Session) {
	posts, err := h.postUseCase.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		posts = nil
	}
	h.renderPage(c, sess, "admin/posts", "manage_posts", gin.H{"Posts": posts})
}

func (h *AdminHandler) showManageComments(c *gin.Context, sess *session.Session) {
	comments, err := h.commentUseCase.ListRecent(usecase.RecentCommentsLimit)
	if err != nil {
		h.logger.Error("Failed to list comments: %v", err)
		comments = nil
	}
	h.renderPage(c, sess, "admin/comments", "manage_comments", gin.H{"Comments": comments})
}

func (h *AdminHandler) renderLogin(c *gin.Context, errMsg string) {
	c.HTML(http.StatusOK, "admin/login", gin.H{"Error": errMsg})
}

// renderPage merges the shared layout data (username, active nav item and
// the one-shot flash) into the page payload.
func (h *AdminHandler) renderPage(c *gin.Context, sess *session.Session, tmpl, active string, data gin.H) {
	flash, err := h.sessions.TakeFlash(c.Request.Context(), sess.ID)
	if err != nil {
		h.logger.Warn("Failed to take flash for session %s: %v", sess.ID, err)
	}
	data["Username"] = sess.AdminUsername
	data["Active"] = active
	data["Flash"] = flash
	c.HTML(http.StatusOK, tmpl, data)
}

func (h *AdminHandler) setFlash(c *gin.Context, sess *session.Session, kind, text string) {
	if err := h.sessions.SetFlash(c.Request.Context(), sess.ID, kind, text); err != nil {
		h.logger.Warn("Failed to set flash for session %s: %v", sess.ID, err)
	}
}
