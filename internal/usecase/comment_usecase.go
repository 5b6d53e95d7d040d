package usecase

import (
	"html"
	"strings"

	"movielist/internal/entity"
	"movielist/internal/repo/persistent"
	"movielist/pkg/logger"
)

const RecentCommentsLimit = 100

type CommentUseCase interface {
	ListForPost(postID int64) ([]*entity.Comment, error)
	// ListRecent returns the newest comments joined with their post title,
	// capped at limit (RecentCommentsLimit when <= 0).
	ListRecent(limit int) ([]*entity.CommentWithPostTitle, error)
	SubmitComment(postID int64, username, commentText string) (*entity.Comment, error)
	DeleteComment(id int64) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) ListForPost(postID int64) ([]*entity.Comment, error) {
	if postID <= 0 {
		return nil, entity.NewValidationError("Invalid post ID for fetching comments.")
	}
	return uc.commentRepo.ListForPost(postID)
}

func (uc *commentUseCase) ListRecent(limit int) ([]*entity.CommentWithPostTitle, error) {
	if limit <= 0 || limit > RecentCommentsLimit {
		limit = RecentCommentsLimit
	}
	return uc.commentRepo.ListRecent(limit)
}

// SubmitComment validates and HTML-escapes visitor input before persisting.
// The length ceilings apply to the escaped form, which is what gets stored
// and rendered.
func (uc *commentUseCase) SubmitComment(postID int64, username, commentText string) (*entity.Comment, error) {
	username = strings.TrimSpace(username)
	commentText = strings.TrimSpace(commentText)

	if postID <= 0 || username == "" || commentText == "" {
		return nil, entity.NewValidationError("Missing required fields (post_id, username, comment).")
	}

	username = html.EscapeString(username)
	commentText = html.EscapeString(commentText)

	if len(username) > entity.MaxUsernameLength || len(commentText) > entity.MaxCommentLength {
		return nil, entity.NewValidationError("Username or comment is too long.")
	}

	comment := &entity.Comment{
		PostID:   postID,
		Username: username,
		Comment:  commentText,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(id int64) error {
	if id <= 0 {
		return entity.NewValidationError("Invalid comment ID specified.")
	}
	return uc.commentRepo.Delete(id)
}
