package usecase

import (
	"strings"

	"movielist/internal/entity"
	"movielist/internal/repo/persistent"
	"movielist/pkg/logger"
)

type PostUseCase interface {
	ListPosts() ([]*entity.PostSummary, error)
	GetPost(id int64) (*entity.Post, error)
	// SavePost inserts when id == 0 and updates otherwise. Returns the post
	// id and whether a new post was created.
	SavePost(id int64, fields entity.PostFields) (int64, bool, error)
	DeletePost(id int64) error
	// BumpView atomically increments the view counter and returns the new
	// value.
	BumpView(id int64) (int64, error)
	Stats() (*entity.Stats, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *postUseCase) ListPosts() ([]*entity.PostSummary, error) {
	return uc.postRepo.List()
}

func (uc *postUseCase) GetPost(id int64) (*entity.Post, error) {
	if id <= 0 {
		return nil, entity.NewValidationError("Invalid post ID specified.")
	}
	return uc.postRepo.GetByID(id)
}

func (uc *postUseCase) SavePost(id int64, fields entity.PostFields) (int64, bool, error) {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.Description = strings.TrimSpace(fields.Description)
	fields.ImageURL = strings.TrimSpace(fields.ImageURL)
	fields.Link480p = strings.TrimSpace(fields.Link480p)
	fields.Link720p = strings.TrimSpace(fields.Link720p)
	fields.Link1080p = strings.TrimSpace(fields.Link1080p)

	if fields.Title == "" || fields.ImageURL == "" {
		return 0, false, entity.NewValidationError("Title and Image URL are required.")
	}

	if id > 0 {
		if err := uc.postRepo.Update(id, fields); err != nil {
			return 0, false, err
		}
		return id, false, nil
	}

	post := &entity.Post{
		Title:       fields.Title,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		Link480p:    fields.Link480p,
		Link720p:    fields.Link720p,
		Link1080p:   fields.Link1080p,
		ViewCount:   0,
	}
	if err := uc.postRepo.Create(post); err != nil {
		return 0, false, err
	}
	return post.ID, true, nil
}

func (uc *postUseCase) DeletePost(id int64) error {
	if id <= 0 {
		return entity.NewValidationError("Invalid post ID specified.")
	}
	return uc.postRepo.Delete(id)
}

func (uc *postUseCase) BumpView(id int64) (int64, error) {
	if id <= 0 {
		return 0, entity.NewValidationError("Invalid post ID provided.")
	}
	return uc.postRepo.IncrementViews(id)
}

func (uc *postUseCase) Stats() (*entity.Stats, error) {
	return uc.postRepo.Stats()
}
