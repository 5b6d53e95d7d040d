package usecase

import (
	"errors"
	"testing"

	"movielist/internal/entity"
	"movielist/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestSavePost_CreateTrimsFields(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	mockRepo.On("Create", &entity.Post{
		Title:    "Some Movie",
		ImageURL: "http://example.com/p.jpg",
		Link480p: "http://example.com/480.mp4",
	}).Return(nil)

	id, created, err := uc.SavePost(0, entity.PostFields{
		Title:    "  Some Movie  ",
		ImageURL: " http://example.com/p.jpg ",
		Link480p: " http://example.com/480.mp4 ",
	})

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(0), id)

	mockRepo.AssertExpectations(t)
}

func TestSavePost_RequiresTitleAndImage(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	cases := []entity.PostFields{
		{Title: "", ImageURL: "http://example.com/p.jpg"},
		{Title: "Some Movie", ImageURL: ""},
		{Title: "   ", ImageURL: "http://example.com/p.jpg"},
		{Title: "Some Movie", ImageURL: "   "},
	}
	for _, fields := range cases {
		_, _, err := uc.SavePost(0, fields)
		assert.Error(t, err)
		assert.True(t, entity.IsValidationError(err))
		assert.Equal(t, "Title and Image URL are required.", err.Error())
	}

	mockRepo.AssertNotCalled(t, "Create")
	mockRepo.AssertNotCalled(t, "Update")
}

func TestSavePost_UpdateExisting(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	fields := entity.PostFields{Title: "Renamed", ImageURL: "http://example.com/p.jpg"}
	mockRepo.On("Update", int64(5), fields).Return(nil)

	id, created, err := uc.SavePost(5, fields)

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(5), id)

	mockRepo.AssertExpectations(t)
}

func TestSavePost_UpdateMissingPost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	fields := entity.PostFields{Title: "Renamed", ImageURL: "http://example.com/p.jpg"}
	mockRepo.On("Update", int64(404), fields).Return(entity.ErrNotFound)

	_, _, err := uc.SavePost(404, fields)

	assert.ErrorIs(t, err, entity.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestGetPost_InvalidID(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	for _, id := range []int64{0, -1} {
		_, err := uc.GetPost(id)
		assert.True(t, entity.IsValidationError(err))
	}

	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestBumpView_ReturnsNewCount(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	mockRepo.On("IncrementViews", int64(3)).Return(int64(8), nil)

	count, err := uc.BumpView(3)

	assert.NoError(t, err)
	assert.Equal(t, int64(8), count)
	mockRepo.AssertExpectations(t)
}

func TestBumpView_InvalidID(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	_, err := uc.BumpView(0)

	assert.True(t, entity.IsValidationError(err))
	assert.Equal(t, "Invalid post ID provided.", err.Error())
	mockRepo.AssertNotCalled(t, "IncrementViews")
}

func TestDeletePost_PropagatesError(t *testing.T) {
	mockRepo := new(MockPostRepository)
	uc := NewPostUseCase(mockRepo, logger.New())

	mockRepo.On("Delete", int64(5)).Return(errors.New("connection refused"))

	err := uc.DeletePost(5)

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
