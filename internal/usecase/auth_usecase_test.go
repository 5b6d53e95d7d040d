package usecase

import (
	"context"
	"testing"

	"movielist/internal/entity"
	"movielist/pkg/logger"
	"movielist/pkg/session"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	store := session.NewMemoryStore()
	uc := NewAuthUseCase(mockRepo, store, logger.New())

	mockRepo.On("GetByUsername", "admin").Return(&entity.AdminUser{
		ID:       1,
		Username: "admin",
		Password: hashPassword(t, "secret"),
	}, nil)

	sess, err := uc.Login(context.Background(), "admin", "secret")

	assert.NoError(t, err)
	assert.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, int64(1), sess.AdminID)
	assert.Equal(t, "admin", sess.AdminUsername)
	assert.True(t, sess.LoggedIn)

	// The session is actually persisted.
	got, err := store.Get(context.Background(), sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, sess.AdminID, got.AdminID)

	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	uc := NewAuthUseCase(mockRepo, session.NewMemoryStore(), logger.New())

	mockRepo.On("GetByUsername", "admin").Return(&entity.AdminUser{
		ID:       1,
		Username: "admin",
		Password: hashPassword(t, "secret"),
	}, nil)

	_, err := uc.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	uc := NewAuthUseCase(mockRepo, session.NewMemoryStore(), logger.New())

	mockRepo.On("GetByUsername", "nobody").Return(nil, entity.ErrNotFound)

	_, err := uc.Login(context.Background(), "nobody", "whatever")

	// Unknown username and wrong password are indistinguishable.
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	uc := NewAuthUseCase(mockRepo, session.NewMemoryStore(), logger.New())

	for _, tc := range [][2]string{{"", "secret"}, {"admin", ""}, {"  ", "  "}} {
		_, err := uc.Login(context.Background(), tc[0], tc[1])
		assert.True(t, entity.IsValidationError(err))
	}

	mockRepo.AssertNotCalled(t, "GetByUsername")
}

func TestLogout_DestroysSession(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	store := session.NewMemoryStore()
	uc := NewAuthUseCase(mockRepo, store, logger.New())

	sess, err := store.Create(context.Background(), 1, "admin")
	assert.NoError(t, err)

	err = uc.Logout(context.Background(), sess.ID)
	assert.NoError(t, err)

	_, err = store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLogout_EmptySessionID(t *testing.T) {
	uc := NewAuthUseCase(new(MockAdminUserRepository), session.NewMemoryStore(), logger.New())

	assert.NoError(t, uc.Logout(context.Background(), ""))
}
