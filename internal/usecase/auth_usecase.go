package usecase

import (
	"context"
	"errors"
	"strings"

	"movielist/internal/entity"
	"movielist/internal/repo/persistent"
	"movielist/pkg/logger"
	"movielist/pkg/session"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	// Login verifies the credentials and establishes a server-side session.
	// Unknown username and wrong password produce the same error.
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type authUseCase struct {
	adminRepo persistent.AdminUserRepository
	sessions  session.Store
	logger    *logger.Logger
}

func NewAuthUseCase(adminRepo persistent.AdminUserRepository, sessions session.Store, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		adminRepo: adminRepo,
		sessions:  sessions,
		logger:    logger,
	}
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (*session.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, entity.NewValidationError("Username and password are required.")
	}

	user, err := uc.adminRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		uc.logger.Error("Failed to look up admin user: %v", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	sess, err := uc.sessions.Create(ctx, user.ID, user.Username)
	if err != nil {
		uc.logger.Error("Failed to create admin session: %v", err)
		return nil, err
	}
	return sess, nil
}

func (uc *authUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return uc.sessions.Destroy(ctx, sessionID)
}
