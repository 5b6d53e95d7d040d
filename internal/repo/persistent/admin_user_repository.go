package persistent

import (
	"errors"

	"movielist/internal/entity"
	"movielist/internal/model"

	"gorm.io/gorm"
)

type AdminUserRepository interface {
	GetByUsername(username string) (*entity.AdminUser, error)
	Create(user *entity.AdminUser) error
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) GetByUsername(username string) (*entity.AdminUser, error) {
	var userModel model.AdminUserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToAdminUserEntity(&userModel), nil
}

func (r *adminUserRepository) Create(user *entity.AdminUser) error {
	userModel := &model.AdminUserModel{
		Username: user.Username,
		Password: user.Password,
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	return nil
}
