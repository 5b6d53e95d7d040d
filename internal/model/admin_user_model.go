package model

import "time"

type AdminUserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"uniqueIndex;size:100;not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
