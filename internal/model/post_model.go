package model

import "time"

type PostModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"column:image_url;not null"`
	Link480p    string `gorm:"column:link_480p"`
	Link720p    string `gorm:"column:link_720p"`
	Link1080p   string `gorm:"column:link_1080p"`
	ViewCount   int64  `gorm:"column:view_count;not null;default:0"`
	CreatedAt   time.Time
}

func (PostModel) TableName() string {
	return "posts"
}
