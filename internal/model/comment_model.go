package model

import "time"

type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"column:post_id;not null;index"`
	Post      PostModel `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Username  string    `gorm:"size:100;not null"`
	Comment   string    `gorm:"size:1000;not null"`
	CreatedAt time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}
