package entity

import "time"

// Comment is a visitor note attached to exactly one post. Username and text
// are stored HTML-escaped.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentWithPostTitle is the admin moderation view, joined with the parent
// post's title.
type CommentWithPostTitle struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	PostTitle string    `json:"post_title"`
}

const (
	MaxUsernameLength = 100
	MaxCommentLength  = 1000
)
