package entity

import "time"

// Post is a movie listing record. Download links are optional; everything a
// visitor needs to render the detail page is on this struct.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Link480p    string    `json:"link_480p"`
	Link720p    string    `json:"link_720p"`
	Link1080p   string    `json:"link_1080p"`
	ViewCount   int64     `json:"view_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostSummary is the listing shape: everything except the description.
type PostSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Link480p  string    `json:"link_480p"`
	Link720p  string    `json:"link_720p"`
	Link1080p string    `json:"link_1080p"`
	ViewCount int64     `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
}

// PostFields are the admin-editable columns. Saving never touches id,
// view_count or created_at.
type PostFields struct {
	Title       string
	Description string
	ImageURL    string
	Link480p    string
	Link720p    string
	Link1080p   string
}

// Stats backs the admin dashboard cards.
type Stats struct {
	PostCount    int64 `json:"post_count"`
	CommentCount int64 `json:"comment_count"`
	TotalViews   int64 `json:"total_views"`
}
