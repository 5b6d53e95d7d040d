package entity

import "time"

// AdminUser is a seeded panel account. Password holds the bcrypt hash and is
// never serialized.
type AdminUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
