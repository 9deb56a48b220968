package domain

import "time"

// User is an administrator allowed to sign in to the management pages.
type User struct {
	UserID       int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
