package model

import "time"

// User is an admin account. The panel expects exactly one, created via
// cmd/createadmin.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
