package domain

import "time"

// User is the single tenant of a HOTLEADS workspace. All leads, settings and
// goals hang off the user's account; there is no sharing between accounts.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
