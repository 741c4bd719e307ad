package domain

import "time"

// User represents an API user able to obtain access tokens.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
