package model

import "time"

// User represents a registered account able to manage quotes.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
