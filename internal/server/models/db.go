// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account. Email is stored lowercased and is unique.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// RefreshToken is an issued refresh token; it is deleted on rotation and
// on logout.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
