package domain

import "time"

// User is the domain entity for a registered account. Accounts are created
// at registration and never updated or deleted afterwards.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
