package users

import "time"

// User is a stored identity record. Exactly one User exists per email.
// PasswordHash is opaque and never serialized to clients.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
