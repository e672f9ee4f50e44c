package entity

import (
	"time"
)

// User is a parent account. Passwords are stored as bcrypt hashes in
// HashedPassword and must never be serialized into API responses.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	IsActive       bool
	IsSuperuser    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
