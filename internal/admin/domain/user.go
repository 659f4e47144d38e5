package domain

import "time"

// Role values stored in the users table.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID           string
	Name         *string // Display name (nullable)
	Email        string
	Role         string // RoleAdmin or RoleUser
	PasswordHash string // Never projected into API responses
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
