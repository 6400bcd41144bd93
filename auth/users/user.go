package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         Role
	RegisteredAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Secret struct {
	PasswordHash []byte
	Salt         []byte
}

// OTP is a pending email-verification code. Code and ExpiresAt are always
// stored and cleared together.
type OTP struct {
	Code      string
	ExpiresAt time.Time
}
