package storage

import (
	"context"
	"errors"

	"foodserver/auth/users"

	"github.com/google/uuid"
)

// ErrDuplicateEmail is returned by CreateUser when the email uniqueness
// constraint rejects the insert.
var ErrDuplicateEmail = errors.New("email already taken")

type AuthStorage interface {
	CreateUser(ctx context.Context, user users.User, secret users.Secret, otp *users.OTP) error
	GetUser(ctx context.Context, id uuid.UUID) (users.User, error)
	GetUserByEmail(ctx context.Context, email string) (users.User, error)
	GetUserSecret(ctx context.Context, user users.User) (users.Secret, error)
	SignIn(ctx context.Context, email string, passwordHash []byte) (users.User, error)
	GetOTP(ctx context.Context, email string) (*users.OTP, error)
	SetOTP(ctx context.Context, id uuid.UUID, otp *users.OTP) error
	UpdateUser(ctx context.Context, id uuid.UUID, name string, secret *users.Secret) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
