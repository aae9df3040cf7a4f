package repository

import (
	"context"
	"errors"

	"pfm-backend/domain"
)

var ErrUserExists = errors.New("user already exists")

// UserRepository persists registered users keyed by email. FindByEmail and
// Delete return ErrNotFound for unknown emails.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Delete(ctx context.Context, email string) error
}
