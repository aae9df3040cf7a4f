package service

import (
	"errors"

	"pfm-backend/repository"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = repository.ErrUserExists
	ErrNotFound           = repository.ErrNotFound
)
