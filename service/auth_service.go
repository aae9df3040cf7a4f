package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"pfm-backend/domain"
	"pfm-backend/repository"
)

var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)

// CredentialHasher hashes passwords one way and checks them against a hash.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService struct {
	users  repository.UserRepository
	hasher CredentialHasher
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthService(users repository.UserRepository, hasher CredentialHasher, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{users: users, hasher: hasher, logger: logger, now: time.Now}
}

// Register validates the input, hashes the password and stores the user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	if name == "" || email == "" || input.Password == "" {
		return domain.User{}, fmt.Errorf("%w: name, email, and password are required", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return domain.User{}, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if len(input.Password) < MinPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, MinPasswordLength)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hash,
		CreatedAt: s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	s.logger.Info("user registered", "email", email)
	return user, nil
}

// Login returns the user when email and password match.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	return s.authenticate(ctx, email, password)
}

// DeleteUser removes the account after checking the password.
func (s *AuthService) DeleteUser(ctx context.Context, email, password string) error {
	if _, err := s.authenticate(ctx, email, password); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, email); err != nil {
		return err
	}
	s.logger.Info("user deleted", "email", email)
	return nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if !s.hasher.Verify(password, user.Password) {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
