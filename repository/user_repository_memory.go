package repository

import (
	"context"
	"strings"
	"sync"

	"pfm-backend/domain"
)

type UserRepositoryMemory struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{users: map[string]domain.User{}}
}

func (r *UserRepositoryMemory) Create(_ context.Context, user domain.User) error {
	key := strings.ToLower(user.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[key]; ok {
		return ErrUserExists
	}
	r.users[key] = user
	return nil
}

func (r *UserRepositoryMemory) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserRepositoryMemory) Delete(_ context.Context, email string) error {
	key := strings.ToLower(email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[key]; !ok {
		return ErrNotFound
	}
	delete(r.users, key)
	return nil
}
