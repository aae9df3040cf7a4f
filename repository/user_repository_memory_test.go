package repository

import (
	"context"
	"errors"
	"testing"

	"pfm-backend/domain"
)

func TestUserRepositoryMemory(t *testing.T) {

	repo := NewUserRepositoryMemory()
	ctx := context.Background()
	user := domain.User{Name: "Aina", Email: "Aina@example.com", Password: "hash"}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(ctx, user); !errors.Is(err, ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}

	got, err := repo.FindByEmail(ctx, "aina@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Aina" {
		t.Errorf("expected Aina, got %s", got.Name)
	}

	if err := repo.Delete(ctx, "aina@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, "aina@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.FindByEmail(ctx, "aina@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
