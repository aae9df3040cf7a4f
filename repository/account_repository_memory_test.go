package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"pfm-backend/domain"
)

func TestAccountRepositoryMemory_SaveFetch(t *testing.T) {

	repo := NewAccountRepositoryMemory()
	ctx := context.Background()

	if err := repo.Save(ctx, DemoAccount()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Fetch(ctx, "user1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "user1" || len(got.PersonalLoans) != 2 {
		t.Errorf("unexpected snapshot: %+v", got)
	}

	got.PersonalLoans[0].LoanAmount = decimal.NewFromInt(1)
	again, _ := repo.Fetch(ctx, "user1")
	if again.PersonalLoans[0].LoanAmount.Equal(decimal.NewFromInt(1)) {
		t.Errorf("fetched snapshot shares loan slice with the repository")
	}
}

func TestAccountRepositoryMemory_NotFound(t *testing.T) {

	repo := NewAccountRepositoryMemory()

	_, err := repo.Fetch(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepositoryMemory_InvalidSnapshot(t *testing.T) {

	repo := NewAccountRepositoryMemory()
	ctx := context.Background()

	bad := DemoAccount()
	bad.Mortgage = decimal.NewFromInt(-5)
	if err := repo.Save(ctx, bad); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repo.Fetch(ctx, bad.ID)
	if !errors.Is(err, domain.ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot, got %v", err)
	}

	if err := repo.Save(ctx, domain.AccountSnapshot{}); !errors.Is(err, domain.ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot for missing id, got %v", err)
	}
}
