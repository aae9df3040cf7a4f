package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"pfm-backend/domain"
)

// AccountRepositoryMemory is an in-memory implementation of AccountRepository.
type AccountRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.AccountSnapshot
}

// NewAccountRepositoryMemory creates an empty in-memory account repository.
func NewAccountRepositoryMemory() *AccountRepositoryMemory {
	return &AccountRepositoryMemory{
		data: map[string]domain.AccountSnapshot{},
	}
}

// DemoAccount is the sample customer served when no store is configured.
func DemoAccount() domain.AccountSnapshot {
	return domain.AccountSnapshot{
		ID:                  "user1",
		Currency:            "MYR",
		TotalCurrentAccount: decimal.NewFromInt(120000),
		TotalSavingAccount:  decimal.NewFromInt(45000),
		TermDeposit:         decimal.NewFromInt(30000),
		MoneyMarket:         decimal.NewFromInt(10000),
		CreditCard:          domain.CreditCard{TotalCreditCardLimit: decimal.NewFromInt(15000)},
		PersonalLoans: []domain.PersonalLoan{
			{LoanAmount: decimal.NewFromInt(20000)},
			{LoanAmount: decimal.NewFromInt(8000)},
		},
		Mortgage: decimal.NewFromInt(350000),
		Income:   domain.Income{Type: domain.IncomeSalary, Amount: decimal.NewFromInt(96000)},
	}
}

// Fetch returns a copy of the stored snapshot.
func (r *AccountRepositoryMemory) Fetch(_ context.Context, accountID string) (domain.AccountSnapshot, error) {
	r.mu.RLock()
	snap, ok := r.data[accountID]
	r.mu.RUnlock()
	if !ok {
		return domain.AccountSnapshot{}, fmt.Errorf("account %q: %w", accountID, ErrNotFound)
	}
	if err := snap.Validate(); err != nil {
		return domain.AccountSnapshot{}, fmt.Errorf("account %q: %w", accountID, err)
	}
	snap.PersonalLoans = append([]domain.PersonalLoan(nil), snap.PersonalLoans...)
	return snap, nil
}

// Save stores the snapshot in memory, replacing any previous one.
func (r *AccountRepositoryMemory) Save(_ context.Context, snapshot domain.AccountSnapshot) error {
	if snapshot.ID == "" {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidSnapshot)
	}
	snapshot.PersonalLoans = append([]domain.PersonalLoan(nil), snapshot.PersonalLoans...)
	r.mu.Lock()
	r.data[snapshot.ID] = snapshot
	r.mu.Unlock()
	return nil
}
