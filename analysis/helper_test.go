package analysis

import (
	"testing"

	"github.com/shopspring/decimal"

	"pfm-backend/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s: expected %s, got %s", name, want, got)
	}
}

// sampleAccount has 35000 of assets, 20000 of liabilities and 8000 income.
func sampleAccount() *domain.AccountSnapshot {
	return &domain.AccountSnapshot{
		ID:                  "acc-1",
		TotalCurrentAccount: d("10000"),
		TotalSavingAccount:  d("20000"),
		TermDeposit:         d("5000"),
		CreditCard:          domain.CreditCard{TotalCreditCardLimit: d("5000")},
		PersonalLoans: []domain.PersonalLoan{
			{LoanAmount: d("3000")},
			{LoanAmount: d("2000")},
		},
		Mortgage: d("10000"),
		Income:   domain.Income{Type: domain.IncomeSalary, Amount: d("8000")},
	}
}
