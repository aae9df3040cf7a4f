package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidSnapshot is returned by snapshot providers when the account data
// cannot be analysed (negative balances, negative income, ...).
var ErrInvalidSnapshot = errors.New("invalid account snapshot")

// DefaultCurrency is used for display when a snapshot carries no currency.
const DefaultCurrency = "MYR"

type IncomeType string

const (
	IncomeSalary     IncomeType = "salary"
	IncomeBusiness   IncomeType = "business"
	IncomeRental     IncomeType = "rental"
	IncomeInvestment IncomeType = "investment"
	IncomeOther      IncomeType = "other"
)

type Income struct {
	Type   IncomeType      `json:"income_type"`
	Amount decimal.Decimal `json:"amount"`
}

type CreditCard struct {
	TotalCreditCardLimit decimal.Decimal `json:"total_credit_card_limit"`
}

type PersonalLoan struct {
	LoanAmount decimal.Decimal `json:"loan_amount"`
}

// AccountSnapshot is the read-only view of one customer's accounts that the
// analysis engine works on.
type AccountSnapshot struct {
	ID                  string          `json:"id"`
	Currency            string          `json:"currency,omitempty"`
	TotalCurrentAccount decimal.Decimal `json:"total_current_account"`
	TotalSavingAccount  decimal.Decimal `json:"total_saving_account"`
	TermDeposit         decimal.Decimal `json:"term_deposit"`
	MoneyMarket         decimal.Decimal `json:"money_market"`
	CreditCard          CreditCard      `json:"credit_card"`
	PersonalLoans       []PersonalLoan  `json:"personal_loans"`
	Mortgage            decimal.Decimal `json:"mortgage"`
	Income              Income          `json:"income"`
}

// TotalAssets sums the liquid balances counted as assets.
func (a AccountSnapshot) TotalAssets() decimal.Decimal {
	return a.TotalCurrentAccount.Add(a.TotalSavingAccount).Add(a.TermDeposit)
}

// CurrencyCode returns the snapshot currency, falling back to DefaultCurrency.
func (a AccountSnapshot) CurrencyCode() string {
	if a.Currency == "" {
		return DefaultCurrency
	}
	return a.Currency
}

// Validate reports the first malformed field. The returned error wraps
// ErrInvalidSnapshot.
func (a AccountSnapshot) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"total_current_account", a.TotalCurrentAccount},
		{"total_saving_account", a.TotalSavingAccount},
		{"term_deposit", a.TermDeposit},
		{"money_market", a.MoneyMarket},
		{"credit_card.total_credit_card_limit", a.CreditCard.TotalCreditCardLimit},
		{"mortgage", a.Mortgage},
		{"income.amount", a.Income.Amount},
	}
	for _, f := range fields {
		if err := ValidateAmount(f.value); err != nil {
			return fmt.Errorf("%w: %s %v", ErrInvalidSnapshot, f.name, err)
		}
	}
	for i, loan := range a.PersonalLoans {
		if err := ValidateAmount(loan.LoanAmount); err != nil {
			return fmt.Errorf("%w: personal_loans[%d].loan_amount %v", ErrInvalidSnapshot, i, err)
		}
	}
	return nil
}
