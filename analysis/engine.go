// Package analysis computes personal-finance metrics over an account snapshot.
//
// A FinancialAnalysis is cheap and not safe for concurrent use: build one per
// request. The tax table and the package-level functions are read-only and can
// be shared freely.
package analysis

import (
	"github.com/shopspring/decimal"

	"pfm-backend/domain"
)

var hundred = decimal.NewFromInt(100)

const (
	// persistency above this is "good"
	persistencyGoodAbove = 100
	// persistency at or above this (and not good) is "borderline"
	persistencyBorderlineFrom = 75
)

// FinancialAnalysis derives metrics from one account snapshot. The only state
// that changes after construction is the last computed persistency.
type FinancialAnalysis struct {
	account     *domain.AccountSnapshot
	persistency decimal.Decimal
}

// NewFinancialAnalysis binds an engine to account. The snapshot must not be
// modified while the engine is in use.
func NewFinancialAnalysis(account *domain.AccountSnapshot) *FinancialAnalysis {
	return &FinancialAnalysis{account: account}
}

// NetWorth is total assets minus liabilities. It may be negative.
func (f *FinancialAnalysis) NetWorth() decimal.Decimal {
	return f.account.TotalAssets().Sub(f.Liabilities())
}

// Liabilities sums the credit card limit, personal loans and mortgage.
func (f *FinancialAnalysis) Liabilities() decimal.Decimal {
	total := f.account.CreditCard.TotalCreditCardLimit
	for _, loan := range f.account.PersonalLoans {
		total = total.Add(loan.LoanAmount)
	}
	return total.Add(f.account.Mortgage)
}

// Cashflow is income minus liabilities. It may be negative.
func (f *FinancialAnalysis) Cashflow() decimal.Decimal {
	return f.account.Income.Amount.Sub(f.Liabilities())
}

// DebtServiceRatio is liabilities over income, as a fraction.
func (f *FinancialAnalysis) DebtServiceRatio() (decimal.Decimal, error) {
	income := f.account.Income.Amount
	if income.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return f.Liabilities().Div(income), nil
}

// WealthAccumulationRate is net worth's share of net worth plus liabilities,
// in percent. A zero denominator yields 0.
func (f *FinancialAnalysis) WealthAccumulationRate() decimal.Decimal {
	netWorth := f.NetWorth()
	total := netWorth.Add(f.Liabilities())
	if total.IsZero() {
		return decimal.Zero
	}
	return netWorth.Div(total).Mul(hundred)
}

// CalculatePersistency compares net worth plus cashflow against liabilities
// plus currentSpending, in percent, and stores the result.
func (f *FinancialAnalysis) CalculatePersistency(currentSpending decimal.Decimal) (decimal.Decimal, error) {
	liabilities := f.Liabilities()
	totalAssets := f.NetWorth().Add(f.Cashflow())
	totalDebts := liabilities.Add(currentSpending)
	if totalDebts.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	f.persistency = totalAssets.Div(totalDebts).Mul(hundred)
	return f.persistency, nil
}

// Persistency returns the value stored by the last successful
// CalculatePersistency call, or 0.
func (f *FinancialAnalysis) Persistency() decimal.Decimal {
	return f.persistency
}

// ClassifyPersistency maps the stored persistency to a tier.
func (f *FinancialAnalysis) ClassifyPersistency() domain.PersistencyTier {
	return ClassifyPersistency(f.persistency)
}

// ClassifyPersistency maps a persistency percentage to a tier.
func ClassifyPersistency(value decimal.Decimal) domain.PersistencyTier {
	switch {
	case value.GreaterThan(decimal.NewFromInt(persistencyGoodAbove)):
		return domain.PersistencyGood
	case value.GreaterThanOrEqual(decimal.NewFromInt(persistencyBorderlineFrom)):
		return domain.PersistencyBorderline
	default:
		return domain.PersistencyPoor
	}
}

// Analyze computes every metric in one pass. Undefined ratios are left nil.
// It updates the stored persistency when that metric is defined.
func (f *FinancialAnalysis) Analyze(currentSpending decimal.Decimal) domain.AnalysisResult {
	result := domain.AnalysisResult{
		NetWorth:               f.NetWorth(),
		Liabilities:            f.Liabilities(),
		Cashflow:               f.Cashflow(),
		WealthAccumulationRate: f.WealthAccumulationRate(),
		CurrentSpending:        currentSpending,
	}
	if dsr, err := f.DebtServiceRatio(); err == nil {
		result.DebtServiceRatio = &dsr
	}
	if p, err := f.CalculatePersistency(currentSpending); err == nil {
		result.Persistency = &p
	}
	result.PersistencyTier = f.ClassifyPersistency()
	return result
}
