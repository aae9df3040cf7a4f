package domain

import "github.com/shopspring/decimal"

// PersistencyTier is the solvency band a persistency percentage falls in.
type PersistencyTier string

const (
	PersistencyGood       PersistencyTier = "good"
	PersistencyBorderline PersistencyTier = "borderline"
	PersistencyPoor       PersistencyTier = "poor"
)

// Description gives the human reading of the tier.
func (t PersistencyTier) Description() string {
	switch t {
	case PersistencyGood:
		return "assets exceed debts"
	case PersistencyBorderline:
		return "safe but could be improved"
	default:
		return "over-leveraged"
	}
}

// AnalysisResult holds every metric derived from one snapshot. A nil pointer
// marks a metric that is undefined for the snapshot (division by zero).
type AnalysisResult struct {
	NetWorth               decimal.Decimal  `json:"net_worth"`
	Liabilities            decimal.Decimal  `json:"liabilities"`
	Cashflow               decimal.Decimal  `json:"cashflow"`
	DebtServiceRatio       *decimal.Decimal `json:"debt_service_ratio"`
	WealthAccumulationRate decimal.Decimal  `json:"wealth_accumulation_rate"`
	CurrentSpending        decimal.Decimal  `json:"current_spending"`
	Persistency            *decimal.Decimal `json:"persistency"`
	PersistencyTier        PersistencyTier  `json:"persistency_tier"`
}

// DisplayAmounts carries the currency-formatted headline figures.
type DisplayAmounts struct {
	NetWorth               string `json:"net_worth"`
	Liabilities            string `json:"liabilities"`
	Cashflow               string `json:"cashflow"`
	DebtServiceRatio       string `json:"debt_service_ratio"`
	WealthAccumulationRate string `json:"wealth_accumulation_rate"`
	Persistency            string `json:"persistency"`
}

// AnalysisReport is what the API returns for an account.
type AnalysisReport struct {
	AccountID string         `json:"account_id"`
	Currency  string         `json:"currency"`
	Result    AnalysisResult `json:"result"`
	Display   DisplayAmounts `json:"display"`
	Summary   string         `json:"summary"`
}
