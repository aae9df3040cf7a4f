package domain

import "github.com/shopspring/decimal"

// TaxBracket is one marginal band of the income tax schedule. Max is the
// inclusive upper bound; Unbounded marks the top band, whose Max is ignored.
type TaxBracket struct {
	Min       decimal.Decimal `json:"min"`
	Max       decimal.Decimal `json:"max"`
	Rate      decimal.Decimal `json:"rate"`
	Unbounded bool            `json:"unbounded,omitempty"`
}

type TaxInput struct {
	Income  decimal.Decimal `json:"income"`
	Reliefs decimal.Decimal `json:"reliefs"`
	Rebates decimal.Decimal `json:"rebates"`
}

// BracketTax is the slice of chargeable income taxed inside one bracket.
type BracketTax struct {
	Bracket TaxBracket      `json:"bracket"`
	Taxable decimal.Decimal `json:"taxable"`
	Tax     decimal.Decimal `json:"tax"`
}

type TaxResult struct {
	ChargeableIncome decimal.Decimal `json:"chargeable_income"`
	GrossTax         decimal.Decimal `json:"gross_tax"`
	Tax              decimal.Decimal `json:"tax"`
	EffectiveRate    decimal.Decimal `json:"effective_rate"`
	Breakdown        []BracketTax    `json:"breakdown"`
}

type InsuranceInput struct {
	AnnualIncome        decimal.Decimal `json:"annual_income"`
	InsuranceSumAssured decimal.Decimal `json:"insurance_sum_assured"`
}

type InsuranceResult struct {
	Adequate      bool            `json:"adequate"`
	RequiredCover decimal.Decimal `json:"required_cover"`
	Shortfall     decimal.Decimal `json:"shortfall"`
}
