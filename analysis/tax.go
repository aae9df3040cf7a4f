package analysis

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"pfm-backend/domain"
)

// insuranceIncomeMultiple is how many years of income life cover should replace.
const insuranceIncomeMultiple = 10

func bracket(lo, hi int64, rate string) domain.TaxBracket {
	return domain.TaxBracket{
		Min:  decimal.NewFromInt(lo),
		Max:  decimal.NewFromInt(hi),
		Rate: decimal.RequireFromString(rate),
	}
}

// taxBrackets is the resident individual schedule (MYR). Read-only.
var taxBrackets = []domain.TaxBracket{
	bracket(0, 5_000, "0"),
	bracket(5_000, 20_000, "0.01"),
	bracket(20_000, 35_000, "0.03"),
	bracket(35_000, 50_000, "0.06"),
	bracket(50_000, 70_000, "0.11"),
	bracket(70_000, 100_000, "0.19"),
	bracket(100_000, 400_000, "0.25"),
	bracket(400_000, 600_000, "0.26"),
	bracket(600_000, 2_000_000, "0.28"),
	{Min: decimal.NewFromInt(2_000_000), Rate: decimal.RequireFromString("0.30"), Unbounded: true},
}

// Brackets returns a copy of the tax schedule.
func Brackets() []domain.TaxBracket {
	out := make([]domain.TaxBracket, len(taxBrackets))
	copy(out, taxBrackets)
	return out
}

// ValidateBrackets checks that brackets start at zero, are contiguous and
// ascending, have rates in [0,1] and end with exactly one unbounded bracket.
func ValidateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return errors.New("tax schedule is empty")
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("first bracket starts at %s, want 0", brackets[0].Min)
	}
	one := decimal.NewFromInt(1)
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("bracket %d: rate %s outside [0,1]", i, b.Rate)
		}
		last := i == len(brackets)-1
		if b.Unbounded != last {
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
		}
		if last {
			break
		}
		if !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("bracket %d: max %s not above min %s", i, b.Max, b.Min)
		}
		if next := brackets[i+1]; !next.Min.Equal(b.Max) {
			return fmt.Errorf("bracket %d: gap or overlap between %s and %s", i, b.Max, next.Min)
		}
	}
	return nil
}

// CalculateProgressiveTax applies the marginal schedule to income less
// reliefs, then subtracts rebates. The result is never negative.
func CalculateProgressiveTax(income, reliefs, rebates decimal.Decimal) decimal.Decimal {
	return TaxBreakdown(income, reliefs, rebates).Tax
}

// ProgressiveTax is CalculateProgressiveTax without reliefs or rebates.
func ProgressiveTax(income decimal.Decimal) decimal.Decimal {
	return CalculateProgressiveTax(income, decimal.Zero, decimal.Zero)
}

// TaxBreakdown is CalculateProgressiveTax with the per-bracket detail kept.
func TaxBreakdown(income, reliefs, rebates decimal.Decimal) domain.TaxResult {
	chargeable := decimal.Max(decimal.Zero, income.Sub(reliefs))

	gross := decimal.Zero
	var breakdown []domain.BracketTax
	for _, b := range taxBrackets {
		if !chargeable.GreaterThan(b.Min) {
			break
		}
		upper := chargeable
		if !b.Unbounded {
			upper = decimal.Min(chargeable, b.Max)
		}
		slice := upper.Sub(b.Min)
		tax := slice.Mul(b.Rate)
		gross = gross.Add(tax)
		breakdown = append(breakdown, domain.BracketTax{Bracket: b, Taxable: slice, Tax: tax})
	}

	result := domain.TaxResult{
		ChargeableIncome: chargeable,
		GrossTax:         gross,
		Tax:              decimal.Max(decimal.Zero, gross.Sub(rebates)),
		EffectiveRate:    decimal.Zero,
		Breakdown:        breakdown,
	}
	if income.IsPositive() {
		result.EffectiveRate = result.Tax.Div(income).Mul(hundred)
	}
	return result
}

// RequiredInsuranceCover is the sum assured needed for annualIncome.
func RequiredInsuranceCover(annualIncome decimal.Decimal) decimal.Decimal {
	return annualIncome.Mul(decimal.NewFromInt(insuranceIncomeMultiple))
}

// IsInsuranceCoverageAdequate reports whether the sum assured covers ten
// years of income. Zero income is always covered.
func IsInsuranceCoverageAdequate(annualIncome, insuranceSumAssured decimal.Decimal) bool {
	return insuranceSumAssured.GreaterThanOrEqual(RequiredInsuranceCover(annualIncome))
}
