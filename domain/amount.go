package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxFractionDigits is the finest precision accepted for a currency amount.
const MaxFractionDigits = 4

// MaxAmount bounds every currency amount, 1 trillion in any currency.
var MaxAmount = decimal.New(1, 12)

// maxScale bounds the decimal exponent of an input before any arithmetic.
// Values outside it are rejected without rescaling.
const maxScale = 12

var (
	errNegativeAmount = errors.New("must not be negative")
	errAmountTooLarge = fmt.Errorf("exceeds %s", MaxAmount)
	errTooPrecise     = fmt.Errorf("has more than %d decimal places", MaxFractionDigits)
)

// ValidateAmount checks that v is a non-negative currency amount no larger
// than MaxAmount with at most MaxFractionDigits decimal places.
func ValidateAmount(v decimal.Decimal) error {
	if v.IsZero() {
		return nil
	}
	if v.IsNegative() {
		return errNegativeAmount
	}

	exp := v.Exponent()
	if exp > maxScale {
		return errAmountTooLarge
	}
	if exp < -(MaxFractionDigits + 2*maxScale) {
		return errTooPrecise
	}
	if v.GreaterThan(MaxAmount) {
		return errAmountTooLarge
	}
	if exp < -MaxFractionDigits && !v.Equal(v.Truncate(MaxFractionDigits)) {
		return errTooPrecise
	}
	return nil
}
