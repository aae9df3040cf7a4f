package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {

	tests := []struct {
		value string
		want  error
	}{
		{"0", nil},
		{"0e-3000000", nil},
		{"1234.5", nil},
		{"1000000000000", nil},
		{"0.0001", nil},
		{"1.50000000", nil},
		{"-0.01", errNegativeAmount},
		{"1000000000000.01", errAmountTooLarge},
		{"1e13", errAmountTooLarge},
		{"1e3000000", errAmountTooLarge},
		{"0.00001", errTooPrecise},
		{"1e-3000000", errTooPrecise},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.value))
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateAmount(%s) = %v, expected %v", tt.value, err, tt.want)
			}
		})
	}
}

func TestAccountSnapshotValidate_Bounds(t *testing.T) {

	tooLarge := AccountSnapshot{TotalCurrentAccount: decimal.RequireFromString("1e13")}
	if err := tooLarge.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot for oversized balance, got %v", err)
	}

	loan := AccountSnapshot{PersonalLoans: []PersonalLoan{{LoanAmount: decimal.RequireFromString("10.123456")}}}
	if err := loan.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot for over-precise loan, got %v", err)
	}

	tiny := AccountSnapshot{
		TotalCurrentAccount: decimal.RequireFromString("1e12"),
		Income:              Income{Amount: decimal.RequireFromString("1e-3000000")},
	}
	start := time.Now()
	if err := tiny.Validate(); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot for tiny income, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("validation took %s", elapsed)
	}
}
