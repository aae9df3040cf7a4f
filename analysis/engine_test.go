package analysis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"pfm-backend/domain"
)

func TestLiabilities_SumsCardLoansAndMortgage(t *testing.T) {

	engine := NewFinancialAnalysis(sampleAccount())

	assertDecimal(t, "liabilities", engine.Liabilities(), d("20000"))
}

func TestLiabilities_EmptyLoans(t *testing.T) {

	account := sampleAccount()
	account.PersonalLoans = nil
	engine := NewFinancialAnalysis(account)

	want := account.CreditCard.TotalCreditCardLimit.Add(account.Mortgage)
	assertDecimal(t, "liabilities", engine.Liabilities(), want)
}

func TestNetWorthAndCashflow(t *testing.T) {

	engine := NewFinancialAnalysis(sampleAccount())

	assertDecimal(t, "net worth", engine.NetWorth(), d("15000"))
	assertDecimal(t, "cashflow", engine.Cashflow(), d("-12000"))
}

func TestNetWorth_CanBeNegative(t *testing.T) {

	account := sampleAccount()
	account.Mortgage = d("500000")
	engine := NewFinancialAnalysis(account)

	if !engine.NetWorth().IsNegative() {
		t.Errorf("expected negative net worth, got %s", engine.NetWorth())
	}
}

func TestNetWorthPlusLiabilitiesEqualsAssets(t *testing.T) {

	accounts := []*domain.AccountSnapshot{
		sampleAccount(),
		{},
		{
			TotalCurrentAccount: d("0.01"),
			CreditCard:          domain.CreditCard{TotalCreditCardLimit: d("99999.99")},
			Mortgage:            d("350000"),
		},
		{
			TotalCurrentAccount: d("1234.56"),
			TotalSavingAccount:  d("789.01"),
			TermDeposit:         d("50000"),
			PersonalLoans:       []domain.PersonalLoan{{LoanAmount: d("12.34")}},
		},
	}

	for i, account := range accounts {
		engine := NewFinancialAnalysis(account)
		got := engine.NetWorth().Add(engine.Liabilities())
		if !got.Equal(account.TotalAssets()) {
			t.Errorf("account %d: net worth + liabilities = %s, want %s", i, got, account.TotalAssets())
		}
	}
}

func TestDebtServiceRatio(t *testing.T) {

	engine := NewFinancialAnalysis(sampleAccount())

	dsr, err := engine.DebtServiceRatio()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "dsr", dsr, d("2.5"))
}

func TestDebtServiceRatio_ZeroIncome(t *testing.T) {

	tests := []struct {
		name    string
		account *domain.AccountSnapshot
	}{
		{"with liabilities", func() *domain.AccountSnapshot {
			a := sampleAccount()
			a.Income.Amount = decimal.Zero
			return a
		}()},
		{"empty account", &domain.AccountSnapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFinancialAnalysis(tt.account).DebtServiceRatio()
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("expected ErrDivisionByZero, got %v", err)
			}
		})
	}
}

func TestWealthAccumulationRate(t *testing.T) {

	engine := NewFinancialAnalysis(sampleAccount())

	got := engine.WealthAccumulationRate().Round(2)
	assertDecimal(t, "war", got, d("42.86"))
}

func TestWealthAccumulationRate_ZeroTotal(t *testing.T) {

	engine := NewFinancialAnalysis(&domain.AccountSnapshot{})

	assertDecimal(t, "war", engine.WealthAccumulationRate(), decimal.Zero)
}

func TestCalculatePersistency(t *testing.T) {

	engine := NewFinancialAnalysis(sampleAccount())

	// (15000 + -12000) / (20000 + 4000) * 100
	got, err := engine.CalculatePersistency(d("4000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDecimal(t, "persistency", got, d("12.5"))

	if !engine.Persistency().Equal(got) {
		t.Errorf("stored persistency %s differs from returned %s", engine.Persistency(), got)
	}
	if tier := engine.ClassifyPersistency(); tier != domain.PersistencyPoor {
		t.Errorf("expected poor, got %s", tier)
	}
}

func TestCalculatePersistency_ZeroDebts(t *testing.T) {

	account := &domain.AccountSnapshot{
		TotalSavingAccount: d("1000"),
		Income:             domain.Income{Amount: d("500")},
	}
	engine := NewFinancialAnalysis(account)

	_, err := engine.CalculatePersistency(decimal.Zero)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if !engine.Persistency().IsZero() {
		t.Errorf("failed calculation must not change stored persistency, got %s", engine.Persistency())
	}
}

func TestPersistency_InitialState(t *testing.T) {

	engine := NewFinancialAnalysis(sampleAccount())

	if !engine.Persistency().IsZero() {
		t.Errorf("expected 0, got %s", engine.Persistency())
	}
	if tier := engine.ClassifyPersistency(); tier != domain.PersistencyPoor {
		t.Errorf("expected poor before any calculation, got %s", tier)
	}
}

func TestClassifyPersistency_Tiers(t *testing.T) {

	// liabilities 10000, current spending 10000, so persistency = (assets + income - 20000) / 200
	tests := []struct {
		name   string
		assets string
		income string
		want   decimal.Decimal
		tier   domain.PersistencyTier
	}{
		{"good", "100000", "20000", d("500"), domain.PersistencyGood},
		{"exactly 100", "30000", "10000", d("100"), domain.PersistencyBorderline},
		{"exactly 75", "25000", "10000", d("75"), domain.PersistencyBorderline},
		{"just below 75", "24999", "10000", d("74.995"), domain.PersistencyPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &domain.AccountSnapshot{
				TotalSavingAccount: d(tt.assets),
				CreditCard:         domain.CreditCard{TotalCreditCardLimit: d("10000")},
				Income:             domain.Income{Amount: d(tt.income)},
			}
			engine := NewFinancialAnalysis(account)

			got, err := engine.CalculatePersistency(d("10000"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertDecimal(t, "persistency", got, tt.want)
			if tier := engine.ClassifyPersistency(); tier != tt.tier {
				t.Errorf("expected %s, got %s", tt.tier, tier)
			}
		})
	}
}

func TestDerivedMetricsAreIdempotent(t *testing.T) {

	engine := NewFinancialAnalysis(sampleAccount())

	first := []decimal.Decimal{engine.NetWorth(), engine.Liabilities(), engine.Cashflow(), engine.WealthAccumulationRate()}
	if _, err := engine.CalculatePersistency(d("100")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := []decimal.Decimal{engine.NetWorth(), engine.Liabilities(), engine.Cashflow(), engine.WealthAccumulationRate()}

	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("metric %d changed between calls: %s then %s", i, first[i], second[i])
		}
	}
}

func TestAnalyze(t *testing.T) {

	engine := NewFinancialAnalysis(sampleAccount())

	got := engine.Analyze(d("4000"))

	dsr := d("2.5")
	persistency := d("12.5")
	want := domain.AnalysisResult{
		NetWorth:               d("15000"),
		Liabilities:            d("20000"),
		Cashflow:               d("-12000"),
		DebtServiceRatio:       &dsr,
		WealthAccumulationRate: engine.WealthAccumulationRate(),
		CurrentSpending:        d("4000"),
		Persistency:            &persistency,
		PersistencyTier:        domain.PersistencyPoor,
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("Analyze mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_UndefinedRatiosAreNil(t *testing.T) {

	engine := NewFinancialAnalysis(&domain.AccountSnapshot{TotalSavingAccount: d("100")})

	got := engine.Analyze(decimal.Zero)

	if got.DebtServiceRatio != nil {
		t.Errorf("expected nil debt service ratio, got %s", got.DebtServiceRatio)
	}
	if got.Persistency != nil {
		t.Errorf("expected nil persistency, got %s", got.Persistency)
	}
	if got.PersistencyTier != domain.PersistencyPoor {
		t.Errorf("expected poor, got %s", got.PersistencyTier)
	}
}
