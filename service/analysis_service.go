package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"

	"pfm-backend/analysis"
	"pfm-backend/domain"
	"pfm-backend/repository"
)

type AnalysisService struct {
	accounts repository.AccountRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewAnalysisService creates an AnalysisService. cache may be nil.
func NewAnalysisService(
	accounts repository.AccountRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{accounts: accounts, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// GetAccount returns the snapshot for accountID.
func (s *AnalysisService) GetAccount(ctx context.Context, accountID string) (domain.AccountSnapshot, error) {
	if accountID == "" {
		return domain.AccountSnapshot{}, fmt.Errorf("%w: account id is required", ErrValidation)
	}
	return s.accounts.Fetch(ctx, accountID)
}

// AnalyzeAccount fetches the account and computes its report.
func (s *AnalysisService) AnalyzeAccount(
	ctx context.Context,
	accountID string,
	currentSpending decimal.Decimal,
) (domain.AnalysisReport, error) {

	snapshot, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return domain.AnalysisReport{}, err
	}
	return s.analyze(ctx, snapshot, currentSpending)
}

// AnalyzeSnapshot computes the report for a caller-supplied snapshot.
func (s *AnalysisService) AnalyzeSnapshot(
	ctx context.Context,
	snapshot domain.AccountSnapshot,
	currentSpending decimal.Decimal,
) (domain.AnalysisReport, error) {

	if err := snapshot.Validate(); err != nil {
		return domain.AnalysisReport{}, err
	}
	return s.analyze(ctx, snapshot, currentSpending)
}

func (s *AnalysisService) analyze(
	ctx context.Context,
	snapshot domain.AccountSnapshot,
	currentSpending decimal.Decimal,
) (domain.AnalysisReport, error) {

	if err := validateAmounts(amount{"current_spending", currentSpending}); err != nil {
		return domain.AnalysisReport{}, err
	}

	key, keyErr := analysisCacheKey(snapshot, currentSpending)
	if keyErr == nil && s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var report domain.AnalysisReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return report, nil
			}
			s.logger.Warn("discarding unreadable cached analysis", "key", key)
		}
	}

	engine := analysis.NewFinancialAnalysis(&snapshot)
	report := buildReport(snapshot, engine.Analyze(currentSpending))

	// Caching is not critical
	if keyErr == nil && s.cache != nil {
		if raw, err := json.Marshal(report); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
				s.logger.Warn("failed to cache analysis", "account_id", snapshot.ID, "error", err)
			}
		}
	}

	return report, nil
}

func buildReport(snapshot domain.AccountSnapshot, result domain.AnalysisResult) domain.AnalysisReport {
	currency := snapshot.CurrencyCode()

	dsr := "N/A"
	if result.DebtServiceRatio != nil {
		dsr = result.DebtServiceRatio.StringFixed(2)
	}
	war := result.WealthAccumulationRate

	display := domain.DisplayAmounts{
		NetWorth:               domain.FormatAmount(result.NetWorth, currency),
		Liabilities:            domain.FormatAmount(result.Liabilities, currency),
		Cashflow:               domain.FormatAmount(result.Cashflow, currency),
		DebtServiceRatio:       dsr,
		WealthAccumulationRate: domain.FormatPercent(&war),
		Persistency:            domain.FormatPercent(result.Persistency),
	}

	return domain.AnalysisReport{
		AccountID: snapshot.ID,
		Currency:  currency,
		Result:    result,
		Display:   display,
		Summary: fmt.Sprintf("Net worth %s, persistency %s: %s (%s)",
			display.NetWorth, display.Persistency, result.PersistencyTier, result.PersistencyTier.Description()),
	}
}

func analysisCacheKey(snapshot domain.AccountSnapshot, currentSpending decimal.Decimal) (string, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	h := xxhash.New()
	_, _ = h.Write(raw)
	_, _ = h.WriteString("|" + currentSpending.String())
	return fmt.Sprintf("%s%s:%016x", analysisCacheKeyStart, snapshot.ID, h.Sum64()), nil
}

// CalculateTax returns the progressive tax with its bracket breakdown.
func (s *AnalysisService) CalculateTax(input domain.TaxInput) (domain.TaxResult, error) {
	if err := validateAmounts(
		amount{"income", input.Income},
		amount{"reliefs", input.Reliefs},
		amount{"rebates", input.Rebates},
	); err != nil {
		return domain.TaxResult{}, err
	}
	return analysis.TaxBreakdown(input.Income, input.Reliefs, input.Rebates), nil
}

// CheckInsurance reports whether the sum assured covers the income and by how
// much it falls short.
func (s *AnalysisService) CheckInsurance(input domain.InsuranceInput) (domain.InsuranceResult, error) {
	if err := validateAmounts(
		amount{"annual_income", input.AnnualIncome},
		amount{"insurance_sum_assured", input.InsuranceSumAssured},
	); err != nil {
		return domain.InsuranceResult{}, err
	}

	required := analysis.RequiredInsuranceCover(input.AnnualIncome)
	return domain.InsuranceResult{
		Adequate:      analysis.IsInsuranceCoverageAdequate(input.AnnualIncome, input.InsuranceSumAssured),
		RequiredCover: required,
		Shortfall:     decimal.Max(decimal.Zero, required.Sub(input.InsuranceSumAssured)),
	}, nil
}

type amount struct {
	name  string
	value decimal.Decimal
}

// validateAmounts reports the first invalid amount in argument order.
func validateAmounts(amounts ...amount) error {
	for _, a := range amounts {
		if err := domain.ValidateAmount(a.value); err != nil {
			return fmt.Errorf("%w: %s %v", ErrValidation, a.name, err)
		}
	}
	return nil
}
