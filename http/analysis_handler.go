package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"pfm-backend/domain"
	"pfm-backend/service"
)

type AnalysisHandler struct {
	service *service.AnalysisService
	logger  *slog.Logger
}

func NewAnalysisHandler(service *service.AnalysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{service: service, logger: logger}
}

type analyzeAccountRequest struct {
	AccountID       string          `json:"account_id"`
	CurrentSpending decimal.Decimal `json:"current_spending"`
}

type analyzeSnapshotRequest struct {
	Snapshot        domain.AccountSnapshot `json:"snapshot"`
	CurrentSpending decimal.Decimal        `json:"current_spending"`
}

// GetAccount handles GET /accounts/{id}.
func (h *AnalysisHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/accounts/"), "/")
	snapshot, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		h.fail(w, "get account", id, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// AnalyzeAccount handles POST /analysis/account.
func (h *AnalysisHandler) AnalyzeAccount(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input analyzeAccountRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	report, err := h.service.AnalyzeAccount(r.Context(), input.AccountID, input.CurrentSpending)
	if err != nil {
		h.fail(w, "analyze account", input.AccountID, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// AnalyzeSnapshot handles POST /analysis/snapshot.
func (h *AnalysisHandler) AnalyzeSnapshot(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input analyzeSnapshotRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	report, err := h.service.AnalyzeSnapshot(r.Context(), input.Snapshot, input.CurrentSpending)
	if err != nil {
		h.fail(w, "analyze snapshot", input.Snapshot.ID, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// CalculateTax handles POST /tax/calculate.
func (h *AnalysisHandler) CalculateTax(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.TaxInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateTax(input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CheckInsurance handles POST /insurance/check.
func (h *AnalysisHandler) CheckInsurance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.InsuranceInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CheckInsurance(input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *AnalysisHandler) fail(w http.ResponseWriter, op, accountID string, err error) {
	if statusFor(err) == http.StatusInternalServerError {
		h.logger.Error(op+" failed", "account_id", accountID, "error", err)
	}
	respondError(w, err)
}
