// Package server exposes the calculator over a thin JSON API. It holds no
// state beyond the calculator's rounding precision; every request is computed
// from its own inputs.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/GuilhermeDReis/finch/pkg/constants"
	"github.com/GuilhermeDReis/finch/pkg/finance"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	calc        finance.Calculator
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, calc finance.Calculator, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, calc: calc, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/compound-interest", h.handleCompoundInterest)
	mux.HandleFunc("/api/installment", h.handleInstallment)
	mux.HandleFunc("/api/amortization", h.handleAmortization)
	mux.HandleFunc("/api/roi", h.handleROI)
	mux.HandleFunc("/api/inflation", h.handleInflation)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type compoundInterestRequest struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Periods   int     `json:"periods"`
}

type amountResponse struct {
	Amount float64 `json:"amount"`
}

type loanRequest struct {
	Total        float64 `json:"total"`
	MonthlyRate  float64 `json:"monthlyRate"`
	Installments int     `json:"installments"`
}

type installmentRow struct {
	Number           int     `json:"number"`
	Payment          float64 `json:"payment"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type amortizationResponse struct {
	Payment  float64          `json:"payment"`
	Schedule []installmentRow `json:"schedule"`
}

type roiRequest struct {
	InitialInvestment float64 `json:"initialInvestment"`
	FinalReturn       float64 `json:"finalReturn"`
}

type percentageResponse struct {
	Percentage float64 `json:"percentage"`
}

type inflationRequest struct {
	MonthlyRates []float64 `json:"monthlyRates"`
}

func (h *handler) handleCompoundInterest(w http.ResponseWriter, r *http.Request) {
	var req compoundInterestRequest
	if !h.decodeRequest(w, r, &req, "server.handleCompoundInterest") {
		return
	}

	amount := h.calc.CompoundInterest(req.Principal, req.Rate, req.Periods)
	h.writeJSON(w, http.StatusOK, amountResponse{Amount: amount})
}

func (h *handler) handleInstallment(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if !h.decodeRequest(w, r, &req, "server.handleInstallment") {
		return
	}

	payment, err := h.calc.InstallmentAmount(req.Total, req.MonthlyRate, req.Installments)
	if err != nil {
		h.respondErrorWithOp(w, validationStatus(err), err.Error(), "server.handleInstallment")
		return
	}

	h.writeJSON(w, http.StatusOK, amountResponse{Amount: payment})
}

func (h *handler) handleAmortization(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if !h.decodeRequest(w, r, &req, "server.handleAmortization") {
		return
	}

	schedule, err := h.calc.AmortizationTable(req.Total, req.MonthlyRate, req.Installments)
	if err != nil {
		h.respondErrorWithOp(w, validationStatus(err), err.Error(), "server.handleAmortization")
		return
	}

	rows := make([]installmentRow, 0, len(schedule))
	for _, row := range schedule {
		rows = append(rows, installmentRow{
			Number:           row.Number,
			Payment:          row.Payment,
			Interest:         row.Interest,
			Principal:        row.Principal,
			RemainingBalance: row.RemainingBalance,
		})
	}

	h.writeJSON(w, http.StatusOK, amortizationResponse{
		Payment:  schedule[0].Payment,
		Schedule: rows,
	})
}

func (h *handler) handleROI(w http.ResponseWriter, r *http.Request) {
	var req roiRequest
	if !h.decodeRequest(w, r, &req, "server.handleROI") {
		return
	}

	percentage, err := h.calc.ROI(req.InitialInvestment, req.FinalReturn)
	if err != nil {
		h.respondErrorWithOp(w, validationStatus(err), err.Error(), "server.handleROI")
		return
	}

	h.writeJSON(w, http.StatusOK, percentageResponse{Percentage: percentage})
}

func (h *handler) handleInflation(w http.ResponseWriter, r *http.Request) {
	var req inflationRequest
	if !h.decodeRequest(w, r, &req, "server.handleInflation") {
		return
	}

	h.writeJSON(w, http.StatusOK, percentageResponse{
		Percentage: finance.CumulativeInflation(req.MonthlyRates),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeRequest enforces the POST method and body size limit, then decodes the
// JSON payload. It writes the error response itself and reports whether the
// handler should proceed.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}

	return true
}

// validationStatus maps calculator errors to HTTP statuses. All current
// failure modes are input validation.
func validationStatus(err error) int {
	if errors.Is(err, finance.ErrNonPositiveRate) ||
		errors.Is(err, finance.ErrNonPositiveInstallments) ||
		errors.Is(err, finance.ErrZeroInvestment) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("calculator request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
