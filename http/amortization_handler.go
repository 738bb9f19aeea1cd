package http

import (
	"encoding/json"
	"net/http"

	"mortgage-planner/domain"
	"mortgage-planner/service"
)

// AmortizationHandler serves the baseline and extra-payment strategies.
type AmortizationHandler struct {
	service *service.AmortizationService
}

func NewAmortizationHandler(service *service.AmortizationService) *AmortizationHandler {
	return &AmortizationHandler{service: service}
}

// ExtraPaymentRequest is the body of POST /mortgage/extra-payment.
type ExtraPaymentRequest struct {
	Loan         domain.LoanParameters `json:"loan"`
	ExtraPayment float64               `json:"extra_payment"`
}

func (h *AmortizationHandler) Baseline(w http.ResponseWriter, r *http.Request) {
	var loan domain.LoanParameters
	if err := json.NewDecoder(r.Body).Decode(&loan); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := service.ValidateLoan(loan); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.service.Baseline(loan))
}

func (h *AmortizationHandler) ExtraPayment(w http.ResponseWriter, r *http.Request) {
	var req ExtraPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := service.ValidateLoan(req.Loan); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.service.WithExtraPayment(req.Loan, req.ExtraPayment))
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
