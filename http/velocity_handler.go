package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"mortgage-planner/domain"
	"mortgage-planner/service"
)

// VelocityHandler serves the velocity banking strategy.
type VelocityHandler struct {
	service *service.VelocityService
}

func NewVelocityHandler(service *service.VelocityService) *VelocityHandler {
	return &VelocityHandler{service: service}
}

// VelocityRequest is the body of POST /mortgage/velocity.
type VelocityRequest struct {
	Loan       domain.LoanParameters       `json:"loan"`
	CreditLine domain.CreditLineParameters `json:"credit_line"`
}

func (h *VelocityHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req VelocityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := service.ValidateLoan(req.Loan); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Simulate(req.Loan, req.CreditLine)
	if err != nil {
		var nonAmortizing *domain.NonAmortizingLineError
		if errors.As(err, &nonAmortizing) {
			// The configuration can never pay off the line; the caller
			// has to raise the line payment.
			http.Error(w, nonAmortizing.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result)
}
