package http

import (
	"encoding/json"
	"net/http"

	"mortgage-planner/domain"
	"mortgage-planner/service"
)

// InvestmentHandler serves the standalone investment projection.
type InvestmentHandler struct {
	service *service.InvestmentService
}

func NewInvestmentHandler(service *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

// InvestmentRequest is the body of POST /investment/project. The two
// interest figures feed the opportunity-cost comparison; leave both at
// zero when projecting in isolation.
type InvestmentRequest struct {
	Params             domain.InvestmentParameters `json:"params"`
	BaselineInterest   float64                     `json:"baseline_interest"`
	ComparisonInterest float64                     `json:"comparison_interest"`
}

func (h *InvestmentHandler) Project(w http.ResponseWriter, r *http.Request) {
	var req InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.service.Project(req.Params, req.BaselineInterest, req.ComparisonInterest))
}
