package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"mortgage-planner/domain"
	"mortgage-planner/service"
)

// ComparisonHandler serves the full four-strategy comparison.
type ComparisonHandler struct {
	service *service.ComparisonService
}

func NewComparisonHandler(service *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var input domain.CompareInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.service.Compare(input)
	if err != nil {
		var nonAmortizing *domain.NonAmortizingLineError
		if errors.As(err, &nonAmortizing) {
			http.Error(w, nonAmortizing.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, report)
}
