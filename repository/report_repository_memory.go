package repository

import (
	"sync"

	"mortgage-planner/domain"
)

type storedReport struct {
	input  domain.CompareInput
	report domain.AggregateReport
}

// ReportRepositoryMemory is an in-memory implementation of
// ReportRepository.
type ReportRepositoryMemory struct {
	mu   sync.Mutex
	data []storedReport
}

// NewReportRepositoryMemory creates a new in-memory report repository.
func NewReportRepositoryMemory() *ReportRepositoryMemory {
	return &ReportRepositoryMemory{
		data: []storedReport{},
	}
}

// Save stores the report in memory.
func (r *ReportRepositoryMemory) Save(
	input domain.CompareInput,
	report domain.AggregateReport,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, storedReport{input: input, report: report})
	return nil
}

// Len returns the number of stored reports.
func (r *ReportRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
