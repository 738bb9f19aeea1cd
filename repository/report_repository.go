package repository

import "mortgage-planner/domain"

// ReportRepository records completed strategy comparisons. Saving is
// best effort; callers log failures and keep going.
type ReportRepository interface {
	Save(input domain.CompareInput, report domain.AggregateReport) error
}
