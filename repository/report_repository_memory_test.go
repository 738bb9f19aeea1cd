package repository

import (
	"testing"

	"mortgage-planner/domain"
)

func TestReportRepositoryMemory_Save(t *testing.T) {
	repo := NewReportRepositoryMemory()

	input := domain.CompareInput{
		Loan: domain.LoanParameters{Principal: 500000, TermMonths: 300, AnnualRate: 0.063},
	}
	report := domain.AggregateReport{BestPaydownStrategy: domain.StrategyExtraPayment}

	if err := repo.Save(input, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(input, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.Len() != 2 {
		t.Errorf("expected 2 stored reports, got %d", repo.Len())
	}
}

func TestMockCache_RoundTrip(t *testing.T) {
	cache := NewMockCache()

	if _, ok := cache.Get("missing"); ok {
		t.Error("expected a miss for an unknown key")
	}

	if err := cache.Set("report:abc", `{"ok":true}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, ok := cache.Get("report:abc")
	if !ok || val != `{"ok":true}` {
		t.Errorf("expected cached value, got %q (ok=%v)", val, ok)
	}
}
