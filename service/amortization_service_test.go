package service

import (
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"mortgage-planner/domain"
)

// paymentTolerance absorbs cent rounding against published calculator
// values.
const paymentTolerance = 0.5

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestAmortizer() *AmortizationService {
	return NewAmortizationService(testLogger(), 0)
}

func assertClose(t *testing.T, expected, actual, tolerance float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance {
		t.Errorf("%s: expected %.2f, got %.2f (diff %.2f)",
			description, expected, actual, actual-expected)
	}
}

func TestBaseline_MonthlyPayment(t *testing.T) {
	// Expected values cross-checked against the MSE mortgage calculator.
	tests := []struct {
		principal       float64
		annualRate      float64
		termMonths      int
		expectedMonthly float64
		description     string
	}{
		{200000, 0.04, 300, 1055.67, "200k @ 4% for 25 years"},
		{300000, 0.05, 360, 1610.46, "300k @ 5% for 30 years"},
		{150000, 0.035, 240, 869.94, "150k @ 3.5% for 20 years"},
		{500000, 0.06, 300, 3221.51, "500k @ 6% for 25 years"},
		{100000, 0.00, 120, 833.33, "100k @ 0% for 10 years"},
	}

	svc := newTestAmortizer()
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			result := svc.Baseline(domain.LoanParameters{
				Principal:  tc.principal,
				TermMonths: tc.termMonths,
				AnnualRate: tc.annualRate,
			})
			assertClose(t, tc.expectedMonthly, result.MonthlyPayment, paymentTolerance, tc.description)
		})
	}
}

func TestBaseline_PaysOffInFullTerm(t *testing.T) {
	// Feeding the computed level payment back through the recurrence
	// must reproduce payoff in exactly the loan's term.
	tests := []domain.LoanParameters{
		{Principal: 500000, TermMonths: 300, AnnualRate: 0.063},
		{Principal: 200000, TermMonths: 300, AnnualRate: 0.04},
		{Principal: 100000, TermMonths: 120, AnnualRate: 0.0},
		{Principal: 350000, TermMonths: 180, AnnualRate: 0.055},
	}

	svc := newTestAmortizer()
	for _, loan := range tests {
		result := svc.Baseline(loan)
		if result.MonthsToPayoff != loan.TermMonths {
			t.Errorf("loan %+v: expected payoff in %d months, got %d",
				loan, loan.TermMonths, result.MonthsToPayoff)
		}
	}
}

func TestBaseline_ZeroRate(t *testing.T) {
	svc := newTestAmortizer()
	result := svc.Baseline(domain.LoanParameters{Principal: 1200, TermMonths: 12})

	if result.MonthlyPayment != 100 {
		t.Errorf("expected payment 100, got %.2f", result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %.2f", result.TotalInterest)
	}
	if result.MonthsToPayoff != 12 {
		t.Errorf("expected 12 months, got %d", result.MonthsToPayoff)
	}
}

func TestBaseline_DegenerateInputs(t *testing.T) {
	svc := newTestAmortizer()
	for _, loan := range []domain.LoanParameters{
		{Principal: 0, TermMonths: 120, AnnualRate: 0.05},
		{Principal: -1000, TermMonths: 120, AnnualRate: 0.05},
		{Principal: 100000, TermMonths: 0, AnnualRate: 0.05},
	} {
		result := svc.Baseline(loan)
		if result != (domain.BaselineResult{}) {
			t.Errorf("loan %+v: expected zero result, got %+v", loan, result)
		}
	}
}

func TestBaseline_MonthCapIsSafetyFuse(t *testing.T) {
	svc := NewAmortizationService(testLogger(), 10)
	result := svc.Baseline(domain.LoanParameters{Principal: 100000, TermMonths: 120, AnnualRate: 0.05})

	if result.MonthsToPayoff != 10 {
		t.Errorf("expected the loop to stop at the 10 month cap, got %d", result.MonthsToPayoff)
	}
}

func TestWithExtraPayment_ZeroExtraMatchesBaseline(t *testing.T) {
	svc := newTestAmortizer()
	loan := domain.LoanParameters{Principal: 500000, TermMonths: 300, AnnualRate: 0.063}

	baseline := svc.Baseline(loan)
	extra := svc.WithExtraPayment(loan, 0)

	if extra.MonthsToPayoff != baseline.MonthsToPayoff {
		t.Errorf("months: expected %d, got %d", baseline.MonthsToPayoff, extra.MonthsToPayoff)
	}
	if extra.TotalInterest != baseline.TotalInterest {
		t.Errorf("interest: expected %.2f, got %.2f", baseline.TotalInterest, extra.TotalInterest)
	}
	if extra.MonthlyPayment != baseline.MonthlyPayment {
		t.Errorf("payment: expected %.2f, got %.2f", baseline.MonthlyPayment, extra.MonthlyPayment)
	}
}

func TestWithExtraPayment_ReducesMonthsAndInterest(t *testing.T) {
	svc := newTestAmortizer()
	loan := domain.LoanParameters{Principal: 500000, TermMonths: 300, AnnualRate: 0.063}

	baseline := svc.Baseline(loan)
	extra := svc.WithExtraPayment(loan, 3000)

	if extra.MonthsToPayoff >= baseline.MonthsToPayoff {
		t.Errorf("expected fewer months than baseline %d, got %d",
			baseline.MonthsToPayoff, extra.MonthsToPayoff)
	}
	if extra.TotalInterest >= baseline.TotalInterest {
		t.Errorf("expected less interest than baseline %.2f, got %.2f",
			baseline.TotalInterest, extra.TotalInterest)
	}
	// The committed outflow is regular payment plus nominal extra, even
	// though the final month's extra is clamped.
	assertClose(t, baseline.MonthlyPayment+3000, extra.MonthlyPayment, 0.01, "committed outflow")
}

func TestWithExtraPayment_DegenerateInputs(t *testing.T) {
	svc := newTestAmortizer()
	result := svc.WithExtraPayment(domain.LoanParameters{Principal: 0, TermMonths: 0}, 500)
	if result != (domain.ExtraPaymentResult{}) {
		t.Errorf("expected zero result, got %+v", result)
	}
}

func TestValidateLoan(t *testing.T) {
	valid := domain.LoanParameters{Principal: 500000, TermMonths: 300, AnnualRate: 0.063}
	if err := ValidateLoan(valid); err != nil {
		t.Errorf("unexpected error for valid loan: %v", err)
	}

	for _, loan := range []domain.LoanParameters{
		{Principal: MaxPrincipal + 1, TermMonths: 300, AnnualRate: 0.05},
		{Principal: 100000, TermMonths: MaxTermMonths + 1, AnnualRate: 0.05},
		{Principal: 100000, TermMonths: 300, AnnualRate: MaxAnnualRate + 1},
		{Principal: 100000, TermMonths: 300, AnnualRate: -0.01},
	} {
		if err := ValidateLoan(loan); err == nil {
			t.Errorf("expected error for loan %+v", loan)
		}
	}
}
