package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"mortgage-planner/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// AmortizationService simulates fixed-rate, fixed-term loans month by
// month, with or without extra principal payments.
type AmortizationService struct {
	log       *logrus.Logger
	maxMonths int
}

// NewAmortizationService creates an AmortizationService. A maxMonths of
// zero falls back to DefaultMaxSimulationMonths.
func NewAmortizationService(log *logrus.Logger, maxMonths int) *AmortizationService {
	if maxMonths <= 0 {
		maxMonths = DefaultMaxSimulationMonths
	}
	return &AmortizationService{log: log, maxMonths: maxMonths}
}

// ValidateLoan rejects loans beyond the service limits. Non-positive
// principals and terms are not errors; they produce zero results.
func ValidateLoan(loan domain.LoanParameters) error {
	if loan.Principal > MaxPrincipal {
		return fmt.Errorf("principal exceeds the maximum of $%.2f", float64(MaxPrincipal))
	}
	if loan.AnnualRate < 0 {
		return errors.New("annual rate must not be negative")
	}
	if loan.AnnualRate > MaxAnnualRate {
		return fmt.Errorf("annual rate exceeds the maximum of %.0f%%", MaxAnnualRate*100)
	}
	if loan.TermMonths > MaxTermMonths {
		return fmt.Errorf("term exceeds the maximum of %d months", MaxTermMonths)
	}
	return nil
}

// MonthlyPayment returns the level payment that amortizes the loan over
// its full term: P*r/(1-(1+r)^-n) for r > 0, P/n for a zero-rate loan.
func (s *AmortizationService) MonthlyPayment(loan domain.LoanParameters) float64 {
	if loan.Principal <= 0 || loan.TermMonths <= 0 {
		return 0
	}
	if loan.AnnualRate == 0 {
		return loan.Principal / float64(loan.TermMonths)
	}
	monthlyRate := loan.AnnualRate / MonthsPerYear
	n := float64(loan.TermMonths)
	return loan.Principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -n))
}

// Baseline simulates the loan with no extra payments.
func (s *AmortizationService) Baseline(loan domain.LoanParameters) domain.BaselineResult {
	if loan.Principal <= 0 || loan.TermMonths <= 0 {
		return domain.BaselineResult{}
	}

	payment := s.MonthlyPayment(loan)
	monthlyRate := loan.AnnualRate / MonthsPerYear

	balance := loan.Principal
	months := 0
	totalInterest := 0.0

	for balance > 0 && months < s.maxMonths {
		months++
		interest := balance * monthlyRate
		// The final payment is capped so the balance never goes negative.
		paid := math.Min(payment, balance+interest)
		balance -= paid - interest
		if balance < BalanceTolerance {
			balance = 0
		}
		totalInterest += interest
	}
	s.warnIfCapped(balance, months)

	return domain.BaselineResult{
		MonthlyPayment: roundTo2Decimals(payment),
		MonthsToPayoff: months,
		TotalInterest:  roundTo2Decimals(totalInterest),
	}
}

// WithExtraPayment simulates the loan with a fixed extra principal
// payment applied each month on top of the regular payment. The extra
// amount is clamped to the balance remaining after the regular payment
// so the balance never goes negative; the reported monthly payment is
// the nominal committed outflow.
func (s *AmortizationService) WithExtraPayment(loan domain.LoanParameters, extraPayment float64) domain.ExtraPaymentResult {
	if loan.Principal <= 0 || loan.TermMonths <= 0 {
		return domain.ExtraPaymentResult{}
	}
	if extraPayment < 0 {
		extraPayment = 0
	}

	payment := s.MonthlyPayment(loan)
	monthlyRate := loan.AnnualRate / MonthsPerYear

	balance := loan.Principal
	months := 0
	totalInterest := 0.0

	for balance > 0 && months < s.maxMonths {
		months++
		interest := balance * monthlyRate
		paid := math.Min(payment, balance+interest)
		balance -= paid - interest
		if balance < BalanceTolerance {
			balance = 0
		}
		extra := math.Min(extraPayment, balance)
		balance -= extra
		if balance < BalanceTolerance {
			balance = 0
		}
		totalInterest += interest
	}
	s.warnIfCapped(balance, months)

	return domain.ExtraPaymentResult{
		MonthlyPayment: roundTo2Decimals(payment + extraPayment),
		MonthsToPayoff: months,
		TotalInterest:  roundTo2Decimals(totalInterest),
	}
}

func (s *AmortizationService) warnIfCapped(balance float64, months int) {
	if balance > 0 && months >= s.maxMonths && s.log != nil {
		s.log.Warnf("amortization reached the %d month cap with %.2f outstanding", s.maxMonths, balance)
	}
}
