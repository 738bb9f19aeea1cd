package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"mortgage-planner/domain"
)

// VelocityService simulates paying the mortgage alongside a revolving
// credit line used to front lump-sum principal payments. The mortgage
// and the line are two independent balances advanced in lockstep each
// month, each accruing interest at its own rate.
type VelocityService struct {
	log       *logrus.Logger
	amortizer *AmortizationService
	maxMonths int
}

// NewVelocityService creates a VelocityService sharing the amortizer's
// payment formula. A maxMonths of zero falls back to
// DefaultMaxSimulationMonths.
func NewVelocityService(log *logrus.Logger, amortizer *AmortizationService, maxMonths int) *VelocityService {
	if maxMonths <= 0 {
		maxMonths = DefaultMaxSimulationMonths
	}
	return &VelocityService{log: log, amortizer: amortizer, maxMonths: maxMonths}
}

// Simulate runs the velocity banking strategy. With a non-positive
// chunk amount there is nothing to draw, so the result is exactly the
// baseline amortization with zero line interest.
//
// Returns a *domain.NonAmortizingLineError when the fixed line payment
// cannot cover a month's line interest: the configuration would loop
// forever, so it fails fast instead.
func (s *VelocityService) Simulate(loan domain.LoanParameters, line domain.CreditLineParameters) (domain.VelocityResult, error) {
	if loan.Principal <= 0 || loan.TermMonths <= 0 {
		return domain.VelocityResult{}, nil
	}
	if line.ChunkAmount <= 0 {
		base := s.amortizer.Baseline(loan)
		return domain.VelocityResult{
			MonthsToPayoff:   base.MonthsToPayoff,
			MortgageInterest: base.TotalInterest,
			LineInterest:     0,
			CombinedInterest: base.TotalInterest,
		}, nil
	}

	// The mortgage keeps the baseline payment computed on the original
	// principal and term.
	mortgagePayment := s.amortizer.MonthlyPayment(loan)
	mortgageRate := loan.AnnualRate / MonthsPerYear
	lineRate := line.AnnualRate / MonthsPerYear

	mortgageBalance := loan.Principal
	chunk := math.Min(line.ChunkAmount, mortgageBalance)
	mortgageBalance -= chunk
	lineBalance := chunk

	months := 0
	mortgageInterest := 0.0
	lineInterest := 0.0

	for (mortgageBalance > 0 || lineBalance > 0) && months < s.maxMonths {
		months++

		if mortgageBalance > 0 {
			interest := mortgageBalance * mortgageRate
			paid := math.Min(mortgagePayment, mortgageBalance+interest)
			mortgageBalance -= paid - interest
			if mortgageBalance < BalanceTolerance {
				mortgageBalance = 0
			}
			mortgageInterest += interest
		}

		if lineBalance > 0 {
			interest := lineBalance * lineRate
			if line.MonthlyPayment <= interest && lineBalance > NegligibleLineBalance {
				return domain.VelocityResult{}, &domain.NonAmortizingLineError{
					Month:       months,
					LineBalance: lineBalance,
					Interest:    interest,
					Payment:     line.MonthlyPayment,
				}
			}
			paid := math.Min(line.MonthlyPayment, lineBalance+interest)
			lineBalance -= paid - interest
			if lineBalance < BalanceTolerance {
				lineBalance = 0
			}
			lineInterest += interest
		}

		// Once the line is cleared, another chunk attacks the principal.
		if line.RepeatChunks && lineBalance == 0 && mortgageBalance > 0 {
			chunk = math.Min(line.ChunkAmount, mortgageBalance)
			mortgageBalance -= chunk
			lineBalance = chunk
		}
	}

	if (mortgageBalance > 0 || lineBalance > 0) && months >= s.maxMonths && s.log != nil {
		s.log.Warnf("velocity simulation reached the %d month cap with mortgage %.2f and line %.2f outstanding",
			s.maxMonths, mortgageBalance, lineBalance)
	}

	return domain.VelocityResult{
		MonthsToPayoff:   months,
		MortgageInterest: roundTo2Decimals(mortgageInterest),
		LineInterest:     roundTo2Decimals(lineInterest),
		CombinedInterest: roundTo2Decimals(mortgageInterest + lineInterest),
	}, nil
}
