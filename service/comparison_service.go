package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"mortgage-planner/domain"
	"mortgage-planner/metrics"
	"mortgage-planner/repository"
)

// ComparisonService runs all four strategies against one mortgage and
// picks the winners. Completed reports are cached and recorded; both
// are best effort.
type ComparisonService struct {
	amortizer  *AmortizationService
	velocity   *VelocityService
	investment *InvestmentService
	repo       repository.ReportRepository
	cache      repository.CacheRepository
	log        *logrus.Logger
}

// NewComparisonService creates a ComparisonService over the three
// simulators.
func NewComparisonService(
	amortizer *AmortizationService,
	velocity *VelocityService,
	investment *InvestmentService,
	repo repository.ReportRepository,
	cache repository.CacheRepository,
	log *logrus.Logger,
) *ComparisonService {
	return &ComparisonService{
		amortizer:  amortizer,
		velocity:   velocity,
		investment: investment,
		repo:       repo,
		cache:      cache,
		log:        log,
	}
}

// Compare runs baseline, extra-payment, and velocity banking on the
// loan, then the investment projection over the winning paydown
// strategy's horizon. The credit line's monthly payment is reused as
// the extra-payment amount so all paydown strategies commit the same
// monthly outflow.
func (s *ComparisonService) Compare(input domain.CompareInput) (domain.AggregateReport, error) {
	if err := ValidateLoan(input.Loan); err != nil {
		return domain.AggregateReport{}, err
	}
	if input.CreditLine.AnnualRate < 0 {
		return domain.AggregateReport{}, errors.New("credit line rate must not be negative")
	}
	if input.CreditLine.AnnualRate > MaxAnnualRate {
		return domain.AggregateReport{}, fmt.Errorf("credit line rate exceeds the maximum of %.0f%%", MaxAnnualRate*100)
	}

	key, keyErr := cacheKey(input)
	if keyErr == nil {
		if cached, ok := s.cache.Get(key); ok {
			var report domain.AggregateReport
			err := json.Unmarshal([]byte(cached), &report)
			if err == nil {
				metrics.ObserveCacheLookup(true)
				return report, nil
			}
			s.log.Warnf("discarding unreadable cached report: %v", err)
		}
		metrics.ObserveCacheLookup(false)
	}

	baseline := s.amortizer.Baseline(input.Loan)
	extra := s.amortizer.WithExtraPayment(input.Loan, input.CreditLine.MonthlyPayment)

	velocity, err := s.velocity.Simulate(input.Loan, input.CreditLine)
	if err != nil {
		metrics.ObserveSimulation(domain.StrategyVelocityBanking, metrics.ResultError)
		return domain.AggregateReport{}, err
	}

	report := domain.AggregateReport{
		Baseline:           baseline,
		ExtraPayment:       extra,
		Velocity:           velocity,
		ExtraVsBaseline:    compareStrategies(baseline.TotalInterest, baseline.MonthsToPayoff, extra.TotalInterest, extra.MonthsToPayoff),
		VelocityVsBaseline: compareStrategies(baseline.TotalInterest, baseline.MonthsToPayoff, velocity.CombinedInterest, velocity.MonthsToPayoff),
		VelocityVsExtra:    compareStrategies(extra.TotalInterest, extra.MonthsToPayoff, velocity.CombinedInterest, velocity.MonthsToPayoff),
	}

	// Extra payment is evaluated first; velocity must strictly beat it.
	report.BestPaydownStrategy = domain.StrategyExtraPayment
	bestMonths := extra.MonthsToPayoff
	bestInterest := extra.TotalInterest
	if report.VelocityVsBaseline.InterestSaved > report.ExtraVsBaseline.InterestSaved {
		report.BestPaydownStrategy = domain.StrategyVelocityBanking
		bestMonths = velocity.MonthsToPayoff
		bestInterest = velocity.CombinedInterest
	}

	report.Investment = s.investment.Project(domain.InvestmentParameters{
		HorizonMonths:       bestMonths,
		MonthlyContribution: input.CreditLine.MonthlyPayment,
		AnnualReturn:        input.AnnualReturn,
	}, baseline.TotalInterest, bestInterest)

	// Paydown keeps a net-benefit tie; the check is strict.
	report.BestOverallStrategy = report.BestPaydownStrategy
	if report.Investment.NetBenefit > 0 {
		report.BestOverallStrategy = domain.StrategyInvestment
	}

	s.observe(report)

	// Record the run (not critical if it fails).
	if err := s.repo.Save(input, report); err != nil {
		s.log.Warnf("failed to save comparison report: %v", err)
	}
	if keyErr == nil {
		if encoded, err := json.Marshal(report); err == nil {
			if err := s.cache.Set(key, string(encoded)); err != nil {
				s.log.Warnf("failed to cache comparison report: %v", err)
			}
		}
	}

	return report, nil
}

// compareStrategies derives the savings of this strategy over the other
// one. Positive numbers mean this strategy wins.
func compareStrategies(otherInterest float64, otherMonths int, thisInterest float64, thisMonths int) domain.ComparisonResult {
	monthsSaved := otherMonths - thisMonths
	return domain.ComparisonResult{
		InterestSaved: otherInterest - thisInterest,
		MonthsSaved:   monthsSaved,
		YearsSaved:    float64(monthsSaved) / MonthsPerYear,
	}
}

func (s *ComparisonService) observe(report domain.AggregateReport) {
	metrics.ObserveSimulation(domain.StrategyBaseline, metrics.ResultSuccess)
	metrics.ObserveSimulation(domain.StrategyExtraPayment, metrics.ResultSuccess)
	metrics.ObserveSimulation(domain.StrategyVelocityBanking, metrics.ResultSuccess)
	metrics.ObserveSimulation(domain.StrategyInvestment, metrics.ResultSuccess)
	metrics.ObservePayoffMonths(domain.StrategyBaseline, report.Baseline.MonthsToPayoff)
	metrics.ObservePayoffMonths(domain.StrategyExtraPayment, report.ExtraPayment.MonthsToPayoff)
	metrics.ObservePayoffMonths(domain.StrategyVelocityBanking, report.Velocity.MonthsToPayoff)
}

// cacheKey digests the normalized input so identical requests share a
// cache entry.
func cacheKey(input domain.CompareInput) (string, error) {
	encoded, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(encoded)
	return "report:" + hex.EncodeToString(sum[:]), nil
}
