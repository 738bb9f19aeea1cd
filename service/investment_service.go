package service

import (
	"github.com/sirupsen/logrus"

	"mortgage-planner/domain"
)

// InvestmentService projects investing a fixed monthly amount instead
// of paying down debt, as a comparison baseline against the paydown
// strategies.
type InvestmentService struct {
	log *logrus.Logger
}

// NewInvestmentService creates an InvestmentService.
func NewInvestmentService(log *logrus.Logger) *InvestmentService {
	return &InvestmentService{log: log}
}

// Project compounds an ordinary annuity over the horizon: each month the
// value grows at annualReturn/12 and the contribution lands at month
// end. The net benefit weighs the gains against the interest the caller
// would have saved by paying down instead, so comparisonInterest should
// be the total interest of the paydown strategy being compared, not the
// raw baseline's.
func (s *InvestmentService) Project(params domain.InvestmentParameters, baselineInterest, comparisonInterest float64) domain.InvestmentResult {
	if params.HorizonMonths <= 0 || params.MonthlyContribution <= 0 {
		return domain.InvestmentResult{HorizonMonths: params.HorizonMonths}
	}

	monthlyRate := params.AnnualReturn / MonthsPerYear
	value := 0.0
	for month := 0; month < params.HorizonMonths; month++ {
		value = value*(1+monthlyRate) + params.MonthlyContribution
	}

	totalInvested := params.MonthlyContribution * float64(params.HorizonMonths)
	gains := value - totalInvested
	interestSavedByPaydown := baselineInterest - comparisonInterest

	return domain.InvestmentResult{
		HorizonMonths: params.HorizonMonths,
		FinalValue:    roundTo2Decimals(value),
		TotalInvested: roundTo2Decimals(totalInvested),
		Gains:         roundTo2Decimals(gains),
		NetBenefit:    roundTo2Decimals(gains - interestSavedByPaydown),
	}
}
