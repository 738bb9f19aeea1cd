package domain

// InvestmentParameters describes investing a fixed monthly amount
// instead of paying down debt. AnnualReturn is a decimal fraction.
type InvestmentParameters struct {
	HorizonMonths       int     `json:"horizon_months"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualReturn        float64 `json:"annual_return"`
}

// InvestmentResult is an ordinary-annuity projection. NetBenefit is the
// investment gains minus the extra interest paid by not choosing the
// compared paydown strategy; positive means investing beats paying down.
type InvestmentResult struct {
	HorizonMonths int     `json:"horizon_months"`
	FinalValue    float64 `json:"final_value"`
	TotalInvested float64 `json:"total_invested"`
	Gains         float64 `json:"gains"`
	NetBenefit    float64 `json:"net_benefit"`
}
