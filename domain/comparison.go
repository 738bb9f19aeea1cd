package domain

// Strategy names used in winner selections and metrics labels.
const (
	StrategyBaseline        = "baseline"
	StrategyExtraPayment    = "extra_payment"
	StrategyVelocityBanking = "velocity_banking"
	StrategyInvestment      = "investment"
)

// CompareInput carries everything needed to run all four strategies.
// The credit line's monthly payment doubles as the extra-payment amount
// so the paydown strategies commit the same monthly outflow.
type CompareInput struct {
	Loan         LoanParameters       `json:"loan"`
	CreditLine   CreditLineParameters `json:"credit_line"`
	AnnualReturn float64              `json:"annual_return"`
}

// ComparisonResult measures one strategy against another. All fields are
// derived from the two strategy results; YearsSaved is MonthsSaved/12.
type ComparisonResult struct {
	InterestSaved float64 `json:"interest_saved"`
	MonthsSaved   int     `json:"months_saved"`
	YearsSaved    float64 `json:"years_saved"`
}

// AggregateReport is the full strategy comparison returned to callers.
type AggregateReport struct {
	Baseline     BaselineResult     `json:"baseline"`
	ExtraPayment ExtraPaymentResult `json:"extra_payment"`
	Velocity     VelocityResult     `json:"velocity_banking"`
	Investment   InvestmentResult   `json:"investment"`

	ExtraVsBaseline    ComparisonResult `json:"extra_vs_baseline"`
	VelocityVsBaseline ComparisonResult `json:"velocity_vs_baseline"`
	VelocityVsExtra    ComparisonResult `json:"velocity_vs_extra"`

	BestPaydownStrategy string `json:"best_paydown_strategy"`
	BestOverallStrategy string `json:"best_overall_strategy"`
}
