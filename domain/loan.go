package domain

// LoanParameters describes the original fixed-rate mortgage.
// AnnualRate is a decimal fraction (0.063 = 6.3% per year).
type LoanParameters struct {
	Principal  float64 `json:"principal"`
	TermMonths int     `json:"term_months"`
	AnnualRate float64 `json:"annual_rate"`
}

// BaselineResult is the outcome of amortizing the loan with no extra
// payments.
type BaselineResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	MonthsToPayoff int     `json:"months_to_payoff"`
	TotalInterest  float64 `json:"total_interest"`
}

// ExtraPaymentResult is the outcome of amortizing the loan with a fixed
// extra principal payment each month. MonthlyPayment is the committed
// monthly outflow (regular payment plus the nominal extra), even in the
// final partial month.
type ExtraPaymentResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	MonthsToPayoff int     `json:"months_to_payoff"`
	TotalInterest  float64 `json:"total_interest"`
}
