package domain

import "fmt"

// CreditLineParameters describes the revolving line of credit used to
// chunk-pay mortgage principal. AnnualRate is a decimal fraction.
type CreditLineParameters struct {
	AnnualRate     float64 `json:"annual_rate"`
	ChunkAmount    float64 `json:"chunk_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	RepeatChunks   bool    `json:"repeat_chunks"`
}

// VelocityResult is the outcome of running the mortgage alongside the
// credit line. MonthsToPayoff counts months until both balances reach
// zero.
type VelocityResult struct {
	MonthsToPayoff   int     `json:"months_to_payoff"`
	MortgageInterest float64 `json:"mortgage_interest"`
	LineInterest     float64 `json:"line_interest"`
	CombinedInterest float64 `json:"combined_interest"`
}

// NonAmortizingLineError reports a credit-line configuration whose fixed
// monthly payment cannot cover the interest accruing on the line, so the
// balance would never decrease. The fix is to raise the line payment
// above the reported interest.
type NonAmortizingLineError struct {
	Month       int
	LineBalance float64
	Interest    float64
	Payment     float64
}

func (e *NonAmortizingLineError) Error() string {
	return fmt.Sprintf(
		"credit line cannot amortize: month %d payment %.2f does not cover interest %.2f on balance %.2f",
		e.Month, e.Payment, e.Interest, e.LineBalance,
	)
}
