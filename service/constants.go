package service

const (
	MaxPrincipal  = 1_000_000_000.0 // 1 billion
	MaxAnnualRate = 10.0            // 1000% per year, as a decimal fraction
	MaxTermMonths = 600             // 50 years

	// DefaultMaxSimulationMonths bounds every simulation loop. Hitting it
	// means the configuration cannot amortize in reasonable time.
	DefaultMaxSimulationMonths = 1200

	// BalanceTolerance is the residual below which a balance counts as
	// paid off.
	BalanceTolerance = 0.01

	// NegligibleLineBalance is the credit-line balance under which the
	// non-amortizing check is skipped.
	NegligibleLineBalance = 0.01

	MonthsPerYear = 12
)
