package service

const (
	MaxDebtAmount        = 100_000_000.0 // 100 million
	MaxInterestRate      = 1000.0        // 1000% APR
	MaxDebtsPerList      = 50
	MaxPayoffMonths      = 1200 // 100 years
	DebtBalanceTolerance = 0.01 // balance treated as paid by the cascading planner
)
