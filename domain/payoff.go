package domain

// PayoffSchedule holds one entry per month in each of the three parallel series.
type PayoffSchedule struct {
	Balance   []float64 `json:"balance"`
	Principal []float64 `json:"principal"`
	Interest  []float64 `json:"interest"`
}

// Months is the schedule length.
func (s PayoffSchedule) Months() int {
	return len(s.Balance)
}

// FinalBalance is the remaining balance after the last period, or 0 for an empty schedule.
func (s PayoffSchedule) FinalBalance() float64 {
	if len(s.Balance) == 0 {
		return 0
	}
	return s.Balance[len(s.Balance)-1]
}

type TargetDateResult struct {
	Schedule               PayoffSchedule `json:"schedule"`
	RequiredMonthlyPayment float64        `json:"requiredMonthlyPayment"`
	// ExtraOverMinimum is how much the required payment exceeds the stated minimum.
	ExtraOverMinimum float64 `json:"extraOverMinimum"`
	TotalInterest    float64 `json:"totalInterest"`
	MonthsToPayoff   int     `json:"monthsToPayoff"`
}

type FixedPaymentResult struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"totalInterest"`
}

type DebtPayoff struct {
	Index  int    `json:"index"` // position in the caller's list
	Name   string `json:"name"`
	Months int    `json:"months"`
}

type MultiDebtResult struct {
	Strategy    Strategy     `json:"strategy"`
	Debts       []DebtPayoff `json:"debts"` // strategy order
	TotalMonths int          `json:"totalMonths"`
}

type MonthlyPayment struct {
	DebtName         string  `json:"debtName"`
	Payment          float64 `json:"payment"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type MonthlyPlan struct {
	Month     int              `json:"month"`
	Payments  []MonthlyPayment `json:"payments"`
	TotalPaid float64          `json:"totalPaid"`
}

type StrategyResult struct {
	TotalInterestPaid float64 `json:"totalInterestPaid"`
	MonthsToPayoff    int     `json:"monthsToPayoff"`
}

type Savings struct {
	InterestSaved float64 `json:"interestSaved"`
	MonthsSaved   int     `json:"monthsSaved"`
}

type Comparison struct {
	Snowball  StrategyResult `json:"snowball"`
	Avalanche StrategyResult `json:"avalanche"`
	Savings   Savings        `json:"savings"`
}

// CascadeResult is a multi-debt plan in which payments freed by cleared debts roll
// into the next debt in strategy order.
type CascadeResult struct {
	Strategy          Strategy      `json:"strategy"`
	TotalDebt         float64       `json:"totalDebt"`
	TotalInterestPaid float64       `json:"totalInterestPaid"`
	MonthsToPayoff    int           `json:"monthsToPayoff"`
	MonthlyPlan       []MonthlyPlan `json:"monthlyPlan"`
	Comparison        *Comparison   `json:"comparison,omitempty"`
}
