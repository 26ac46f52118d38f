package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"debt-payoff/domain"
)

// PayoffEngine computes amortization schedules and payoff horizons. It holds only
// its month cap; every method is pure and safe for concurrent use.
type PayoffEngine struct {
	maxMonths int
}

// NewPayoffEngine returns an engine capped at maxMonths, or MaxPayoffMonths when
// maxMonths is not positive.
func NewPayoffEngine(maxMonths int) *PayoffEngine {
	if maxMonths <= 0 {
		maxMonths = MaxPayoffMonths
	}
	return &PayoffEngine{maxMonths: maxMonths}
}

// MaxMonths is the horizon beyond which simulations give up.
func (e *PayoffEngine) MaxMonths() int {
	return e.maxMonths
}

// ScheduleByTargetDate computes the level payment that retires balance in exactly
// monthsRemaining periods and the month-by-month schedule for it.
//
// The schedule always has monthsRemaining entries. Principal never exceeds the
// remaining balance and the final period retires whatever is left, so the last
// balance is exactly zero; periods after an early zero crossing are all zero.
func (e *PayoffEngine) ScheduleByTargetDate(
	balance, aprPercent, minPayment float64,
	monthsRemaining int,
) (domain.TargetDateResult, error) {

	if err := validateBalance("balance", balance, false); err != nil {
		return domain.TargetDateResult{}, err
	}
	if err := validateAPR("apr", aprPercent); err != nil {
		return domain.TargetDateResult{}, err
	}
	if err := validatePayment("minPayment", minPayment, true); err != nil {
		return domain.TargetDateResult{}, err
	}
	if monthsRemaining < 1 || monthsRemaining > e.maxMonths {
		return domain.TargetDateResult{}, &domain.InvalidInputError{
			Field:  "months",
			Value:  monthsRemaining,
			Reason: fmt.Sprintf("must be between 1 and %d", e.maxMonths),
		}
	}

	rate := monthlyRate(aprPercent)
	n := float64(monthsRemaining)

	var payment float64
	if rate == 0 {
		payment = balance / n
	} else {
		payment = (rate * balance) / (1 - math.Pow(1+rate, -n))
	}

	schedule := domain.PayoffSchedule{
		Balance:   make([]float64, 0, monthsRemaining),
		Principal: make([]float64, 0, monthsRemaining),
		Interest:  make([]float64, 0, monthsRemaining),
	}

	remaining := balance
	totalInterest := 0.0
	paidOffAt := monthsRemaining

	for i := 0; i < monthsRemaining; i++ {
		if remaining <= 0 {
			schedule.Balance = append(schedule.Balance, 0)
			schedule.Principal = append(schedule.Principal, 0)
			schedule.Interest = append(schedule.Interest, 0)
			continue
		}

		interest := remaining * rate
		principal := payment - interest
		if principal > remaining || i == monthsRemaining-1 {
			principal = remaining
		}
		remaining -= principal
		totalInterest += interest

		if remaining <= 0 {
			remaining = 0
			paidOffAt = i + 1
		}

		schedule.Balance = append(schedule.Balance, remaining)
		schedule.Principal = append(schedule.Principal, principal)
		schedule.Interest = append(schedule.Interest, interest)
	}

	return domain.TargetDateResult{
		Schedule:               schedule,
		RequiredMonthlyPayment: payment,
		ExtraOverMinimum:       payment - minPayment,
		TotalInterest:          totalInterest,
		MonthsToPayoff:         paidOffAt,
	}, nil
}

// MonthsToPayoffByFixedPayment counts the months a constant payment needs to clear
// balance. TotalInterest is monthlyPayment*months - balance, so it includes the
// overpayment of the final month.
func (e *PayoffEngine) MonthsToPayoffByFixedPayment(
	balance, aprPercent, monthlyPayment float64,
) (domain.FixedPaymentResult, error) {

	rate, err := e.checkFixedPayment(balance, aprPercent, monthlyPayment)
	if err != nil {
		return domain.FixedPaymentResult{}, err
	}

	remaining := balance
	months := 0
	for remaining > 0 {
		if months >= e.maxMonths {
			return domain.FixedPaymentResult{}, &domain.PayoffHorizonExceededError{Months: e.maxMonths}
		}
		remaining = remaining*(1+rate) - monthlyPayment
		months++
	}

	return domain.FixedPaymentResult{
		Months:        months,
		TotalInterest: monthlyPayment*float64(months) - balance,
	}, nil
}

// WhatIfProjection runs the fixed-payment simulation and sums the interest
// actually accrued in each period.
func (e *PayoffEngine) WhatIfProjection(
	balance, aprPercent, monthlyPayment float64,
) (domain.FixedPaymentResult, error) {

	rate, err := e.checkFixedPayment(balance, aprPercent, monthlyPayment)
	if err != nil {
		return domain.FixedPaymentResult{}, err
	}

	remaining := balance
	months := 0
	totalInterest := 0.0
	for remaining > 0 {
		if months >= e.maxMonths {
			return domain.FixedPaymentResult{}, &domain.PayoffHorizonExceededError{Months: e.maxMonths}
		}
		interest := remaining * rate
		totalInterest += interest
		remaining = remaining + interest - monthlyPayment
		months++
	}

	return domain.FixedPaymentResult{
		Months:        months,
		TotalInterest: totalInterest,
	}, nil
}

// checkFixedPayment validates the inputs and enforces that the payment exceeds the
// first period's interest, which guarantees the balance shrinks every month.
func (e *PayoffEngine) checkFixedPayment(balance, aprPercent, monthlyPayment float64) (float64, error) {
	if err := validateBalance("balance", balance, false); err != nil {
		return 0, err
	}
	if err := validateAPR("apr", aprPercent); err != nil {
		return 0, err
	}
	if err := validatePayment("monthlyPayment", monthlyPayment, false); err != nil {
		return 0, err
	}

	rate := monthlyRate(aprPercent)
	interest := balance * rate
	if monthlyPayment <= interest {
		return 0, &domain.PaymentTooLowError{Index: -1, Payment: monthlyPayment, Interest: interest}
	}
	return rate, nil
}

type indexedDebt struct {
	index int
	debt  domain.Debt
}

// sortByStrategy returns a stably sorted copy of debts tagged with their original
// positions. The caller's list is left untouched.
func sortByStrategy(debts domain.DebtList, strategy domain.Strategy) []indexedDebt {
	sorted := make([]indexedDebt, len(debts))
	for i, d := range debts {
		sorted[i] = indexedDebt{index: i, debt: d}
	}

	if strategy == domain.Snowball {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].debt.Balance < sorted[j].debt.Balance
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].debt.APR > sorted[j].debt.APR
		})
	}
	return sorted
}

func checkStrategy(strategy domain.Strategy) error {
	if strategy != domain.Snowball && strategy != domain.Avalanche {
		return &domain.InvalidInputError{Field: "strategy", Value: strategy, Reason: "must be snowball or avalanche"}
	}
	return nil
}

// SimulateMultiDebt orders debts by strategy and pays each one independently at its
// own minimum. Payments freed by a cleared debt are not redirected; see
// SimulateCascade for that. Every failing debt is reported, joined, and no partial
// result is returned.
func (e *PayoffEngine) SimulateMultiDebt(
	debts domain.DebtList,
	strategy domain.Strategy,
) (domain.MultiDebtResult, error) {

	if err := checkStrategy(strategy); err != nil {
		return domain.MultiDebtResult{}, err
	}
	if len(debts) == 0 {
		return domain.MultiDebtResult{}, &domain.InvalidInputError{Field: "debts", Value: 0, Reason: "no debts provided"}
	}

	result := domain.MultiDebtResult{Strategy: strategy}
	var errs []error

	for _, item := range sortByStrategy(debts, strategy) {
		d := item.debt
		if err := ValidateDebt(d); err != nil {
			errs = append(errs, debtError(item.index, d, err))
			continue
		}

		months := 0
		if d.Balance > 0 {
			// A minimum that does not beat the first month's interest never clears.
			if interest := d.Balance * monthlyRate(d.APR); d.MinPayment <= interest {
				errs = append(errs, &domain.PaymentTooLowError{
					Index:    item.index,
					Name:     d.Name,
					Payment:  d.MinPayment,
					Interest: interest,
				})
				continue
			}
			r, err := e.MonthsToPayoffByFixedPayment(d.Balance, d.APR, d.MinPayment)
			if err != nil {
				errs = append(errs, debtError(item.index, d, err))
				continue
			}
			months = r.Months
		}

		result.Debts = append(result.Debts, domain.DebtPayoff{
			Index:  item.index,
			Name:   d.DisplayName(),
			Months: months,
		})
		result.TotalMonths += months
	}

	if len(errs) > 0 {
		return domain.MultiDebtResult{}, errors.Join(errs...)
	}
	return result, nil
}

// debtError attaches the debt's identity to an engine error.
func debtError(index int, d domain.Debt, err error) error {
	var tooLow *domain.PaymentTooLowError
	if errors.As(err, &tooLow) {
		return &domain.PaymentTooLowError{
			Index:    index,
			Name:     d.Name,
			Payment:  tooLow.Payment,
			Interest: tooLow.Interest,
		}
	}
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return &domain.InvalidInputError{
			Field:  fmt.Sprintf("debts[%d].%s", index, invalid.Field),
			Value:  invalid.Value,
			Reason: invalid.Reason,
		}
	}
	return fmt.Errorf("debt #%d (%s): %w", index, d.DisplayName(), err)
}

// MonthsUntil counts whole calendar months from now to target, at least 1.
func MonthsUntil(now, target time.Time) int {
	months := (target.Year()-now.Year())*12 + int(target.Month()-now.Month())
	return max(1, months)
}

// PayoffDate is the date months calendar months after now.
func PayoffDate(now time.Time, months int) time.Time {
	return now.AddDate(0, months, 0)
}

// ProgressPercent is the share of total already paid off, capped at 100.
func ProgressPercent(total, remaining float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Min(100, (total-remaining)/total*100)
}
