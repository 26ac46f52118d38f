package service

import (
	"errors"
	"fmt"
	"math"

	"debt-payoff/domain"
)

// SimulateCascade plans a true snowball or avalanche payoff under a fixed monthly
// budget: every debt gets its minimum, and whatever is left goes to the first
// unpaid debt in strategy order, so payments freed by cleared debts roll forward.
// Strategy Compare runs both orderings and returns the cheaper one with a comparison.
func (e *PayoffEngine) SimulateCascade(
	debts domain.DebtList,
	strategy domain.Strategy,
	monthlyBudget float64,
) (domain.CascadeResult, error) {

	if strategy != domain.Compare {
		if err := checkStrategy(strategy); err != nil {
			return domain.CascadeResult{}, err
		}
	}
	if len(debts) == 0 {
		return domain.CascadeResult{}, &domain.InvalidInputError{Field: "debts", Value: 0, Reason: "no debts provided"}
	}
	if len(debts) > MaxDebtsPerList {
		return domain.CascadeResult{}, &domain.InvalidInputError{
			Field:  "debts",
			Value:  len(debts),
			Reason: fmt.Sprintf("more than %d debts", MaxDebtsPerList),
		}
	}
	if err := validatePayment("monthlyBudget", monthlyBudget, false); err != nil {
		return domain.CascadeResult{}, err
	}

	var errs []error
	totalMinimumPayments := 0.0
	for i, d := range debts {
		if err := ValidateDebt(d); err != nil {
			errs = append(errs, debtError(i, d, err))
			continue
		}
		// The minimum must at least cover the monthly interest.
		interest := d.Balance * monthlyRate(d.APR)
		if d.Balance > 0 && d.MinPayment < interest {
			errs = append(errs, &domain.PaymentTooLowError{Index: i, Name: d.Name, Payment: d.MinPayment, Interest: interest})
			continue
		}
		totalMinimumPayments += d.MinPayment
	}
	if len(errs) > 0 {
		return domain.CascadeResult{}, errors.Join(errs...)
	}
	if totalMinimumPayments > monthlyBudget {
		return domain.CascadeResult{}, &domain.InvalidInputError{
			Field:  "monthlyBudget",
			Value:  monthlyBudget,
			Reason: fmt.Sprintf("does not cover the minimum payments of $%.2f", totalMinimumPayments),
		}
	}

	if strategy != domain.Compare {
		return e.cascade(debts, strategy, monthlyBudget)
	}

	snowball, err := e.cascade(debts, domain.Snowball, monthlyBudget)
	if err != nil {
		return domain.CascadeResult{}, err
	}
	avalanche, err := e.cascade(debts, domain.Avalanche, monthlyBudget)
	if err != nil {
		return domain.CascadeResult{}, err
	}

	result := snowball
	if avalanche.TotalInterestPaid < snowball.TotalInterestPaid {
		result = avalanche
	}
	result.Comparison = &domain.Comparison{
		Snowball: domain.StrategyResult{
			TotalInterestPaid: snowball.TotalInterestPaid,
			MonthsToPayoff:    snowball.MonthsToPayoff,
		},
		Avalanche: domain.StrategyResult{
			TotalInterestPaid: avalanche.TotalInterestPaid,
			MonthsToPayoff:    avalanche.MonthsToPayoff,
		},
		Savings: domain.Savings{
			InterestSaved: roundTo2Decimals(math.Max(0, snowball.TotalInterestPaid-avalanche.TotalInterestPaid)),
			MonthsSaved:   snowball.MonthsToPayoff - avalanche.MonthsToPayoff,
		},
	}
	return result, nil
}

func (e *PayoffEngine) cascade(
	debts domain.DebtList,
	strategy domain.Strategy,
	monthlyBudget float64,
) (domain.CascadeResult, error) {

	order := sortByStrategy(debts, strategy)
	balances := make([]float64, len(order))
	for i, item := range order {
		balances[i] = item.debt.Balance
	}

	var monthlyPlan []domain.MonthlyPlan
	totalInterestPaid := 0.0
	month := 0

	for !allPaid(balances) {
		if month >= e.maxMonths {
			return domain.CascadeResult{}, &domain.PayoffHorizonExceededError{Months: e.maxMonths}
		}
		month++

		// Interest accrues on every open balance before payments are applied.
		for i, item := range order {
			if balances[i] <= 0 {
				continue
			}
			interest := balances[i] * monthlyRate(item.debt.APR)
			balances[i] += interest
			totalInterestPaid += interest
		}

		available := monthlyBudget
		paid := make([]float64, len(order))

		// Minimums first.
		for i, item := range order {
			if balances[i] <= 0 {
				continue
			}
			payment := math.Min(math.Min(item.debt.MinPayment, balances[i]), available)
			balances[i] -= payment
			paid[i] += payment
			available -= payment
		}

		// Surplus goes to the open debts in strategy order.
		for i := range order {
			if available <= 0 {
				break
			}
			if balances[i] <= 0 {
				continue
			}
			extra := math.Min(available, balances[i])
			balances[i] -= extra
			paid[i] += extra
			available -= extra
		}

		plan := domain.MonthlyPlan{Month: month}
		totalPaid := 0.0
		for i, item := range order {
			if balances[i] <= DebtBalanceTolerance {
				balances[i] = 0
			}
			if paid[i] == 0 {
				continue
			}
			plan.Payments = append(plan.Payments, domain.MonthlyPayment{
				DebtName:         item.debt.DisplayName(),
				Payment:          roundTo2Decimals(paid[i]),
				RemainingBalance: roundTo2Decimals(balances[i]),
			})
			totalPaid += paid[i]
		}
		plan.TotalPaid = roundTo2Decimals(totalPaid)
		monthlyPlan = append(monthlyPlan, plan)
	}

	return domain.CascadeResult{
		Strategy:          strategy,
		TotalDebt:         roundTo2Decimals(debts.TotalBalance()),
		TotalInterestPaid: roundTo2Decimals(totalInterestPaid),
		MonthsToPayoff:    month,
		MonthlyPlan:       monthlyPlan,
	}, nil
}

func allPaid(balances []float64) bool {
	for _, b := range balances {
		if b > DebtBalanceTolerance {
			return false
		}
	}
	return true
}
