package service

import (
	"math"

	"debt-payoff/domain"
)

// roundTo2Decimals rounds a float64 to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateBalance(field string, v float64, allowZero bool) error {
	switch {
	case !finite(v):
		return &domain.InvalidInputError{Field: field, Value: v, Reason: "must be a number"}
	case v < 0 || (v == 0 && !allowZero):
		return &domain.InvalidInputError{Field: field, Value: v, Reason: "must be greater than zero"}
	case v > MaxDebtAmount:
		return &domain.InvalidInputError{Field: field, Value: v, Reason: "exceeds maximum debt amount"}
	}
	return nil
}

func validateAPR(field string, v float64) error {
	switch {
	case !finite(v):
		return &domain.InvalidInputError{Field: field, Value: v, Reason: "must be a number"}
	case v < 0:
		return &domain.InvalidInputError{Field: field, Value: v, Reason: "must not be negative"}
	case v > MaxInterestRate:
		return &domain.InvalidInputError{Field: field, Value: v, Reason: "exceeds maximum interest rate"}
	}
	return nil
}

func validatePayment(field string, v float64, allowZero bool) error {
	switch {
	case !finite(v):
		return &domain.InvalidInputError{Field: field, Value: v, Reason: "must be a number"}
	case v < 0 || (v == 0 && !allowZero):
		return &domain.InvalidInputError{Field: field, Value: v, Reason: "must be greater than zero"}
	}
	return nil
}

// ValidateDebt checks a stored debt before it takes part in a simulation.
// A zero balance is allowed; such a debt is already cleared.
func ValidateDebt(d domain.Debt) error {
	if err := validateBalance(domain.FieldBalance, d.Balance, true); err != nil {
		return err
	}
	if err := validateAPR(domain.FieldAPR, d.APR); err != nil {
		return err
	}
	return validatePayment(domain.FieldMinPayment, d.MinPayment, true)
}

func monthlyRate(aprPercent float64) float64 {
	return aprPercent / 100 / 12
}
