package domain

import "fmt"

// InvalidInputError reports a non-numeric or out-of-range parameter.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// PaymentTooLowError reports a monthly payment that does not exceed the first
// period's interest. Index is -1 outside a multi-debt run.
type PaymentTooLowError struct {
	Index    int
	Name     string
	Payment  float64
	Interest float64
}

func (e *PaymentTooLowError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("payment too low: $%.2f does not exceed monthly interest of $%.2f", e.Payment, e.Interest)
	}
	name := e.Name
	if name == "" {
		name = "Debt"
	}
	return fmt.Sprintf("payment too low for debt #%d (%s): $%.2f does not exceed monthly interest of $%.2f",
		e.Index, name, e.Payment, e.Interest)
}

// PayoffHorizonExceededError reports a simulation that reached its month cap
// without the balance reaching zero.
type PayoffHorizonExceededError struct {
	Months int
}

func (e *PayoffHorizonExceededError) Error() string {
	return fmt.Sprintf("payoff not reached within %d months", e.Months)
}
