package domain

import "strings"

type Strategy string

const (
	// Snowball orders debts by ascending balance.
	Snowball Strategy = "snowball"
	// Avalanche orders debts by descending APR.
	Avalanche Strategy = "avalanche"
	// Compare runs both orderings. Only the cascading planner accepts it.
	Compare Strategy = "compare"
)

// ParseStrategy accepts the strategy name in any case.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case Snowball:
		return Snowball, nil
	case Avalanche:
		return Avalanche, nil
	case Compare:
		return Compare, nil
	}
	return "", &InvalidInputError{Field: "strategy", Value: s, Reason: "must be snowball, avalanche or compare"}
}
