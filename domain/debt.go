package domain

// Debt is a single balance to be paid off. APR is a percentage (19.99, not 0.1999).
type Debt struct {
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
	APR        float64 `json:"apr"`
	MinPayment float64 `json:"minPayment"`
}

// DisplayName returns the name shown in summaries; unnamed debts are labelled "Debt".
func (d Debt) DisplayName() string {
	if d.Name == "" {
		return "Debt"
	}
	return d.Name
}

// DebtList keeps debts in insertion order. Order carries no meaning; multi-debt
// simulation sorts a copy.
type DebtList []Debt

// Clone returns an independent copy of the list.
func (l DebtList) Clone() DebtList {
	out := make(DebtList, len(l))
	copy(out, l)
	return out
}

// TotalBalance sums the balances of every debt in the list.
func (l DebtList) TotalBalance() float64 {
	total := 0.0
	for _, d := range l {
		total += d.Balance
	}
	return total
}

// Editable Debt fields, as named by callers of DebtService.Edit.
const (
	FieldName       = "name"
	FieldBalance    = "balance"
	FieldAPR        = "apr"
	FieldMinPayment = "minPayment"
)
