package domain

// DebtPatch carries the fields of an edit; nil fields are left unchanged.
type DebtPatch struct {
	Name       *string  `json:"name,omitempty"`
	Balance    *float64 `json:"balance,omitempty"`
	APR        *float64 `json:"apr,omitempty"`
	MinPayment *float64 `json:"minPayment,omitempty"`
}

// Apply returns d with the patch's fields set.
func (p DebtPatch) Apply(d Debt) Debt {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Balance != nil {
		d.Balance = *p.Balance
	}
	if p.APR != nil {
		d.APR = *p.APR
	}
	if p.MinPayment != nil {
		d.MinPayment = *p.MinPayment
	}
	return d
}
