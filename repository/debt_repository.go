package repository

import (
	"encoding/json"
	"fmt"

	"debt-payoff/domain"
)

// DebtsKey is the key the Debt List is stored under.
const DebtsKey = "debts"

type DebtRepository interface {
	Load() (domain.DebtList, error)
	Save(debts domain.DebtList) error
}

// CacheDebtRepository stores the Debt List as a JSON array of records in a
// CacheRepository.
type CacheDebtRepository struct {
	cache CacheRepository
}

func NewDebtRepository(cache CacheRepository) *CacheDebtRepository {
	return &CacheDebtRepository{cache: cache}
}

// Load returns an empty list when nothing has been stored yet.
func (r *CacheDebtRepository) Load() (domain.DebtList, error) {
	raw, ok, err := r.cache.Get(DebtsKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return domain.DebtList{}, nil
	}

	var debts domain.DebtList
	if err := json.Unmarshal([]byte(raw), &debts); err != nil {
		return nil, fmt.Errorf("decoding stored debts: %w", err)
	}
	if debts == nil {
		debts = domain.DebtList{}
	}
	return debts, nil
}

func (r *CacheDebtRepository) Save(debts domain.DebtList) error {
	if debts == nil {
		debts = domain.DebtList{}
	}
	data, err := json.Marshal(debts)
	if err != nil {
		return fmt.Errorf("encoding debts: %w", err)
	}
	return r.cache.Set(DebtsKey, string(data))
}
