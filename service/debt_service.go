package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"debt-payoff/domain"
	"debt-payoff/repository"
)

// DebtService owns the Debt List. Every mutation is saved through the repository
// before it returns; a failed save leaves the in-memory list unchanged.
type DebtService struct {
	mu    sync.Mutex
	repo  repository.DebtRepository
	debts domain.DebtList
}

func NewDebtService(repo repository.DebtRepository) *DebtService {
	return &DebtService{repo: repo, debts: domain.DebtList{}}
}

// Load replaces the in-memory list with the stored one.
func (s *DebtService) Load() error {
	debts, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("loading debts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.debts = debts
	return nil
}

// List returns a copy of the current list.
func (s *DebtService) List() domain.DebtList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debts.Clone()
}

// Add appends a zero-valued debt and returns its index.
func (s *DebtService) Add() (int, error) {
	return s.AddDebt(domain.Debt{})
}

// AddDebt appends d and returns its index.
func (s *DebtService) AddDebt(d domain.Debt) (int, error) {
	if err := ValidateDebt(d); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.debts) >= MaxDebtsPerList {
		return 0, &domain.InvalidInputError{
			Field:  "debts",
			Value:  len(s.debts),
			Reason: fmt.Sprintf("list already holds %d debts", MaxDebtsPerList),
		}
	}

	next := append(s.debts.Clone(), d)
	if err := s.repo.Save(next); err != nil {
		return 0, fmt.Errorf("saving debts: %w", err)
	}
	s.debts = next
	return len(next) - 1, nil
}

// Update applies patch to the debt at index.
func (s *DebtService) Update(index int, patch domain.DebtPatch) (domain.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return domain.Debt{}, err
	}

	updated := patch.Apply(s.debts[index])
	if err := ValidateDebt(updated); err != nil {
		return domain.Debt{}, err
	}

	next := s.debts.Clone()
	next[index] = updated
	if err := s.repo.Save(next); err != nil {
		return domain.Debt{}, fmt.Errorf("saving debts: %w", err)
	}
	s.debts = next
	return updated, nil
}

// Edit sets a single field from its text form, as a form input would.
func (s *DebtService) Edit(index int, field, value string) (domain.Debt, error) {
	patch, err := ParseFieldEdit(field, value)
	if err != nil {
		return domain.Debt{}, err
	}
	return s.Update(index, patch)
}

// Remove deletes the debt at index; later debts shift down by one.
func (s *DebtService) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return err
	}

	next := make(domain.DebtList, 0, len(s.debts)-1)
	next = append(next, s.debts[:index]...)
	next = append(next, s.debts[index+1:]...)
	if err := s.repo.Save(next); err != nil {
		return fmt.Errorf("saving debts: %w", err)
	}
	s.debts = next
	return nil
}

// Replace swaps in a whole list, e.g. one decoded from a share link.
func (s *DebtService) Replace(debts domain.DebtList) error {
	if len(debts) > MaxDebtsPerList {
		return &domain.InvalidInputError{
			Field:  "debts",
			Value:  len(debts),
			Reason: fmt.Sprintf("more than %d debts", MaxDebtsPerList),
		}
	}
	for i, d := range debts {
		if err := ValidateDebt(d); err != nil {
			return debtError(i, d, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := debts.Clone()
	if err := s.repo.Save(next); err != nil {
		return fmt.Errorf("saving debts: %w", err)
	}
	s.debts = next
	return nil
}

func (s *DebtService) checkIndex(index int) error {
	if index < 0 || index >= len(s.debts) {
		return &domain.InvalidInputError{
			Field:  "index",
			Value:  index,
			Reason: fmt.Sprintf("must be between 0 and %d", len(s.debts)-1),
		}
	}
	return nil
}

// ParseFieldEdit turns a field name and its text value into a patch.
func ParseFieldEdit(field, value string) (domain.DebtPatch, error) {
	if field == domain.FieldName {
		return domain.DebtPatch{Name: &value}, nil
	}

	var target **float64
	var patch domain.DebtPatch
	switch field {
	case domain.FieldBalance:
		target = &patch.Balance
	case domain.FieldAPR:
		target = &patch.APR
	case domain.FieldMinPayment:
		target = &patch.MinPayment
	default:
		return domain.DebtPatch{}, &domain.InvalidInputError{
			Field:  "field",
			Value:  field,
			Reason: "must be name, balance, apr or minPayment",
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || !finite(v) {
		return domain.DebtPatch{}, &domain.InvalidInputError{Field: field, Value: value, Reason: "must be a number"}
	}
	*target = &v
	return patch, nil
}
