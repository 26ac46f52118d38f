package service

import (
	"errors"
	"testing"

	"debt-payoff/domain"
	"debt-payoff/repository"
)

type MockDebtRepository struct {
	Stored     domain.DebtList
	SaveCalls  int
	ForceError bool
}

func (m *MockDebtRepository) Load() (domain.DebtList, error) {
	if m.ForceError {
		return nil, errors.New("load error")
	}
	return m.Stored.Clone(), nil
}

func (m *MockDebtRepository) Save(debts domain.DebtList) error {
	m.SaveCalls++
	if m.ForceError {
		return errors.New("save error")
	}
	m.Stored = debts.Clone()
	return nil
}

func TestDebtService_AddSavesZeroDebt(t *testing.T) {

	repo := &MockDebtRepository{}
	service := NewDebtService(repo)

	index, err := service.Add()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index != 0 {
		t.Errorf("expected index 0, got %d", index)
	}
	if repo.SaveCalls != 1 {
		t.Errorf("expected one save, got %d", repo.SaveCalls)
	}
	if len(repo.Stored) != 1 || repo.Stored[0] != (domain.Debt{}) {
		t.Errorf("expected a zero debt to be stored, got %+v", repo.Stored)
	}
}

func TestDebtService_EditFields(t *testing.T) {

	repo := &MockDebtRepository{Stored: domain.DebtList{{}}}
	service := NewDebtService(repo)
	if err := service.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edits := []struct{ field, value string }{
		{"name", "Visa"},
		{"balance", "2500.50"},
		{"apr", " 19.99 "},
		{"minPayment", "75"},
	}
	for _, e := range edits {
		if _, err := service.Edit(0, e.field, e.value); err != nil {
			t.Fatalf("edit %s: unexpected error: %v", e.field, err)
		}
	}

	want := domain.Debt{Name: "Visa", Balance: 2500.50, APR: 19.99, MinPayment: 75}
	if got := service.List()[0]; got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if repo.SaveCalls != len(edits) {
		t.Errorf("expected a save per edit, got %d", repo.SaveCalls)
	}
}

func TestDebtService_EditRejectsBadInput(t *testing.T) {

	repo := &MockDebtRepository{Stored: domain.DebtList{{Name: "a"}}}
	service := NewDebtService(repo)
	_ = service.Load()

	cases := []struct {
		index        int
		field, value string
		wantField    string
	}{
		{0, "balance", "abc", "balance"},
		{0, "balance", "-1", "balance"},
		{0, "apr", "NaN", "apr"},
		{0, "colour", "red", "field"},
		{3, "name", "x", "index"},
	}

	for _, tc := range cases {
		_, err := service.Edit(tc.index, tc.field, tc.value)
		var invalid *domain.InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("%+v: expected InvalidInputError, got %v", tc, err)
			continue
		}
		if invalid.Field != tc.wantField {
			t.Errorf("%+v: expected field %q, got %q", tc, tc.wantField, invalid.Field)
		}
	}
	if repo.SaveCalls != 0 {
		t.Errorf("rejected edits must not be saved, got %d saves", repo.SaveCalls)
	}
}

func TestDebtService_RemoveKeepsOrder(t *testing.T) {

	repo := &MockDebtRepository{Stored: domain.DebtList{{Name: "a"}, {Name: "b"}, {Name: "c"}}}
	service := NewDebtService(repo)
	_ = service.Load()

	if err := service.Remove(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := service.List()
	if len(list) != 2 || list[0].Name != "a" || list[1].Name != "c" {
		t.Errorf("unexpected list after remove: %+v", list)
	}
	if len(repo.Stored) != 2 {
		t.Errorf("expected removal to be saved, got %+v", repo.Stored)
	}
}

func TestDebtService_FailedSaveLeavesListUnchanged(t *testing.T) {

	repo := &MockDebtRepository{}
	service := NewDebtService(repo)
	repo.ForceError = true

	if _, err := service.Add(); err == nil {
		t.Fatalf("expected save error")
	}
	if len(service.List()) != 0 {
		t.Errorf("expected list to stay empty, got %+v", service.List())
	}
}

func TestDebtService_ListIsACopy(t *testing.T) {

	repo := &MockDebtRepository{Stored: domain.DebtList{{Name: "a"}}}
	service := NewDebtService(repo)
	_ = service.Load()

	list := service.List()
	list[0].Name = "changed"

	if service.List()[0].Name != "a" {
		t.Errorf("List must not expose internal state")
	}
}

func TestDebtService_PersistsAcrossRestarts(t *testing.T) {

	cache := repository.NewMemoryCache()

	first := NewDebtService(repository.NewDebtRepository(cache))
	if _, err := first.AddDebt(domain.Debt{Name: "Visa", Balance: 1200, APR: 19.99, MinPayment: 40}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := NewDebtService(repository.NewDebtRepository(cache))
	if err := second.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := second.List()
	if len(list) != 1 || list[0].Name != "Visa" || list[0].APR != 19.99 {
		t.Errorf("expected the stored debt to be reloaded, got %+v", list)
	}
}

func TestDebtService_Replace(t *testing.T) {

	repo := &MockDebtRepository{Stored: domain.DebtList{{Name: "old"}}}
	service := NewDebtService(repo)
	_ = service.Load()

	err := service.Replace(domain.DebtList{{Name: "x", Balance: -1}})
	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) || invalid.Field != "debts[0].balance" {
		t.Errorf("expected debts[0].balance InvalidInputError, got %v", err)
	}

	if err := service.Replace(domain.DebtList{{Name: "new", Balance: 10}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if service.List()[0].Name != "new" || repo.Stored[0].Name != "new" {
		t.Errorf("expected list to be replaced and saved")
	}
}
