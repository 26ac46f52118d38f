package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"debt-payoff/domain"
)

func TestMemoryCache_GetSet(t *testing.T) {

	cache := NewMemoryCache()

	if _, ok, err := cache.Get("debts"); ok || err != nil {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := cache.Set("debts", "[]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, ok, err := cache.Get("debts")
	if err != nil || !ok || val != "[]" {
		t.Errorf("expected stored value, got %q ok=%v err=%v", val, ok, err)
	}
}

func TestSQLiteCache_PersistsAcrossOpens(t *testing.T) {

	path := filepath.Join(t.TempDir(), "data", "debts.db")

	cache, err := OpenSQLiteCache(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, err := cache.Get("debts"); ok || err != nil {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := cache.Set("debts", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Set("debts", "second"); err != nil {
		t.Fatalf("unexpected error on overwrite: %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened, err := OpenSQLiteCache(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reopened.Close()

	val, ok, err := reopened.Get("debts")
	if err != nil || !ok || val != "second" {
		t.Errorf("expected %q, got %q ok=%v err=%v", "second", val, ok, err)
	}
}

func TestNewRedisCache_UnreachableServer(t *testing.T) {

	if _, err := NewRedisCache("127.0.0.1:1", 0, ""); err == nil {
		t.Errorf("expected connection error")
	}
}

func TestDebtRepository_EmptyStore(t *testing.T) {

	repo := NewDebtRepository(NewMemoryCache())

	debts, err := repo.Load()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if debts == nil || len(debts) != 0 {
		t.Errorf("expected an empty, non-nil list, got %#v", debts)
	}
}

func TestDebtRepository_RoundTripKeepsOrder(t *testing.T) {

	cache := NewMemoryCache()
	repo := NewDebtRepository(cache)
	debts := domain.DebtList{
		{Name: "b", Balance: 20, APR: 5, MinPayment: 1},
		{Name: "a", Balance: 10, APR: 19.99, MinPayment: 2},
	}

	if err := repo.Save(debts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _, _ := cache.Get(DebtsKey)
	want := `[{"name":"b","balance":20,"apr":5,"minPayment":1},{"name":"a","balance":10,"apr":19.99,"minPayment":2}]`
	if raw != want {
		t.Errorf("unexpected encoding:\n%s\nwant:\n%s", raw, want)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range debts {
		if loaded[i] != debts[i] {
			t.Errorf("debt %d: expected %+v, got %+v", i, debts[i], loaded[i])
		}
	}
}

func TestDebtRepository_CorruptValue(t *testing.T) {

	cache := NewMemoryCache()
	_ = cache.Set(DebtsKey, "{not json")

	if _, err := NewDebtRepository(cache).Load(); err == nil {
		t.Errorf("expected decode error")
	}
}

type failingCache struct{}

func (failingCache) Get(string) (string, bool, error) { return "", false, errors.New("down") }
func (failingCache) Set(string, string) error { return errors.New("down") }

func TestDebtRepository_BackendErrorsPropagate(t *testing.T) {

	repo := NewDebtRepository(failingCache{})

	if _, err := repo.Load(); err == nil {
		t.Errorf("expected load error")
	}
	if err := repo.Save(domain.DebtList{}); err == nil {
		t.Errorf("expected save error")
	}
}
