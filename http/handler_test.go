package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"debt-payoff/domain"
	"debt-payoff/repository"
	"debt-payoff/service"
)

func newTestRouter(t *testing.T, debts domain.DebtList) (http.Handler, *service.DebtService) {
	t.Helper()

	debtService := service.NewDebtService(repository.NewDebtRepository(repository.NewMemoryCache()))
	if err := debtService.Replace(debts); err != nil {
		t.Fatalf("seeding debts: %v", err)
	}

	limiter := NewRateLimiter(1000, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(service.NewPayoffEngine(0), debtService, limiter), debtService
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestTargetDateHandler_OK(t *testing.T) {

	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/payoff/target-date",
		`{"balance": 1200, "apr": 0, "minPayment": 50, "months": 12}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp targetDateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.RequiredMonthlyPayment != 100 || len(resp.Schedule.Balance) != 12 {
		t.Errorf("unexpected result: %+v", resp.TargetDateResult)
	}
	if resp.ProgressPercent != 100 {
		t.Errorf("expected full progress, got %v", resp.ProgressPercent)
	}
}

func TestTargetDateHandler_BadDate(t *testing.T) {

	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/payoff/target-date",
		`{"balance": 1200, "apr": 10, "targetDate": "next year"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"field":"targetDate"`) {
		t.Errorf("expected targetDate to be named, got %s", w.Body.String())
	}
}

func TestFixedPaymentHandler_PaymentTooLow(t *testing.T) {

	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/payoff/fixed-payment",
		`{"balance": 1000, "apr": 24, "monthlyPayment": 19}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "payment_too_low") {
		t.Errorf("expected payment_too_low kind, got %s", w.Body.String())
	}
}

func TestFixedPaymentHandler_OK(t *testing.T) {

	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/payoff/fixed-payment",
		`{"balance": 1000, "apr": 0, "monthlyPayment": 250}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp fixedPaymentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Months != 4 || resp.PayoffDate == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestWhatIfHandler_BadRequest(t *testing.T) {

	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/payoff/what-if", `{invalid-json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPayoffHandler_MethodNotAllowed(t *testing.T) {

	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/payoff/what-if", "")

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestMultiDebtHandler_UsesStoredList(t *testing.T) {

	router, _ := newTestRouter(t, domain.DebtList{
		{Name: "big", Balance: 1500, APR: 25, MinPayment: 100},
		{Name: "small", Balance: 500, APR: 10, MinPayment: 50},
	})

	w := do(t, router, http.MethodPost, "/payoff/multi-debt", `{"strategy": "Snowball"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.MultiDebtResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Debts) != 2 || resp.Debts[0].Name != "small" {
		t.Errorf("unexpected order: %+v", resp.Debts)
	}
}

func TestMultiDebtHandler_ReportsFailingDebt(t *testing.T) {

	router, _ := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/payoff/multi-debt",
		`{"strategy": "avalanche", "debts": [{"name": "ok", "balance": 100, "apr": 10, "minPayment": 20},
		{"name": "store card", "balance": 1000, "apr": 24, "minPayment": 19}]}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Details) != 1 || resp.Details[0].Debt == nil || *resp.Details[0].Debt != 1 || resp.Details[0].Name != "store card" {
		t.Errorf("expected debt 1 to be reported, got %+v", resp.Details)
	}
}

func TestCascadeHandler_Compare(t *testing.T) {

	router, _ := newTestRouter(t, domain.DebtList{
		{Name: "car", Balance: 1500, APR: 25, MinPayment: 100},
		{Name: "card", Balance: 500, APR: 10, MinPayment: 50},
	})

	w := do(t, router, http.MethodPost, "/payoff/cascade", `{"strategy": "compare", "monthlyBudget": 300}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.CascadeResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Comparison == nil || resp.MonthsToPayoff == 0 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestDebtHandlers_Lifecycle(t *testing.T) {

	router, debts := newTestRouter(t, nil)

	if w := do(t, router, http.MethodPost, "/debts", ""); w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := do(t, router, http.MethodPost, "/debts", `{"name": "Amex", "balance": 900, "apr": 21, "minPayment": 30}`); w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w := do(t, router, http.MethodPatch, "/debts/0", `{"name": "Visa", "balance": 1200}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	list := debts.List()
	if len(list) != 2 || list[0].Name != "Visa" || list[0].Balance != 1200 || list[0].APR != 0 {
		t.Fatalf("unexpected list after update: %+v", list)
	}

	if w := do(t, router, http.MethodDelete, "/debts/0", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}

	w = do(t, router, http.MethodGet, "/debts", "")
	var got domain.DebtList
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Amex" {
		t.Errorf("unexpected list: %+v", got)
	}
}

func TestDebtHandlers_CreateWithEmptyChunkedBody(t *testing.T) {

	router, debts := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/debts", strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if list := debts.List(); len(list) != 1 || list[0] != (domain.Debt{}) {
		t.Errorf("expected one zero debt, got %+v", list)
	}

	if w := do(t, router, http.MethodPost, "/debts", `{"name": `); w.Code != http.StatusBadRequest {
		t.Errorf("truncated body: expected 400, got %d", w.Code)
	}
}

func TestDebtHandlers_BadIndex(t *testing.T) {

	router, _ := newTestRouter(t, nil)

	cases := []struct {
		method, path, body string
	}{
		{http.MethodDelete, "/debts/7", ""},
		{http.MethodDelete, "/debts/abc", ""},
		{http.MethodPatch, "/debts/0", `{"name": "x"}`},
	}

	for _, tc := range cases {
		w := do(t, router, tc.method, tc.path, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s %s: expected 400, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestExportHandlers(t *testing.T) {

	router, _ := newTestRouter(t, domain.DebtList{
		{Name: "Visa", Balance: 1200, APR: 19.99, MinPayment: 40},
	})

	w := do(t, router, http.MethodGet, "/debts/export.csv", "")
	if w.Code != http.StatusOK || w.Body.String() != "Debt,Balance,APR,MinPayment\nVisa,1200,19.99,40\n" {
		t.Errorf("unexpected csv export: %d %q", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/debts/export.pdf?strategy=avalanche", "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Errorf("unexpected pdf export: %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("unexpected content type %q", w.Header().Get("Content-Type"))
	}

	w = do(t, router, http.MethodGet, "/debts/share?base=https://example.com/plan", "")
	var share shareResponse
	if err := json.NewDecoder(w.Body).Decode(&share); err != nil {
		t.Fatalf("decoding share response: %v", err)
	}
	if !strings.HasPrefix(share.URL, "https://example.com/plan?debt0.apr=19.99") {
		t.Errorf("unexpected share url %q", share.URL)
	}
}

func TestRateLimitMiddleware(t *testing.T) {

	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	handler := RateLimitMiddleware(limiter, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		if w := do(t, handler, http.MethodGet, "/", ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := do(t, handler, http.MethodGet, "/", "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected Retry-After header")
	}
}

func TestRateLimiter_Refill(t *testing.T) {

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	if ok, _ := limiter.Allow("a"); !ok {
		t.Fatal("first request should pass")
	}
	ok, wait := limiter.Allow("a")
	if ok || wait != time.Minute {
		t.Fatalf("expected a minute wait, got ok=%v wait=%v", ok, wait)
	}
	if ok, _ := limiter.Allow("b"); !ok {
		t.Fatal("other clients have their own bucket")
	}

	now = now.Add(time.Minute)
	if ok, _ := limiter.Allow("a"); !ok {
		t.Fatal("bucket should refill after the window")
	}
}
