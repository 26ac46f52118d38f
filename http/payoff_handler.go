package http

import (
	"net/http"
	"time"

	"debt-payoff/domain"
	"debt-payoff/service"
)

type PayoffHandler struct {
	engine *service.PayoffEngine
	debts  *service.DebtService
	now    func() time.Time
}

func NewPayoffHandler(engine *service.PayoffEngine, debts *service.DebtService) *PayoffHandler {
	return &PayoffHandler{engine: engine, debts: debts, now: time.Now}
}

type targetDateRequest struct {
	Balance    float64 `json:"balance"`
	APR        float64 `json:"apr"`
	MinPayment float64 `json:"minPayment"`
	TargetDate string  `json:"targetDate,omitempty"` // YYYY-MM-DD
	Months     int     `json:"months,omitempty"`     // used when targetDate is empty
}

type targetDateResponse struct {
	domain.TargetDateResult
	Months          int     `json:"months"`
	ProgressPercent float64 `json:"progressPercent"`
}

func (h *PayoffHandler) TargetDate(w http.ResponseWriter, r *http.Request) {
	var req targetDateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	months := req.Months
	if req.TargetDate != "" {
		target, err := time.Parse(time.DateOnly, req.TargetDate)
		if err != nil {
			writeError(w, &domain.InvalidInputError{Field: "targetDate", Value: req.TargetDate, Reason: "must be YYYY-MM-DD"})
			return
		}
		months = service.MonthsUntil(h.now(), target)
	}

	result, err := h.engine.ScheduleByTargetDate(req.Balance, req.APR, req.MinPayment, months)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, targetDateResponse{
		TargetDateResult: result,
		Months:           months,
		ProgressPercent:  service.ProgressPercent(req.Balance, result.Schedule.FinalBalance()),
	})
}

type fixedPaymentRequest struct {
	Balance        float64 `json:"balance"`
	APR            float64 `json:"apr"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

type fixedPaymentResponse struct {
	domain.FixedPaymentResult
	PayoffDate string `json:"payoffDate"`
}

func (h *PayoffHandler) FixedPayment(w http.ResponseWriter, r *http.Request) {
	var req fixedPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.engine.MonthsToPayoffByFixedPayment(req.Balance, req.APR, req.MonthlyPayment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, fixedPaymentResponse{
		FixedPaymentResult: result,
		PayoffDate:         service.PayoffDate(h.now(), result.Months).Format(time.DateOnly),
	})
}

func (h *PayoffHandler) WhatIf(w http.ResponseWriter, r *http.Request) {
	var req fixedPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.engine.WhatIfProjection(req.Balance, req.APR, req.MonthlyPayment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type multiDebtRequest struct {
	Strategy      string           `json:"strategy"`
	MonthlyBudget float64          `json:"monthlyBudget,omitempty"`
	Debts         *domain.DebtList `json:"debts,omitempty"` // stored list when omitted
}

func (h *PayoffHandler) debtsFor(req multiDebtRequest) domain.DebtList {
	if req.Debts != nil {
		return *req.Debts
	}
	return h.debts.List()
}

func (h *PayoffHandler) MultiDebt(w http.ResponseWriter, r *http.Request) {
	var req multiDebtRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	strategy, err := domain.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.engine.SimulateMultiDebt(h.debtsFor(req), strategy)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *PayoffHandler) Cascade(w http.ResponseWriter, r *http.Request) {
	var req multiDebtRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	strategy, err := domain.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.engine.SimulateCascade(h.debtsFor(req), strategy, req.MonthlyBudget)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
