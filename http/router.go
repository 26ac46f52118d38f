package http

import (
	"net/http"

	"debt-payoff/service"
)

// NewRouter wires every endpoint behind the rate limiter.
func NewRouter(
	engine *service.PayoffEngine,
	debts *service.DebtService,
	limiter *RateLimiter,
) http.Handler {

	payoff := NewPayoffHandler(engine, debts)
	debtHandler := NewDebtHandler(debts)
	exports := NewExportHandler(engine, debts)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /payoff/target-date", payoff.TargetDate)
	mux.HandleFunc("POST /payoff/fixed-payment", payoff.FixedPayment)
	mux.HandleFunc("POST /payoff/what-if", payoff.WhatIf)
	mux.HandleFunc("POST /payoff/multi-debt", payoff.MultiDebt)
	mux.HandleFunc("POST /payoff/cascade", payoff.Cascade)

	mux.HandleFunc("GET /debts", debtHandler.List)
	mux.HandleFunc("POST /debts", debtHandler.Create)
	mux.HandleFunc("PATCH /debts/{index}", debtHandler.Update)
	mux.HandleFunc("DELETE /debts/{index}", debtHandler.Delete)

	mux.HandleFunc("GET /debts/export.csv", exports.CSV)
	mux.HandleFunc("GET /debts/export.pdf", exports.PDF)
	mux.HandleFunc("GET /debts/share", exports.Share)

	return RateLimitMiddleware(limiter, mux)
}
