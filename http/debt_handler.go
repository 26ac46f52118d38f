package http

import (
	"net/http"
	"strconv"

	"debt-payoff/domain"
	"debt-payoff/service"
)

type DebtHandler struct {
	service *service.DebtService
}

func NewDebtHandler(service *service.DebtService) *DebtHandler {
	return &DebtHandler{service: service}
}

func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List())
}

type createdResponse struct {
	Index int         `json:"index"`
	Debt  domain.Debt `json:"debt"`
}

// Create appends the debt in the body, or a zero debt when the body is empty.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var d domain.Debt
	if !decodeOptionalJSON(w, r, &d) {
		return
	}

	index, err := h.service.AddDebt(d)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{Index: index, Debt: d})
}

func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var patch domain.DebtPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.service.Update(index, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(index); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, &domain.InvalidInputError{Field: "index", Value: raw, Reason: "must be an integer"})
		return 0, false
	}
	return index, true
}
