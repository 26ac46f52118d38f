package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"debt-payoff/domain"
)

type errorDetail struct {
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
	Debt  *int   `json:"debt,omitempty"`
	Name  string `json:"name,omitempty"`
}

type errorResponse struct {
	Error   string        `json:"error"`
	Details []errorDetail `json:"details,omitempty"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// writeError maps engine error kinds to status codes: invalid input is 400,
// payments that cannot converge are 422, anything else is 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var details []errorDetail

	for _, e := range leafErrors(err) {
		var invalid *domain.InvalidInputError
		var tooLow *domain.PaymentTooLowError
		var horizon *domain.PayoffHorizonExceededError

		switch {
		case errors.As(e, &invalid):
			status = http.StatusBadRequest
			details = append(details, errorDetail{Kind: "invalid_input", Field: invalid.Field})
		case errors.As(e, &tooLow):
			if status != http.StatusBadRequest {
				status = http.StatusUnprocessableEntity
			}
			d := errorDetail{Kind: "payment_too_low"}
			if tooLow.Index >= 0 {
				idx := tooLow.Index
				d.Debt = &idx
				d.Name = tooLow.Name
			}
			details = append(details, d)
		case errors.As(e, &horizon):
			if status != http.StatusBadRequest {
				status = http.StatusUnprocessableEntity
			}
			details = append(details, errorDetail{Kind: "payoff_horizon_exceeded"})
		}
	}

	msg := err.Error()
	if details == nil {
		log.Printf("Error handling request: %v", err)
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

func leafErrors(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, leafErrors(e)...)
		}
		return out
	}
	return []error{err}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeOptionalJSON is decodeJSON for endpoints where an empty body means the
// zero value. Chunked requests report no length, so emptiness is read off the body.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	log.Printf("Error decoding request body: %v", err)
	http.Error(w, "invalid request body", http.StatusBadRequest)
	return false
}
