package router

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strings"

	paymentsapp "github.com/sk8shop/payment-service/api/services/payments/app"
)

const (
	msgInvalidAmount = "A valid amount is required."
	msgEmailRequired = "Email is required."
)

// paymentHandlers resolves the service lazily so tests can swap in a stub
// after the router is built.
type paymentHandlers struct {
	service func() paymentsapp.Service
}

// createPaymentIntentRequest is the strict shape of the payment intent
// payload. Amount is a pointer so that a missing or null field is
// distinguishable from zero; a non-numeric amount fails the decode outright.
type createPaymentIntentRequest struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

// createSubscriptionRequest is the strict shape of the subscription payload.
// PlanType is accepted for forward compatibility but currently unused.
type createSubscriptionRequest struct {
	Email    *string `json:"email"`
	PlanType string  `json:"planType"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h paymentHandlers) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createPaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidAmount})
		return
	}
	// Amounts are whole minor currency units. A fractional or out-of-range
	// number must never be rounded into a different charge, and converting
	// a float beyond int64 range is implementation-defined in Go.
	if req.Amount == nil || *req.Amount <= 0 ||
		*req.Amount != math.Trunc(*req.Amount) || *req.Amount >= math.MaxInt64 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidAmount})
		return
	}

	svc := h.service()
	if svc == nil {
		slog.Error("payment service not initialized")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: paymentsapp.ErrPaymentIntentFailed.Error()})
		return
	}

	result, err := svc.CreatePaymentIntent(int64(*req.Amount), req.Currency)
	if err != nil {
		slog.Error("create payment intent failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: paymentsapp.ErrPaymentIntentFailed.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h paymentHandlers) handleCreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgEmailRequired})
		return
	}
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgEmailRequired})
		return
	}

	svc := h.service()
	if svc == nil {
		slog.Error("payment service not initialized")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: paymentsapp.ErrSubscriptionFailed.Error()})
		return
	}

	// The email is passed through untrimmed; Stripe tolerates surrounding
	// whitespace and deduplicates customers on its own terms.
	result, err := svc.CreateSubscription(*req.Email)
	if err != nil {
		slog.Error("create subscription failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: paymentsapp.ErrSubscriptionFailed.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response body", "err", err)
	}
}
