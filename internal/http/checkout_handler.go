package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/checkout"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/submit"
)

type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type CheckoutRequestDTO struct {
	Customer domain.CustomerInfo `json:"customer"`
}

// Checkout submits the session's cart. Submission errors are converted
// to a single user-facing message; the cart is preserved on every
// failure and cleared only once the order is finalized.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	outcome, err := h.service.Checkout(r.Context(), sessionID, req.Customer)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	var fieldErr *checkout.FieldError
	var configErr *submit.ConfigurationError
	var remoteErr *submit.RemoteError
	var transportErr *submit.TransportError

	switch {
	case errors.As(err, &fieldErr):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   fieldErr.Message,
			Code:    "validation_error",
			Details: fieldErr.Field,
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "your cart is empty")
	case errors.Is(err, checkout.ErrSubmissionInFlight):
		respondError(w, http.StatusConflict, "submission_in_flight", "an order submission is already in progress")
	case errors.As(err, &configErr):
		respondError(w, http.StatusServiceUnavailable, "configuration_error", configErr.Error())
	case errors.As(err, &remoteErr):
		respondError(w, http.StatusBadGateway, "remote_error", remoteErr.Error())
	case errors.As(err, &transportErr):
		respondError(w, http.StatusBadGateway, "transport_error", transportErr.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to place order")
	}
}
