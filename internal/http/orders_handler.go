package http

import (
	"net/http"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/pending"
)

// PendingOrdersHandler exposes the locally queued orders that still
// need a manual upload. Only mounted when pending storage is enabled.
type PendingOrdersHandler struct {
	storage pending.Storage
}

func NewPendingOrdersHandler(storage pending.Storage) *PendingOrdersHandler {
	return &PendingOrdersHandler{storage: storage}
}

type PendingOrdersResponse struct {
	Orders []domain.OrderRecord `json:"orders"`
	Count  int                  `json:"count"`
}

func (h *PendingOrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.storage.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list pending orders")
		return
	}
	if orders == nil {
		orders = []domain.OrderRecord{}
	}
	respondJSON(w, http.StatusOK, PendingOrdersResponse{Orders: orders, Count: len(orders)})
}

func (h *PendingOrdersHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Clear(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear pending orders")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
