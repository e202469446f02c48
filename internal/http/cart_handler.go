package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/cart"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/catalog"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/repository"
)

type CartHandler struct {
	store   cart.Store
	catalog *catalog.Service
}

func NewCartHandler(store cart.Store, catalog *catalog.Service) *CartHandler {
	return &CartHandler{store: store, catalog: catalog}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	SessionID  string            `json:"session_id"`
	Items      []domain.CartLine `json:"items"`
	Total      decimal.Decimal   `json:"total"`
	TotalItems int               `json:"total_items"`
}

func newCartResponse(c *domain.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []domain.CartLine{}
	}
	return CartResponse{
		SessionID:  c.SessionID,
		Items:      items,
		Total:      c.Total(),
		TotalItems: c.ItemCount(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	c, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	c, err := h.store.AddItem(r.Context(), sessionID, *product)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add item")
		return
	}
	respondJSON(w, http.StatusCreated, newCartResponse(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	c, err := h.store.UpdateQuantity(r.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update quantity")
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.store.RemoveItem(r.Context(), sessionID, productID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove item")
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	if err := h.store.Clear(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	c, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(c))
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return productID, true
}
