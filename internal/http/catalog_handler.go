package http

import (
	"net/http"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/catalog"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

type CatalogHandler struct {
	service *catalog.Service
}

func NewCatalogHandler(service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type CatalogResponse struct {
	Company    domain.Company        `json:"company"`
	Categories []domain.CategoryInfo `json:"categories"`
}

type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CatalogResponse{
		Company:    h.service.Company(),
		Categories: h.service.Categories(),
	})
}

// ListProducts returns the flat product list narrowed by the category
// and search-term query parameters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category")
	if categoryID == "" {
		categoryID = domain.CategoryAll
	}
	term := r.URL.Query().Get("q")

	products, err := h.service.FilterProducts(r.Context(), categoryID, term)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}

	respondJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Count:    len(products),
	})
}
