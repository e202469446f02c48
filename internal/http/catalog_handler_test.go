package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/catalog"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/repository"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/pkg/logger"
)

func setupCatalogRouter(t *testing.T) *chi.Mux {
	t.Helper()

	doc := &catalog.Document{
		Company: domain.Company{Name: "SK Steel And Furniture"},
		Categories: []catalog.Category{
			{ID: 1, Name: "Beds"},
			{ID: 3, Name: "Chairs"},
		},
	}
	service := catalog.NewService(doc, repository.NewMemoryRepository(testProducts()), logger.New("test"))
	handler := NewCatalogHandler(service)

	r := chi.NewRouter()
	r.Get("/catalog", handler.GetCatalog)
	r.Get("/products", handler.ListProducts)
	return r
}

func TestCatalogHandler_GetCatalog(t *testing.T) {
	r := setupCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SK Steel And Furniture", resp.Company.Name)
	require.Len(t, resp.Categories, 3)
	assert.Equal(t, domain.CategoryAll, resp.Categories[0].ID)
	assert.Equal(t, "All Products", resp.Categories[0].Name)
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	r := setupCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProductListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestCatalogHandler_ListProductsFiltered(t *testing.T) {
	r := setupCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?category=3&q=chair", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProductListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, int64(301), resp.Products[0].ID)
}

func TestCatalogHandler_ListProductsNoMatches(t *testing.T) {
	r := setupCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?q=nonexistent", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProductListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Products)
}
