package catalog

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/cache"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/repository"
)

// Service answers catalog queries. Company and category metadata come
// from the loaded document; products come from the repository through
// an optional cache.
type Service struct {
	company    domain.Company
	categories []domain.CategoryInfo
	repo       repository.CatalogRepository
	cache      cache.CatalogCache
	sfg        singleflight.Group // Prevents cache stampede
	log        *slog.Logger
}

func NewService(doc *Document, repo repository.CatalogRepository, log *slog.Logger) *Service {
	return &Service{
		company:    doc.Company,
		categories: doc.CategoryList(),
		repo:       repo,
		log:        log,
	}
}

// SetCache enables the read-through product cache.
func (s *Service) SetCache(c cache.CatalogCache) {
	s.cache = c
}

// InvalidateCache drops the cached product list. Called at startup so a
// redeployed catalog is not shadowed by an entry from the previous run.
func (s *Service) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx); err != nil {
		s.log.Warn("catalog cache invalidation failed", "error", err)
	}
}

func (s *Service) Company() domain.Company {
	return s.company
}

func (s *Service) Categories() []domain.CategoryInfo {
	return s.categories
}

// Products returns the flattened catalog in document order.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	// Use singleflight so concurrent cache misses hit the repository once
	v, err, _ := s.sfg.Do("products", func() (interface{}, error) {
		if s.cache != nil {
			products, errGet := s.cache.Get(ctx)
			if errGet == nil {
				return products, nil
			}
			if !errors.Is(errGet, cache.ErrCacheMiss) {
				s.log.Warn("catalog cache get failed", "error", errGet)
			}
		}

		products, errRepo := s.repo.GetAllProducts(ctx)
		if errRepo != nil {
			return nil, errRepo
		}

		if s.cache != nil {
			go func() {
				if errSet := s.cache.Set(context.Background(), products); errSet != nil {
					s.log.Warn("catalog cache set failed", "error", errSet)
				}
			}()
		}

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

// FilterProducts applies the category and search-term predicates to the
// full product list.
func (s *Service) FilterProducts(ctx context.Context, categoryID, term string) ([]domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(products, categoryID, term), nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}
