package pending

import (
	"context"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// Storage keeps order records that were finalized locally but not yet
// delivered to the remote repository. Save appends, List reads the
// queue in insertion order, Clear deletes everything.
type Storage interface {
	Save(ctx context.Context, order *domain.OrderRecord) error
	List(ctx context.Context) ([]domain.OrderRecord, error)
	Clear(ctx context.Context) error
}
