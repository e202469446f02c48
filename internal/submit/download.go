package submit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// DownloadSubmitter offers the pretty-printed order JSON as a local
// file so it can be uploaded manually. It doubles as the fallback when
// the remote repository write fails.
type DownloadSubmitter struct{}

func (d *DownloadSubmitter) Submit(_ context.Context, order *domain.OrderRecord) (*Outcome, error) {
	content, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	return &Outcome{
		OrderID:          order.ID,
		Via:              ViaDownload,
		FileName:         order.ID + ".json",
		Content:          string(content),
		LocallyFinalized: true,
		Message:          "order saved locally for manual upload",
	}, nil
}
