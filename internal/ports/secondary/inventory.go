package secondary

import (
	"context"

	"github.com/example/gildedrose/internal/models"
)

// InventorySource defines the interface for loading the initial inventory.
type InventorySource interface {
	// Load returns freshly created items. Callers own the returned slice.
	Load(ctx context.Context) ([]*models.Item, error)
}
