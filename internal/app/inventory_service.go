package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/gildedrose/internal/core/aging"
	"github.com/example/gildedrose/internal/core/category"
	"github.com/example/gildedrose/internal/models"
	"github.com/example/gildedrose/internal/ports/primary"
	"github.com/example/gildedrose/internal/ports/secondary"
)

// ErrInvalidDays is returned when a simulation is asked to run a negative number of days.
var ErrInvalidDays = errors.New("days must not be negative")

// InventoryServiceImpl implements the InventoryService interface.
// It owns the item collection and ages it in place.
type InventoryServiceImpl struct {
	items  []*models.Item
	logger *zap.Logger
}

// NewInventoryService creates a new InventoryService over the given items.
// The service takes ownership of the items.
func NewInventoryService(items []*models.Item, logger *zap.Logger) *InventoryServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryServiceImpl{
		items:  items,
		logger: logger,
	}
}

// NewInventoryServiceFromSource creates a new InventoryService seeded from source.
func NewInventoryServiceFromSource(ctx context.Context, source secondary.InventorySource, logger *zap.Logger) (*InventoryServiceImpl, error) {
	items, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return NewInventoryService(items, logger), nil
}

// UpdateQuality advances every item by one day.
func (s *InventoryServiceImpl) UpdateQuality(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, step := range aging.AdvanceAll(s.items) {
		s.logger.Debug("item aged",
			zap.String("name", step.Name),
			zap.Stringer("category", step.Category),
			zap.Int("delta", step.Delta),
			zap.Int("sell_in", step.SellInAfter),
			zap.Int("quality", step.QualityAfter),
			zap.Bool("changed", step.Changed()))
	}
	return nil
}

// Items returns the current state of every item.
func (s *InventoryServiceImpl) Items(ctx context.Context) ([]*primary.Item, error) {
	return s.snapshotItems(), nil
}

// Simulate runs the inventory forward and returns one snapshot per day, starting at day 0.
func (s *InventoryServiceImpl) Simulate(ctx context.Context, days int) ([]*primary.DaySnapshot, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}

	snapshots := make([]*primary.DaySnapshot, 0, days+1)
	snapshots = append(snapshots, &primary.DaySnapshot{Day: 0, Items: s.snapshotItems()})

	for day := 1; day <= days; day++ {
		if err := s.UpdateQuality(ctx); err != nil {
			return nil, fmt.Errorf("simulation stopped on day %d: %w", day, err)
		}
		snapshots = append(snapshots, &primary.DaySnapshot{Day: day, Items: s.snapshotItems()})
		s.logger.Info("day simulated", zap.Int("day", day), zap.Int("items", len(s.items)))
	}

	return snapshots, nil
}

// Classify returns the category label for an item name.
func (s *InventoryServiceImpl) Classify(ctx context.Context, name string) (string, error) {
	return category.Classify(name).String(), nil
}

func (s *InventoryServiceImpl) snapshotItems() []*primary.Item {
	result := make([]*primary.Item, len(s.items))
	for i, item := range s.items {
		result[i] = s.itemToPrimary(item)
	}
	return result
}

func (s *InventoryServiceImpl) itemToPrimary(item *models.Item) *primary.Item {
	return &primary.Item{
		Name:     item.Name,
		SellIn:   item.SellIn,
		Quality:  item.Quality,
		Category: category.Classify(item.Name).String(),
	}
}

// Ensure InventoryServiceImpl implements the interface
var _ primary.InventoryService = (*InventoryServiceImpl)(nil)
