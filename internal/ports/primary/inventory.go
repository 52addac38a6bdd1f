package primary

import "context"

// InventoryService defines the primary port for inventory aging operations.
type InventoryService interface {
	// UpdateQuality advances every item in the inventory by one day.
	UpdateQuality(ctx context.Context) error

	// Items returns the current state of every item, in inventory order.
	Items(ctx context.Context) ([]*Item, error)

	// Simulate records the inventory on day 0, then advances it the given
	// number of days, recording the state after each day.
	Simulate(ctx context.Context, days int) ([]*DaySnapshot, error)

	// Classify returns the category label for an item name.
	Classify(ctx context.Context, name string) (string, error)
}

// Item represents an inventory item at the port boundary.
type Item struct {
	Name     string
	SellIn   int
	Quality  int
	Category string
}

// DaySnapshot is the inventory state at the end of a simulated day.
type DaySnapshot struct {
	Day   int
	Items []*Item
}
