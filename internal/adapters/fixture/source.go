// Package fixture provides the built-in demo inventory.
package fixture

import (
	"context"

	"github.com/example/gildedrose/internal/models"
	"github.com/example/gildedrose/internal/ports/secondary"
)

// Source implements secondary.InventorySource with the demo inventory.
type Source struct{}

// NewSource creates a new fixture Source.
func NewSource() *Source {
	return &Source{}
}

// Load returns a fresh copy of the demo inventory.
func (s *Source) Load(ctx context.Context) ([]*models.Item, error) {
	return []*models.Item{
		models.NewItem("+5 Dexterity Vest", 10, 20),
		models.NewItem("Aged Brie", 2, 0),
		models.NewItem("Elixir of the Mongoose", 5, 7),
		models.NewItem("Sulfuras, Hand of Ragnaros", 0, 80),
		models.NewItem("Sulfuras, Hand of Ragnaros", -1, 80),
		models.NewItem("Backstage passes to a TAFKAL80ETC concert", 15, 20),
		models.NewItem("Backstage passes to a TAFKAL80ETC concert", 10, 49),
		models.NewItem("Backstage passes to a TAFKAL80ETC concert", 5, 49),
		models.NewItem("Conjured Mana Cake", 3, 6),
	}, nil
}

var _ secondary.InventorySource = (*Source)(nil)
