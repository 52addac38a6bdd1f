package aging

import (
	"github.com/example/gildedrose/internal/core/category"
	"github.com/example/gildedrose/internal/models"
)

// Step describes one day of aging for a single item.
// It is a value object: computing it does not touch the item.
type Step struct {
	Name          string
	Category      category.Category
	Delta         int
	SellInBefore  int
	SellInAfter   int
	QualityBefore int
	QualityAfter  int
}

// Changed reports whether the step alters the item at all.
func (s Step) Changed() bool {
	return s.SellInBefore != s.SellInAfter || s.QualityBefore != s.QualityAfter
}

// Plan computes the step for an item without mutating it.
// The delta is derived from the SellIn value before it is decremented.
func Plan(item models.Item) Step {
	c := category.Classify(item.Name)
	delta := QualityDelta(item.SellIn, item.Quality, c)

	return Step{
		Name:          item.Name,
		Category:      c,
		Delta:         delta,
		SellInBefore:  item.SellIn,
		SellInAfter:   NextSellIn(item.SellIn, c),
		QualityBefore: item.Quality,
		QualityAfter:  ApplyQualityDelta(item.Quality, delta),
	}
}

// Advance ages the item by one day in place and returns the applied step.
func Advance(item *models.Item) Step {
	step := Plan(*item)
	item.Quality = step.QualityAfter
	item.SellIn = step.SellInAfter
	return step
}

// AdvanceAll ages every item by one day and returns the applied steps in item order.
// Items are independent of each other.
func AdvanceAll(items []*models.Item) []Step {
	steps := make([]Step, len(items))
	for i, item := range items {
		steps[i] = Advance(item)
	}
	return steps
}
