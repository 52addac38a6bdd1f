package models

import "fmt"

// Item is a single inventory entry. Name is fixed once created; SellIn and
// Quality are mutated in place by the aging engine once per day.
type Item struct {
	Name    string
	SellIn  int
	Quality int
}

// NewItem creates an item. Values are taken as-is, including out-of-range quality.
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{
		Name:    name,
		SellIn:  sellIn,
		Quality: quality,
	}
}

// String renders the item as "<name>, <sell_in>, <quality>" for diagnostics.
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
