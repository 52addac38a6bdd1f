// Package category contains the pure classification of items into categories.
// This is part of the Functional Core - no I/O, only pure functions.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the closed set of item categories. Aging rules switch over it.
type Category int

const (
	Normal Category = iota
	AgedBrie
	Sulfuras
	BackstagePasses
	Conjured
)

// ErrUnknownLabel is returned by Parse for a label that names no category.
var ErrUnknownLabel = errors.New("unknown category label")

// prefixes are tested in order; the first match wins. No prefix currently
// starts with another, so "Conjured Aged Brie" is Conjured.
var prefixes = []struct {
	prefix   string
	category Category
}{
	{"Aged Brie", AgedBrie},
	{"Sulfuras", Sulfuras},
	{"Backstage passes", BackstagePasses},
	{"Conjured", Conjured},
}

// Classify maps an item name to its category.
// Matching is a case-sensitive prefix test; names matching no prefix are Normal.
func Classify(name string) Category {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return Normal
}

// All returns every category in declaration order.
func All() []Category {
	return []Category{Normal, AgedBrie, Sulfuras, BackstagePasses, Conjured}
}

// String returns the category label.
func (c Category) String() string {
	switch c {
	case Normal:
		return "normal"
	case AgedBrie:
		return "aged-brie"
	case Sulfuras:
		return "sulfuras"
	case BackstagePasses:
		return "backstage-passes"
	case Conjured:
		return "conjured"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Parse returns the category for a label produced by String.
func Parse(label string) (Category, error) {
	for _, c := range All() {
		if c.String() == label {
			return c, nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}
