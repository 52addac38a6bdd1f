// Package aging contains the pure business logic for advancing items by one day.
// This is part of the Functional Core - no I/O, only pure functions.
//
// Accelerated aging starts on the sell-by day itself: every rule keyed on the
// sell date compares the pre-decrement SellIn with "<= 0", not "< 0".
package aging

import (
	"errors"
	"fmt"
	"math"

	"github.com/example/gildedrose/internal/core/category"
)

// Quality bounds applied whenever a non-zero delta is applied.
const (
	MinQuality = 0
	MaxQuality = 50
)

// ErrUnknownCategory is the panic value raised when a category has no rule.
var ErrUnknownCategory = errors.New("no aging rule for category")

// QualityDelta returns the change in quality for one day.
// sellIn is the value before this day's decrement.
func QualityDelta(sellIn, quality int, c category.Category) int {
	switch c {
	case category.Sulfuras:
		return 0
	case category.AgedBrie:
		if sellIn <= 0 {
			return 2
		}
		return 1
	case category.Conjured:
		if sellIn <= 0 {
			return -4
		}
		return -2
	case category.BackstagePasses:
		switch {
		case sellIn <= 0:
			return negate(quality)
		case sellIn <= 5:
			return 3
		case sellIn <= 10:
			return 2
		default:
			return 1
		}
	case category.Normal:
		if sellIn <= 0 {
			return -2
		}
		return -1
	}
	panic(fmt.Errorf("%w: %v", ErrUnknownCategory, c))
}

// ApplyQualityDelta returns the new quality after applying delta.
// A zero delta leaves quality untouched, even when it is outside the bounds.
func ApplyQualityDelta(quality, delta int) int {
	if delta == 0 {
		return quality
	}
	return min(max(addSaturating(quality, delta), MinQuality), MaxQuality)
}

// NextSellIn returns the sell-in value for the next day.
// Sulfuras is never sold and keeps its value.
func NextSellIn(sellIn int, c category.Category) int {
	if c == category.Sulfuras {
		return sellIn
	}
	return addSaturating(sellIn, -1)
}

// addSaturating returns a+b, pinned to math.MaxInt or math.MinInt instead of wrapping.
func addSaturating(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	if b < 0 && sum > a {
		return math.MinInt
	}
	return sum
}

// negate returns -q; math.MinInt has no positive counterpart and maps to math.MaxInt.
func negate(q int) int {
	if q == math.MinInt {
		return math.MaxInt
	}
	return -q
}

// Describe summarizes the aging rule of a category in one line.
func Describe(c category.Category) string {
	switch c {
	case category.Sulfuras:
		return "never sold, quality never changes"
	case category.AgedBrie:
		return "quality +1 per day, +2 from the sell date on"
	case category.Conjured:
		return "quality -2 per day, -4 from the sell date on"
	case category.BackstagePasses:
		return "quality +1, +2 within 10 days, +3 within 5 days, 0 from the concert day on"
	case category.Normal:
		return "quality -1 per day, -2 from the sell date on"
	}
	panic(fmt.Errorf("%w: %v", ErrUnknownCategory, c))
}
