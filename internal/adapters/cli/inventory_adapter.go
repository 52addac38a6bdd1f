// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/gildedrose/internal/core/aging"
	"github.com/example/gildedrose/internal/core/category"
	"github.com/example/gildedrose/internal/ports/primary"
)

// InventoryAdapter is a thin adapter that translates CLI operations to InventoryService calls.
type InventoryAdapter struct {
	service primary.InventoryService
	out     io.Writer
}

// NewInventoryAdapter creates a new InventoryAdapter with the given service.
func NewInventoryAdapter(service primary.InventoryService, out io.Writer) *InventoryAdapter {
	return &InventoryAdapter{
		service: service,
		out:     out,
	}
}

// Simulate runs the inventory for the given days and prints each day as plain text.
func (a *InventoryAdapter) Simulate(ctx context.Context, days int) error {
	snapshots, err := a.service.Simulate(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}

	for _, snap := range snapshots {
		fmt.Fprintf(a.out, "-------- day %d --------\n", snap.Day)
		fmt.Fprintln(a.out, "name, sellIn, quality")
		for _, item := range snap.Items {
			fmt.Fprintf(a.out, "%s, %d, %d\n", item.Name, item.SellIn, item.Quality)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// Table runs the inventory for the given days and prints each day as an aligned table.
func (a *InventoryAdapter) Table(ctx context.Context, days int) error {
	snapshots, err := a.service.Simulate(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}

	for _, snap := range snapshots {
		fmt.Fprintf(a.out, "\nDay %d\n", snap.Day)
		fmt.Fprintf(a.out, "%-45s %-18s %7s %7s\n", "NAME", "CATEGORY", "SELL IN", "QUALITY")
		fmt.Fprintln(a.out, "──────────────────────────────────────────────────────────────────────────────")
		for _, item := range snap.Items {
			fmt.Fprintf(a.out, "%-45s %s %7d %7d\n", item.Name, categoryLabel(item.Category), item.SellIn, item.Quality)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// Classify prints the category of each name. If expect is non-empty, a name
// whose category differs from expect produces an error after all names are printed.
func (a *InventoryAdapter) Classify(ctx context.Context, names []string, expect string) error {
	if expect != "" {
		if _, err := category.Parse(expect); err != nil {
			return err
		}
	}

	var mismatched []string
	for _, name := range names {
		label, err := a.service.Classify(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to classify %q: %w", name, err)
		}
		fmt.Fprintf(a.out, "%s → %s\n", name, label)
		if expect != "" && label != expect {
			mismatched = append(mismatched, name)
		}
	}

	if len(mismatched) > 0 {
		return fmt.Errorf("%d name(s) not classified as %s: %q", len(mismatched), expect, mismatched)
	}
	return nil
}

// Categories prints every category with a summary of its aging rule.
func (a *InventoryAdapter) Categories() {
	for _, c := range category.All() {
		fmt.Fprintf(a.out, "%s %s\n", categoryLabel(c.String()), aging.Describe(c))
	}
}

// categoryLabel pads and colors a category label for table output.
func categoryLabel(label string) string {
	padded := fmt.Sprintf("%-18s", label)
	c, err := category.Parse(label)
	if err != nil {
		return padded
	}
	switch c {
	case category.Sulfuras:
		return color.New(color.FgHiYellow).Sprint(padded)
	case category.AgedBrie:
		return color.New(color.FgHiGreen).Sprint(padded)
	case category.BackstagePasses:
		return color.New(color.FgHiMagenta).Sprint(padded)
	case category.Conjured:
		return color.New(color.FgCyan).Sprint(padded)
	case category.Normal:
		return color.New(color.FgWhite).Sprint(padded)
	}
	return padded
}
