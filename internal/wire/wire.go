// Package wire provides dependency injection for the rose application.
package wire

import (
	"context"
	"io"

	"go.uber.org/zap"

	cliadapter "github.com/example/gildedrose/internal/adapters/cli"
	"github.com/example/gildedrose/internal/adapters/fixture"
	"github.com/example/gildedrose/internal/adapters/yamlfile"
	"github.com/example/gildedrose/internal/app"
	"github.com/example/gildedrose/internal/ports/primary"
	"github.com/example/gildedrose/internal/ports/secondary"
)

// InventorySource returns the YAML source for path, or the built-in demo
// inventory when path is empty.
func InventorySource(path string) secondary.InventorySource {
	if path == "" {
		return fixture.NewSource()
	}
	return yamlfile.NewSource(path)
}

// InventoryService returns a new InventoryService seeded from the inventory at path.
// Each call loads a fresh inventory.
func InventoryService(ctx context.Context, path string, logger *zap.Logger) (primary.InventoryService, error) {
	return app.NewInventoryServiceFromSource(ctx, InventorySource(path), logger)
}

// InventoryAdapterWithOutput returns a new InventoryAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func InventoryAdapterWithOutput(ctx context.Context, path string, logger *zap.Logger, out io.Writer) (*cliadapter.InventoryAdapter, error) {
	service, err := InventoryService(ctx, path, logger)
	if err != nil {
		return nil, err
	}
	return cliadapter.NewInventoryAdapter(service, out), nil
}

// ClassifierAdapterWithOutput returns an InventoryAdapter over an empty inventory.
// It serves commands that classify names without aging any items, so no seed is loaded.
func ClassifierAdapterWithOutput(logger *zap.Logger, out io.Writer) *cliadapter.InventoryAdapter {
	return cliadapter.NewInventoryAdapter(app.NewInventoryService(nil, logger), out)
}
