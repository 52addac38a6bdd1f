// Package yamlfile loads an inventory from a YAML document.
//
// The expected document shape is:
//
//	items:
//	  - name: Aged Brie
//	    sell_in: 2
//	    quality: 0
//
// Values are taken as-is; quality outside 0..50 is not rejected.
package yamlfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/gildedrose/internal/models"
	"github.com/example/gildedrose/internal/ports/secondary"
)

type document struct {
	Items []itemRecord `yaml:"items"`
}

type itemRecord struct {
	Name    string `yaml:"name"`
	SellIn  int    `yaml:"sell_in"`
	Quality int    `yaml:"quality"`
}

// Source implements secondary.InventorySource by reading a YAML file.
type Source struct {
	path string
}

// NewSource creates a new Source reading from path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and parses the file on every call.
func (s *Source) Load(ctx context.Context) ([]*models.Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML inventory document. Keys other than items, name,
// sell_in and quality are rejected. An empty document is an empty inventory.
func Parse(data []byte) ([]*models.Item, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse inventory: %w", err)
	}

	items := make([]*models.Item, len(doc.Items))
	for i, r := range doc.Items {
		items[i] = models.NewItem(r.Name, r.SellIn, r.Quality)
	}
	return items, nil
}

var _ secondary.InventorySource = (*Source)(nil)
