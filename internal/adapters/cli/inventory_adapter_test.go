package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/gildedrose/internal/core/category"
	"github.com/example/gildedrose/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

// mockInventoryService implements primary.InventoryService for testing
type mockInventoryService struct {
	simulateFn func(ctx context.Context, days int) ([]*primary.DaySnapshot, error)
	classifyFn func(ctx context.Context, name string) (string, error)

	// Track calls for verification
	lastDays int
}

func (m *mockInventoryService) UpdateQuality(ctx context.Context) error {
	return errors.New("not implemented in adapter")
}

func (m *mockInventoryService) Items(ctx context.Context) ([]*primary.Item, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockInventoryService) Simulate(ctx context.Context, days int) ([]*primary.DaySnapshot, error) {
	m.lastDays = days
	if m.simulateFn != nil {
		return m.simulateFn(ctx, days)
	}
	return []*primary.DaySnapshot{
		{Day: 0, Items: []*primary.Item{
			{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20, Category: "normal"},
			{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80, Category: "sulfuras"},
		}},
		{Day: 1, Items: []*primary.Item{
			{Name: "+5 Dexterity Vest", SellIn: 9, Quality: 19, Category: "normal"},
			{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80, Category: "sulfuras"},
		}},
	}, nil
}

func (m *mockInventoryService) Classify(ctx context.Context, name string) (string, error) {
	if m.classifyFn != nil {
		return m.classifyFn(ctx, name)
	}
	return category.Classify(name).String(), nil
}

// ============================================================================
// Simulate Tests
// ============================================================================

func TestInventoryAdapter_Simulate_Format(t *testing.T) {
	mock := &mockInventoryService{}
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(mock, &buf)

	err := adapter.Simulate(context.Background(), 1)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mock.lastDays != 1 {
		t.Errorf("expected days 1, got %d", mock.lastDays)
	}

	want := `-------- day 0 --------
name, sellIn, quality
+5 Dexterity Vest, 10, 20
Sulfuras, Hand of Ragnaros, 0, 80

-------- day 1 --------
name, sellIn, quality
+5 Dexterity Vest, 9, 19
Sulfuras, Hand of Ragnaros, 0, 80

`
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestInventoryAdapter_Simulate_Error(t *testing.T) {
	mock := &mockInventoryService{
		simulateFn: func(ctx context.Context, days int) ([]*primary.DaySnapshot, error) {
			return nil, errors.New("days must not be negative")
		},
	}
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(mock, &buf)

	err := adapter.Simulate(context.Background(), -1)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to simulate") {
		t.Errorf("expected wrapped error, got %q", err.Error())
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestInventoryAdapter_Table(t *testing.T) {
	mock := &mockInventoryService{}
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(mock, &buf)

	err := adapter.Table(context.Background(), 1)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := buf.String()
	for _, want := range []string{"Day 0", "Day 1", "NAME", "CATEGORY", "sulfuras", "normal", "+5 Dexterity Vest"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

// ============================================================================
// Classify Tests
// ============================================================================

func TestInventoryAdapter_Classify(t *testing.T) {
	mock := &mockInventoryService{}
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(mock, &buf)

	err := adapter.Classify(context.Background(), []string{"Aged Brie item", "Conjured Mana Cake"}, "")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "Aged Brie item → aged-brie\nConjured Mana Cake → conjured\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestInventoryAdapter_Classify_ExpectMatches(t *testing.T) {
	mock := &mockInventoryService{}
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(mock, &buf)

	err := adapter.Classify(context.Background(), []string{"Aged Brie", "Aged Brie item"}, "aged-brie")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestInventoryAdapter_Classify_ExpectMismatch(t *testing.T) {
	mock := &mockInventoryService{}
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(mock, &buf)

	err := adapter.Classify(context.Background(), []string{"Aged Brie", "Elixir of the Mongoose"}, "aged-brie")

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Elixir of the Mongoose") {
		t.Errorf("expected error to name the mismatched item, got %q", err.Error())
	}
	// Every name is still printed
	if strings.Count(buf.String(), "→") != 2 {
		t.Errorf("expected two lines of output, got %q", buf.String())
	}
}

func TestInventoryAdapter_Classify_UnknownExpectLabel(t *testing.T) {
	mock := &mockInventoryService{}
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(mock, &buf)

	err := adapter.Classify(context.Background(), []string{"Aged Brie"}, "legendary")

	if !errors.Is(err, category.ErrUnknownLabel) {
		t.Errorf("expected ErrUnknownLabel, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestInventoryAdapter_Classify_ServiceError(t *testing.T) {
	mock := &mockInventoryService{
		classifyFn: func(ctx context.Context, name string) (string, error) {
			return "", errors.New("boom")
		},
	}
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(mock, &buf)

	err := adapter.Classify(context.Background(), []string{"Aged Brie"}, "")

	if err == nil || !strings.Contains(err.Error(), "failed to classify") {
		t.Errorf("expected wrapped classify error, got %v", err)
	}
}

// ============================================================================
// Categories Tests
// ============================================================================

func TestInventoryAdapter_Categories(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewInventoryAdapter(&mockInventoryService{}, &buf)

	adapter.Categories()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(category.All()) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(category.All()), len(lines), buf.String())
	}
	for i, c := range category.All() {
		if !strings.HasPrefix(lines[i], c.String()) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], c.String())
		}
	}
}
