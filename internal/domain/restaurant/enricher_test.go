package restaurant

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEnrichFillsFieldsWithinRanges(t *testing.T) {
	enricher := NewSeededEnricher(1)
	minFee := decimal.NewFromFloat(1.00)
	maxFee := decimal.NewFromFloat(6.00)

	for i := 0; i < 200; i++ {
		r := enricher.Enrich(Restaurant{ID: "r", Name: "R"})

		if r.DeliveryTime < 15 || r.DeliveryTime > 45 {
			t.Fatalf("delivery time %d outside [15,45]", r.DeliveryTime)
		}
		if r.DeliveryFee.LessThan(minFee) || r.DeliveryFee.GreaterThan(maxFee) {
			t.Fatalf("delivery fee %s outside [1.00,6.00]", r.DeliveryFee)
		}
		if r.DeliveryFee.Exponent() < -2 {
			t.Fatalf("delivery fee %s has more than two decimal places", r.DeliveryFee)
		}
		if r.AcceptingOrders == nil {
			t.Fatalf("expected acceptingOrders to be set")
		}
	}
}

func TestEnrichPreservesExistingValues(t *testing.T) {
	enricher := NewSeededEnricher(1)
	accepting := false
	fee := decimal.NewFromFloat(2.50)

	r := enricher.Enrich(Restaurant{
		ID:              "r",
		DeliveryTime:    30,
		DeliveryFee:     fee,
		AcceptingOrders: &accepting,
	})

	if r.DeliveryTime != 30 {
		t.Fatalf("expected delivery time preserved, got %d", r.DeliveryTime)
	}
	if !r.DeliveryFee.Equal(fee) {
		t.Fatalf("expected delivery fee preserved, got %s", r.DeliveryFee)
	}
	if r.AcceptingOrders == nil || *r.AcceptingOrders {
		t.Fatalf("expected acceptingOrders preserved as false")
	}
}

func TestEnrichIsDeterministicForSeed(t *testing.T) {
	a := NewSeededEnricher(42).Enrich(Restaurant{ID: "r"})
	b := NewSeededEnricher(42).Enrich(Restaurant{ID: "r"})

	if a.DeliveryTime != b.DeliveryTime || !a.DeliveryFee.Equal(b.DeliveryFee) {
		t.Fatalf("expected identical enrichment for identical seeds: %+v vs %+v", a, b)
	}
}

func TestGenerateMenuCategorySelection(t *testing.T) {
	enricher := NewSeededEnricher(7)

	cases := []struct {
		cuisine string
		first   string
	}{
		{"Italian", "Antipasti"},
		{"Northern Italian", "Antipasti"},
		{"Japanese", "Sushi"},
		{"Sushi Bars", "Sushi"},
		{"Mexican", "Tacos"},
		{"Steakhouse", "Appetizers"},
		{"", "Appetizers"},
	}

	for _, tc := range cases {
		menu := enricher.GenerateMenu(tc.cuisine)
		if len(menu) != 4 {
			t.Fatalf("cuisine %q: expected 4 categories, got %d", tc.cuisine, len(menu))
		}
		if menu[0].Name != tc.first {
			t.Fatalf("cuisine %q: expected first category %q, got %q", tc.cuisine, tc.first, menu[0].Name)
		}
	}
}

func TestGenerateMenuItemBounds(t *testing.T) {
	enricher := NewSeededEnricher(3)

	menu := enricher.GenerateMenu("Thai")
	for _, category := range menu {
		if len(category.Items) < 2 || len(category.Items) > 8 {
			t.Fatalf("category %q has %d items, want 2-8", category.Name, len(category.Items))
		}
		for _, item := range category.Items {
			if item.Name == "" || item.Description == "" {
				t.Fatalf("item %q missing name or description", item.ID)
			}
			if item.Category != category.Name {
				t.Fatalf("item %q category %q does not match %q", item.ID, item.Category, category.Name)
			}
			if item.Price.LessThanOrEqual(decimal.Zero) {
				t.Fatalf("item %q has non-positive price %s", item.ID, item.Price)
			}
		}
	}
}

func TestGenerateMenuIsDeterministicForSeed(t *testing.T) {
	a := NewSeededEnricher(99).GenerateMenu("Italian")
	b := NewSeededEnricher(99).GenerateMenu("Italian")

	if len(a) != len(b) {
		t.Fatalf("expected identical menus for identical seeds")
	}
	for i := range a {
		if len(a[i].Items) != len(b[i].Items) {
			t.Fatalf("category %q: item counts differ", a[i].Name)
		}
		for j := range a[i].Items {
			if a[i].Items[j].Name != b[i].Items[j].Name || !a[i].Items[j].Price.Equal(b[i].Items[j].Price) {
				t.Fatalf("category %q item %d differs between identical seeds", a[i].Name, j)
			}
		}
	}
}
