// Package restaurant holds the canonical, provider-agnostic restaurant
// model and the search pipeline built around it: normalization of raw
// provider payloads, enrichment with delivery-operational fields, filtering,
// and the search service with its mock-data fallback.
package restaurant

import (
	"github.com/shopspring/decimal"
)

// Location is a WGS84 coordinate pair. Every canonical restaurant carries
// one; records without coordinates are dropped during normalization.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Restaurant is the canonical list-view entity. Entities are constructed
// fresh per search request and never persisted.
type Restaurant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	PriceRange  int      `json:"priceRange"`
	Rating      float64  `json:"rating"`
	Location    Location `json:"location"`
	Image       string   `json:"image,omitempty"`

	// Delivery-operational fields. Zero DeliveryTime, zero DeliveryFee and
	// nil AcceptingOrders mean "not supplied yet"; the enricher fills them.
	DeliveryTime    int             `json:"deliveryTime"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	AcceptingOrders *bool           `json:"acceptingOrders,omitempty"`

	Menu []MenuCategory `json:"menu,omitempty"`
}

// Review is one user review on the detail view.
type Review struct {
	ID       string  `json:"id"`
	Rating   float64 `json:"rating"`
	Text     string  `json:"text"`
	Time     string  `json:"time"`
	Username string  `json:"username"`
}

// RestaurantDetail extends Restaurant with the detail-view fields.
type RestaurantDetail struct {
	Restaurant
	ReviewCount int      `json:"reviewCount"`
	Photos      []string `json:"photos"`
	Hours       []string `json:"hours"`
	Reviews     []Review `json:"reviews"`
}

// MenuCategory groups menu items under a named section, in display order.
type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuItem is one orderable dish.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Popular     bool            `json:"popular,omitempty"`
	Vegetarian  bool            `json:"vegetarian,omitempty"`
	Spicy       bool            `json:"spicy,omitempty"`
}

// clampPriceRange keeps the price tier inside 1..4, substituting the
// default tier 2 for unknown values.
func clampPriceRange(priceRange int) int {
	if priceRange <= 0 {
		return 2
	}
	if priceRange > 4 {
		return 4
	}
	return priceRange
}

// clampRating keeps ratings inside 0.0..5.0.
func clampRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}

func boolPtr(v bool) *bool {
	return &v
}
