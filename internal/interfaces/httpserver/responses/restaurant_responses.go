package responses

import (
	"fooddash/discovery-api/internal/domain/restaurant"
)

const fallbackWarning = "Live restaurant data is unavailable; showing sample restaurants."

// SearchResponse wraps a restaurant list with delivery metadata about the result set.
type SearchResponse struct {
	Success  bool                    `json:"success"`
	Data     []restaurant.Restaurant `json:"data"`
	Count    int                     `json:"count"`
	Fallback bool                    `json:"fallback"`
	Warning  string                  `json:"warning,omitempty"`
}

// BuildSearchResponse creates response from a search result
func BuildSearchResponse(result *restaurant.SearchResult) *SearchResponse {
	resp := &SearchResponse{
		Success:  true,
		Data:     result.Restaurants,
		Count:    len(result.Restaurants),
		Fallback: result.Fallback,
	}
	if result.Fallback {
		resp.Warning = fallbackWarning
	}
	if resp.Data == nil {
		resp.Data = []restaurant.Restaurant{}
	}
	return resp
}

// DetailResponse wraps a single restaurant detail
type DetailResponse struct {
	Success bool                         `json:"success"`
	Data    *restaurant.RestaurantDetail `json:"data"`
}

// BuildDetailResponse creates response from a restaurant detail
func BuildDetailResponse(detail *restaurant.RestaurantDetail) *DetailResponse {
	return &DetailResponse{
		Success: true,
		Data:    detail,
	}
}

// MenuResponse wraps a restaurant menu
type MenuResponse struct {
	Success bool                      `json:"success"`
	Data    []restaurant.MenuCategory `json:"data"`
}

// BuildMenuResponse creates response from a generated menu
func BuildMenuResponse(menu []restaurant.MenuCategory) *MenuResponse {
	if menu == nil {
		menu = []restaurant.MenuCategory{}
	}
	return &MenuResponse{
		Success: true,
		Data:    menu,
	}
}
