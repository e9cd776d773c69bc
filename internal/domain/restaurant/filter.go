package restaurant

import (
	"sort"
	"strings"
	"time"

	"fooddash/discovery-api/internal/utils/functional"
)

// SortBy selects the ordering applied after filtering.
type SortBy string

const (
	SortByDistance     SortBy = "distance"
	SortByRating       SortBy = "rating"
	SortByDeliveryTime SortBy = "deliveryTime"
	SortByPriceAsc     SortBy = "priceAsc"
	SortByPriceDesc    SortBy = "priceDesc"
)

// DistanceFunc computes the distance from the viewer to a restaurant.
// Distance sorting is a no-op unless one is supplied.
type DistanceFunc func(Restaurant) float64

// Coarse open-hours window used by the OpenNow filter. There is no
// per-restaurant hours data on the list view, so this is a wall-clock
// approximation, not a real hours check.
const (
	openHourStart = 8
	openHourEnd   = 22
)

// FilterSpec narrows and orders an in-memory restaurant set. The zero
// value filters nothing.
type FilterSpec struct {
	Keyword    string
	PriceRange [2]int // inclusive [min,max]; [0,0] disables price filtering
	MinRating  float64
	// Cuisines is a membership filter; empty means no cuisine filtering.
	Cuisines     []string
	OpenNow      bool
	DeliveryOnly bool
	SortBy       SortBy
	Distance     DistanceFunc
	// Now supplies the clock for OpenNow; defaults to time.Now.
	Now func() time.Time
}

// Apply filters and sorts a restaurant set. Pure and idempotent:
// Apply(Apply(r, f), f) == Apply(r, f). It never re-queries a provider.
func Apply(restaurants []Restaurant, spec FilterSpec) []Restaurant {
	results := make([]Restaurant, len(restaurants))
	copy(results, restaurants)

	if keyword := strings.ToLower(strings.TrimSpace(spec.Keyword)); keyword != "" {
		results = functional.Filter(results, func(r Restaurant) bool {
			return functional.Any([]string{r.Name, r.Cuisine, r.Description}, func(field string) bool {
				return strings.Contains(strings.ToLower(field), keyword)
			})
		})
	}

	if spec.PriceRange != [2]int{} {
		results = functional.Filter(results, func(r Restaurant) bool {
			return r.PriceRange >= spec.PriceRange[0] && r.PriceRange <= spec.PriceRange[1]
		})
	}

	if spec.MinRating > 0 {
		results = functional.Filter(results, func(r Restaurant) bool {
			return r.Rating >= spec.MinRating
		})
	}

	if len(spec.Cuisines) > 0 {
		wanted := make(map[string]bool, len(spec.Cuisines))
		for _, c := range spec.Cuisines {
			wanted[strings.ToLower(c)] = true
		}
		results = functional.Filter(results, func(r Restaurant) bool {
			return wanted[strings.ToLower(r.Cuisine)]
		})
	}

	if spec.OpenNow {
		now := time.Now
		if spec.Now != nil {
			now = spec.Now
		}
		hour := now().Hour()
		if hour < openHourStart || hour >= openHourEnd {
			results = results[:0]
		}
	}

	if spec.DeliveryOnly {
		results = functional.Filter(results, func(r Restaurant) bool {
			return r.AcceptingOrders != nil && *r.AcceptingOrders
		})
	}

	sortRestaurants(results, spec)
	return results
}

func sortRestaurants(results []Restaurant, spec FilterSpec) {
	switch spec.SortBy {
	case SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case SortByDeliveryTime:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DeliveryTime < results[j].DeliveryTime
		})
	case SortByPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PriceRange < results[j].PriceRange
		})
	case SortByPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PriceRange > results[j].PriceRange
		})
	case SortByDistance:
		if spec.Distance != nil {
			sort.SliceStable(results, func(i, j int) bool {
				return spec.Distance(results[i]) < spec.Distance(results[j])
			})
		}
		// Without a distance function, provider order stands.
	}
}
