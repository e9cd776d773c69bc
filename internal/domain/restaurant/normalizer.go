package restaurant

import (
	"context"
	"fmt"
	"math"
	"strings"

	"fooddash/discovery-api/internal/infrastructure/provider"
	"fooddash/discovery-api/internal/utils/functional"
	"fooddash/discovery-api/internal/utils/platformerrors"
)

// defaultCuisine is the placeholder used when a provider supplies no
// usable category.
const defaultCuisine = "Restaurant"

// googleGenericTypes are Places types that say nothing about cuisine.
var googleGenericTypes = map[string]bool{
	"restaurant":        true,
	"food":              true,
	"point_of_interest": true,
	"establishment":     true,
	"meal_delivery":     true,
	"meal_takeaway":     true,
}

// Normalize maps one raw provider record onto the canonical Restaurant.
// The second return value is false when the record must be dropped because
// it carries no finite coordinates; a single bad record never fails the
// whole search.
func Normalize(raw provider.RawResult) (Restaurant, bool) {
	switch raw.Kind {
	case provider.KindYelp:
		return normalizeYelp(raw.Yelp)
	case provider.KindGooglePlaces:
		return normalizeGoogle(raw.Google)
	default:
		return Restaurant{}, false
	}
}

// NormalizeAll maps a raw result list, dropping coordinate-less records and
// preserving provider order.
func NormalizeAll(raws []provider.RawResult) []Restaurant {
	restaurants := make([]Restaurant, 0, len(raws))
	for _, raw := range raws {
		if r, ok := Normalize(raw); ok {
			restaurants = append(restaurants, r)
		}
	}
	return restaurants
}

// NormalizeDetail maps a raw detail payload onto RestaurantDetail. Unlike
// list normalization, a coordinate-less detail record is an error: the
// caller asked for this specific restaurant.
func NormalizeDetail(ctx context.Context, raw provider.RawDetail) (*RestaurantDetail, error) {
	switch raw.Kind {
	case provider.KindYelp:
		return normalizeYelpDetail(ctx, raw)
	case provider.KindGooglePlaces:
		return normalizeGoogleDetail(ctx, raw.Google)
	default:
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			fmt.Sprintf("unknown provider kind %q", raw.Kind), nil, "f7b2c9e1-4a63-4d80-b5f9-2e8d6c0a7b34")
	}
}

// NamespaceID prefixes a provider-scoped id so ids stay unique when result
// sets from different providers are ever merged.
func NamespaceID(kind provider.Kind, id string) string {
	return string(kind) + ":" + id
}

func normalizeYelp(b *provider.YelpBusiness) (Restaurant, bool) {
	if b == nil || b.ID == "" || b.Name == "" {
		return Restaurant{}, false
	}
	loc, ok := yelpLocation(b)
	if !ok {
		return Restaurant{}, false
	}

	titles := functional.Map(b.Categories, func(c provider.YelpCategory) string { return c.Title })

	return Restaurant{
		ID:          b.ID,
		Name:        b.Name,
		Cuisine:     firstNonEmpty(titles, defaultCuisine),
		Description: describeFromCategories(b.Name, titles),
		Address:     joinAddress(b.Location.Address1, b.Location.City),
		Phone:       b.Phone,
		Website:     b.URL,
		PriceRange:  clampPriceRange(len(b.Price)),
		Rating:      clampRating(b.Rating),
		Location:    loc,
		Image:       b.ImageURL,
	}, true
}

func normalizeYelpDetail(ctx context.Context, raw provider.RawDetail) (*RestaurantDetail, error) {
	b := raw.Yelp
	if b == nil || b.ID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			"yelp detail payload missing business", nil, "3e9a1c57-8d24-4b6f-a0c3-5f7e2b9d4a18")
	}
	base, ok := normalizeYelp(b)
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("yelp business %s has no coordinates", b.ID), nil, "1c6d8f30-2b95-4e47-9a81-7d4e0c3f6b52")
	}

	// Detail view gets the long-form address and display phone.
	base.Address = joinAddress(b.Location.Address1, b.Location.City, strings.TrimSpace(b.Location.State+" "+b.Location.ZipCode))
	if b.DisplayPhone != "" {
		base.Phone = b.DisplayPhone
	}

	detail := &RestaurantDetail{
		Restaurant:  base,
		ReviewCount: b.ReviewCount,
		Photos:      b.Photos,
		Hours:       yelpHoursText(b.Hours),
		Reviews: functional.Map(raw.YelpReviews, func(r provider.YelpReview) Review {
			return Review{
				ID:       r.ID,
				Rating:   r.Rating,
				Text:     r.Text,
				Time:     r.TimeCreated,
				Username: r.User.Name,
			}
		}),
	}
	return detail, nil
}

func normalizeGoogle(p *provider.GooglePlace) (Restaurant, bool) {
	if p == nil || p.PlaceID == "" || p.Name == "" {
		return Restaurant{}, false
	}
	loc, ok := googleLocation(p)
	if !ok {
		return Restaurant{}, false
	}

	cuisine := googleCuisine(p.Types)
	address := p.Vicinity
	if address == "" {
		address = p.FormattedAddress
	}

	priceRange := 2
	if p.PriceLevel != nil {
		priceRange = clampPriceRange(*p.PriceLevel)
	}

	return Restaurant{
		ID:          p.PlaceID,
		Name:        p.Name,
		Cuisine:     cuisine,
		Description: fmt.Sprintf("%s offers %s cuisine.", p.Name, cuisine),
		Address:     address,
		Phone:       p.FormattedPhone,
		Website:     p.Website,
		PriceRange:  priceRange,
		Rating:      clampRating(p.Rating),
		Location:    loc,
	}, true
}

func normalizeGoogleDetail(ctx context.Context, p *provider.GooglePlace) (*RestaurantDetail, error) {
	if p == nil || p.PlaceID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			"google detail payload missing place", nil, "8a4f2d61-0c73-4958-b6e2-9d1a5c7f3e80")
	}
	base, ok := normalizeGoogle(p)
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("google place %s has no coordinates", p.PlaceID), nil, "5b9e3c70-6f12-4da4-8b5c-0e7a2d9f4c36")
	}
	if p.FormattedAddress != "" {
		base.Address = p.FormattedAddress
	}

	detail := &RestaurantDetail{
		Restaurant:  base,
		ReviewCount: p.UserRatingsTotal,
	}
	if p.OpeningHours != nil {
		detail.Hours = p.OpeningHours.WeekdayText
	}
	return detail, nil
}

func yelpLocation(b *provider.YelpBusiness) (Location, bool) {
	c := b.Coordinates
	if c == nil || c.Latitude == nil || c.Longitude == nil {
		return Location{}, false
	}
	return finiteLocation(*c.Latitude, *c.Longitude)
}

func googleLocation(p *provider.GooglePlace) (Location, bool) {
	if p.Geometry == nil || p.Geometry.Location == nil {
		return Location{}, false
	}
	l := p.Geometry.Location
	if l.Lat == nil || l.Lng == nil {
		return Location{}, false
	}
	return finiteLocation(*l.Lat, *l.Lng)
}

func finiteLocation(lat, lng float64) (Location, bool) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return Location{}, false
	}
	return Location{Lat: lat, Lng: lng}, true
}

// googleCuisine derives a cuisine label from the Places type list, skipping
// types that carry no cuisine information.
func googleCuisine(types []string) string {
	t, ok := functional.Find(types, func(t string) bool { return !googleGenericTypes[t] })
	if !ok {
		return defaultCuisine
	}
	// e.g. "japanese_restaurant" -> "Japanese Restaurant"
	words := strings.Split(strings.ReplaceAll(t, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func describeFromCategories(name string, titles []string) string {
	nonEmpty := functional.Filter(titles, func(t string) bool { return t != "" })
	if len(nonEmpty) == 0 {
		return fmt.Sprintf("%s - A local favorite restaurant.", name)
	}
	return strings.Join(nonEmpty, ", ")
}

func firstNonEmpty(values []string, fallback string) string {
	if v, ok := functional.Find(values, func(s string) bool { return s != "" }); ok {
		return v
	}
	return fallback
}

// joinAddress formats address components on one line, comma separated,
// skipping blanks. No localization.
func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, ", ")
}

// yelpHoursText flattens Yelp's structured open windows into display lines.
var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func yelpHoursText(hours []provider.YelpHours) []string {
	if len(hours) == 0 {
		return nil
	}
	lines := make([]string, 0, len(hours[0].Open))
	for _, window := range hours[0].Open {
		if window.Day < 0 || window.Day >= len(weekdayNames) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s-%s", weekdayNames[window.Day], formatYelpTime(window.Start), formatYelpTime(window.End)))
	}
	return lines
}

func formatYelpTime(hhmm string) string {
	if len(hhmm) != 4 {
		return hhmm
	}
	return hhmm[:2] + ":" + hhmm[2:]
}
