package restaurant

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"fooddash/discovery-api/internal/infrastructure/metrics"
	"fooddash/discovery-api/internal/infrastructure/provider"
	"fooddash/discovery-api/internal/utils/geo"
	"fooddash/discovery-api/internal/utils/platformerrors"
)

// Defaults are the per-request policy values applied when a query leaves
// them unset. The fallback location is a fixed policy decision, not a
// geolocation lookup.
type Defaults struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Limit        int
}

// Query is one search request. Nil coordinates resolve to the default
// location; zero radius/limit resolve to the configured defaults.
type Query struct {
	Latitude     *float64
	Longitude    *float64
	RadiusMeters int
	Keyword      string
	Limit        int

	MinPrice  int
	MaxPrice  int
	MinRating float64
	Cuisines  []string
	OpenNow   bool
	SortBy    SortBy
}

// SearchResult is a search response. Fallback marks mock-substituted data
// so callers can surface the degradation to users.
type SearchResult struct {
	Restaurants []Restaurant
	Fallback    bool
}

// Service orchestrates provider -> normalizer -> enricher and owns the
// fallback-to-mock-data policy. Provider failures on the search path never
// propagate to the caller.
type Service struct {
	provider provider.Client
	enricher *Enricher
	defaults Defaults
	logger   zerolog.Logger
}

func NewService(providerClient provider.Client, enricher *Enricher, defaults Defaults, logger zerolog.Logger) *Service {
	return &Service{
		provider: providerClient,
		enricher: enricher,
		defaults: defaults,
		logger:   logger,
	}
}

// Search runs the full pipeline for one request. On provider failure it
// logs, counts, and substitutes the fixed mock set; it never returns a
// provider error.
func (s *Service) Search(ctx context.Context, query Query) (*SearchResult, error) {
	params := s.resolveParams(query)

	raws, err := s.provider.Search(ctx, params)
	if err != nil {
		return s.substituteFallback(err), nil
	}

	restaurants := NormalizeAll(raws)
	if len(restaurants) > params.Limit {
		restaurants = restaurants[:params.Limit]
	}
	restaurants = s.enricher.EnrichAll(restaurants)
	restaurants = Apply(restaurants, s.filterSpec(query, params))

	metrics.RecordSearch(string(s.provider.Kind()), "ok")
	return &SearchResult{Restaurants: restaurants}, nil
}

// GetDetails fetches and normalizes one restaurant. NotFound and provider
// failures surface to the caller; the list-path mock substitution does not
// apply here.
func (s *Service) GetDetails(ctx context.Context, id string) (*RestaurantDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"restaurant id is required", nil, "d8f3a6c1-5e29-4b74-90d6-3a7c8e1f5b42")
	}

	raw, err := s.provider.GetDetails(ctx, id)
	if err != nil {
		var platformErr *platformerrors.PlatformError
		if platformerrors.IsProviderError(err) && errors.As(err, &platformErr) {
			metrics.RecordProviderError(string(s.provider.Kind()), string(platformErr.Type))
		}
		return nil, err
	}

	detail, err := NormalizeDetail(ctx, *raw)
	if err != nil {
		return nil, err
	}

	detail.Restaurant = s.enricher.Enrich(detail.Restaurant)
	if len(detail.Menu) == 0 {
		detail.Menu = s.enricher.GenerateMenu(detail.Cuisine)
	}
	return detail, nil
}

// GetMenu returns the menu for one restaurant. No upstream menu API
// exists, so the menu is generated from the restaurant's cuisine; when the
// provider is down the menu is generated from a generic cuisine instead of
// failing.
func (s *Service) GetMenu(ctx context.Context, id string) ([]MenuCategory, error) {
	if strings.TrimSpace(id) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"restaurant id is required", nil, "0b6e9d24-7a51-4c38-8f02-5d3b1a8c6e79")
	}

	detail, err := s.GetDetails(ctx, id)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, err
		}
		if platformerrors.IsProviderError(err) {
			s.logger.Warn().Err(err).Str("restaurant_id", id).
				Msg("provider unavailable for menu lookup, generating generic menu")
			return s.enricher.GenerateMenu("Various"), nil
		}
		return nil, err
	}

	return detail.Menu, nil
}

func (s *Service) resolveParams(query Query) provider.SearchParams {
	params := provider.SearchParams{
		Latitude:     s.defaults.Latitude,
		Longitude:    s.defaults.Longitude,
		RadiusMeters: query.RadiusMeters,
		Keyword:      query.Keyword,
		Limit:        query.Limit,
	}
	if query.Latitude != nil && query.Longitude != nil {
		params.Latitude = *query.Latitude
		params.Longitude = *query.Longitude
	}
	if params.RadiusMeters <= 0 {
		params.RadiusMeters = s.defaults.RadiusMeters
	}
	if params.Limit <= 0 {
		params.Limit = s.defaults.Limit
	}
	return params
}

// filterSpec translates the server-side filter params onto the shared
// filter engine. Clients apply the same engine to narrow further without
// re-querying.
func (s *Service) filterSpec(query Query, params provider.SearchParams) FilterSpec {
	spec := FilterSpec{
		MinRating: query.MinRating,
		Cuisines:  query.Cuisines,
		OpenNow:   query.OpenNow,
		SortBy:    query.SortBy,
	}
	if query.SortBy == SortByDistance {
		spec.Distance = func(r Restaurant) float64 {
			return geo.HaversineKm(params.Latitude, params.Longitude, r.Location.Lat, r.Location.Lng)
		}
	}
	if query.MinPrice > 0 || query.MaxPrice > 0 {
		minPrice, maxPrice := query.MinPrice, query.MaxPrice
		if minPrice <= 0 {
			minPrice = 1
		}
		if maxPrice <= 0 {
			maxPrice = 4
		}
		spec.PriceRange = [2]int{minPrice, maxPrice}
	}
	return spec
}

// substituteFallback is the degraded path: log the provider failure so it
// is observable to operators, then hand back the fixed mock set.
func (s *Service) substituteFallback(err error) *SearchResult {
	var platformErr *platformerrors.PlatformError
	if !errors.As(err, &platformErr) {
		platformErr = platformerrors.AsError(context.Background(), platformerrors.LayerDomain, err, "provider search failed")
	}
	platformerrors.LogError(s.logger, platformErr)

	metrics.RecordSearch(string(s.provider.Kind()), "fallback")
	metrics.RecordProviderError(string(s.provider.Kind()), string(platformErr.Type))
	metrics.RecordFallback()

	return &SearchResult{Restaurants: MockRestaurants(), Fallback: true}
}
