package restaurant

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"fooddash/discovery-api/internal/infrastructure/provider"
	"fooddash/discovery-api/internal/utils/platformerrors"
)

// stubProvider is a hand-rolled provider.Client capturing the params it is
// called with.
type stubProvider struct {
	searchParams  provider.SearchParams
	searchResults []provider.RawResult
	searchErr     error
	detail        *provider.RawDetail
	detailErr     error
}

func (s *stubProvider) Kind() provider.Kind { return provider.KindYelp }

func (s *stubProvider) Search(ctx context.Context, params provider.SearchParams) ([]provider.RawResult, error) {
	s.searchParams = params
	return s.searchResults, s.searchErr
}

func (s *stubProvider) GetDetails(ctx context.Context, id string) (*provider.RawDetail, error) {
	return s.detail, s.detailErr
}

func testDefaults() Defaults {
	return Defaults{Latitude: 37.7749, Longitude: -122.4194, RadiusMeters: 1500, Limit: 20}
}

func testService(stub *stubProvider) *Service {
	return NewService(stub, NewSeededEnricher(1), testDefaults(), zerolog.Nop())
}

func rawBusiness(id string) provider.RawResult {
	return yelpResult(provider.YelpBusiness{
		ID:   id,
		Name: "Business " + id,
		Coordinates: &provider.YelpCoordinates{
			Latitude:  floatPtr(37.78),
			Longitude: floatPtr(-122.41),
		},
	})
}

func TestSearchAppliesDefaultLocation(t *testing.T) {
	stub := &stubProvider{searchResults: []provider.RawResult{rawBusiness("a")}}
	service := testService(stub)

	_, err := service.Search(context.Background(), Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stub.searchParams.Latitude != 37.7749 || stub.searchParams.Longitude != -122.4194 {
		t.Fatalf("expected default location, got %+v", stub.searchParams)
	}
	if stub.searchParams.RadiusMeters != 1500 {
		t.Fatalf("expected default radius 1500, got %d", stub.searchParams.RadiusMeters)
	}
	if stub.searchParams.Limit != 20 {
		t.Fatalf("expected default limit 20, got %d", stub.searchParams.Limit)
	}
}

func TestSearchUsesExplicitParams(t *testing.T) {
	stub := &stubProvider{searchResults: []provider.RawResult{rawBusiness("a")}}
	service := testService(stub)

	_, err := service.Search(context.Background(), Query{
		Latitude:     floatPtr(40.71),
		Longitude:    floatPtr(-74.0),
		RadiusMeters: 3000,
		Keyword:      "ramen",
		Limit:        5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stub.searchParams.Latitude != 40.71 || stub.searchParams.Longitude != -74.0 {
		t.Fatalf("expected explicit location, got %+v", stub.searchParams)
	}
	if stub.searchParams.Keyword != "ramen" || stub.searchParams.RadiusMeters != 3000 || stub.searchParams.Limit != 5 {
		t.Fatalf("unexpected params: %+v", stub.searchParams)
	}
}

func TestSearchEnrichesResults(t *testing.T) {
	stub := &stubProvider{searchResults: []provider.RawResult{rawBusiness("a"), rawBusiness("b")}}
	service := testService(stub)

	result, err := service.Search(context.Background(), Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Fallback {
		t.Fatalf("unexpected fallback on healthy provider")
	}
	for _, r := range result.Restaurants {
		if r.DeliveryTime < 15 || r.DeliveryTime > 45 {
			t.Fatalf("restaurant %q not enriched: %+v", r.ID, r)
		}
		if r.AcceptingOrders == nil {
			t.Fatalf("restaurant %q missing acceptingOrders", r.ID)
		}
	}
}

func TestSearchTruncatesToLimit(t *testing.T) {
	raws := make([]provider.RawResult, 30)
	for i := range raws {
		raws[i] = rawBusiness(string(rune('a' + i)))
	}
	stub := &stubProvider{searchResults: raws}
	service := testService(stub)

	result, err := service.Search(context.Background(), Query{Limit: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Restaurants) != 7 {
		t.Fatalf("expected 7 restaurants, got %d", len(result.Restaurants))
	}
}

func TestSearchFallsBackOnProviderError(t *testing.T) {
	stub := &stubProvider{
		searchErr: platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "upstream down", nil, "11111111-1111-1111-1111-111111111111"),
	}
	service := testService(stub)

	result, err := service.Search(context.Background(), Query{})
	if err != nil {
		t.Fatalf("provider failure must not surface as search error, got %v", err)
	}
	if !result.Fallback {
		t.Fatalf("expected fallback flag on provider failure")
	}
	if len(result.Restaurants) == 0 {
		t.Fatalf("expected non-empty fallback set")
	}
	for _, r := range result.Restaurants {
		if r.ID == "" || r.Name == "" || r.PriceRange < 1 || r.PriceRange > 4 {
			t.Fatalf("malformed fallback restaurant: %+v", r)
		}
	}
}

func TestSearchAppliesFilters(t *testing.T) {
	raws := []provider.RawResult{
		yelpResult(provider.YelpBusiness{
			ID: "sushi", Name: "Sushi Dreams", Rating: 4.8,
			Categories:  []provider.YelpCategory{{Title: "Japanese"}},
			Coordinates: &provider.YelpCoordinates{Latitude: floatPtr(37.78), Longitude: floatPtr(-122.41)},
		}),
		yelpResult(provider.YelpBusiness{
			ID: "taco", Name: "Taco Town", Rating: 4.0,
			Categories:  []provider.YelpCategory{{Title: "Mexican"}},
			Coordinates: &provider.YelpCoordinates{Latitude: floatPtr(37.76), Longitude: floatPtr(-122.42)},
		}),
	}
	stub := &stubProvider{searchResults: raws}
	service := testService(stub)

	result, err := service.Search(context.Background(), Query{MinRating: 4.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Restaurants) != 1 || result.Restaurants[0].ID != "sushi" {
		t.Fatalf("unexpected filtered result: %+v", result.Restaurants)
	}
}

func TestGetDetailsValidatesID(t *testing.T) {
	service := testService(&stubProvider{})

	_, err := service.GetDetails(context.Background(), "  ")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetDetailsPropagatesNotFound(t *testing.T) {
	stub := &stubProvider{
		detailErr: platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeNotFound, "no such business", nil, "22222222-2222-2222-2222-222222222222"),
	}
	service := testService(stub)

	_, err := service.GetDetails(context.Background(), "missing")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetDetailsGeneratesMenuWhenEmpty(t *testing.T) {
	stub := &stubProvider{
		detail: &provider.RawDetail{
			Kind: provider.KindYelp,
			Yelp: &provider.YelpBusiness{
				ID:         "detail-1",
				Name:       "Joe's",
				Categories: []provider.YelpCategory{{Title: "Italian"}},
				Coordinates: &provider.YelpCoordinates{
					Latitude:  floatPtr(37.7),
					Longitude: floatPtr(-122.4),
				},
			},
		},
	}
	service := testService(stub)

	detail, err := service.GetDetails(context.Background(), "detail-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Menu) == 0 {
		t.Fatalf("expected generated menu")
	}
	if detail.Menu[0].Name != "Antipasti" {
		t.Fatalf("expected Italian menu, got first category %q", detail.Menu[0].Name)
	}
	if detail.DeliveryTime < 15 || detail.DeliveryTime > 45 {
		t.Fatalf("expected enriched detail, got deliveryTime %d", detail.DeliveryTime)
	}
}

func TestGetMenuDegradesOnProviderFailure(t *testing.T) {
	stub := &stubProvider{
		detailErr: platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "upstream down", nil, "33333333-3333-3333-3333-333333333333"),
	}
	service := testService(stub)

	menu, err := service.GetMenu(context.Background(), "any")
	if err != nil {
		t.Fatalf("expected generic menu on provider failure, got %v", err)
	}
	if len(menu) == 0 {
		t.Fatalf("expected non-empty generic menu")
	}
}

func TestGetMenuPropagatesNotFound(t *testing.T) {
	stub := &stubProvider{
		detailErr: platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeNotFound, "no such business", nil, "44444444-4444-4444-4444-444444444444"),
	}
	service := testService(stub)

	_, err := service.GetMenu(context.Background(), "missing")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
