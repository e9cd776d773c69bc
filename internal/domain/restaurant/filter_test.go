package restaurant

import (
	"reflect"
	"testing"
	"time"
)

func names(restaurants []Restaurant) []string {
	out := make([]string, len(restaurants))
	for i, r := range restaurants {
		out[i] = r.Name
	}
	return out
}

func sampleSet() []Restaurant {
	accepting := true
	notAccepting := false
	return []Restaurant{
		{Name: "Sushi Dreams", Cuisine: "Japanese", PriceRange: 3, Rating: 4.8, DeliveryTime: 25, AcceptingOrders: &accepting},
		{Name: "Taco Town", Cuisine: "Mexican", PriceRange: 1, Rating: 4.2, DeliveryTime: 20, AcceptingOrders: &accepting},
		{Name: "Pasta Paradise", Cuisine: "Italian", PriceRange: 2, Rating: 4.5, DeliveryTime: 35, AcceptingOrders: &notAccepting},
		{Name: "Golden Dragon", Cuisine: "Chinese", PriceRange: 4, Rating: 4.0, DeliveryTime: 40, AcceptingOrders: &accepting},
	}
}

func TestApplyKeywordFilter(t *testing.T) {
	got := Apply(sampleSet(), FilterSpec{Keyword: "sushi"})
	if !reflect.DeepEqual(names(got), []string{"Sushi Dreams"}) {
		t.Fatalf("unexpected keyword result: %v", names(got))
	}

	// Keyword also matches cuisine and description.
	got = Apply(sampleSet(), FilterSpec{Keyword: "mexican"})
	if !reflect.DeepEqual(names(got), []string{"Taco Town"}) {
		t.Fatalf("unexpected cuisine keyword result: %v", names(got))
	}
}

func TestApplyPriceRangeFilter(t *testing.T) {
	restaurants := []Restaurant{
		{Name: "a", PriceRange: 1},
		{Name: "b", PriceRange: 3},
		{Name: "c", PriceRange: 4},
	}

	got := Apply(restaurants, FilterSpec{PriceRange: [2]int{2, 4}})
	if !reflect.DeepEqual(names(got), []string{"b", "c"}) {
		t.Fatalf("unexpected price filter result: %v", names(got))
	}
}

func TestApplyMinRatingFilter(t *testing.T) {
	got := Apply(sampleSet(), FilterSpec{MinRating: 4.5})
	if !reflect.DeepEqual(names(got), []string{"Sushi Dreams", "Pasta Paradise"}) {
		t.Fatalf("unexpected rating filter result: %v", names(got))
	}
}

func TestApplyCuisineFilter(t *testing.T) {
	got := Apply(sampleSet(), FilterSpec{Cuisines: []string{"japanese", "Italian"}})
	if !reflect.DeepEqual(names(got), []string{"Sushi Dreams", "Pasta Paradise"}) {
		t.Fatalf("unexpected cuisine filter result: %v", names(got))
	}

	// Empty cuisine set filters nothing.
	got = Apply(sampleSet(), FilterSpec{Cuisines: nil})
	if len(got) != len(sampleSet()) {
		t.Fatalf("expected no filtering with empty cuisine set, got %d", len(got))
	}
}

func TestApplyOpenNowUsesInjectedClock(t *testing.T) {
	noon := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	midnight := func() time.Time { return time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC) }

	got := Apply(sampleSet(), FilterSpec{OpenNow: true, Now: noon})
	if len(got) != len(sampleSet()) {
		t.Fatalf("expected all restaurants open at noon, got %d", len(got))
	}

	got = Apply(sampleSet(), FilterSpec{OpenNow: true, Now: midnight})
	if len(got) != 0 {
		t.Fatalf("expected no restaurants open at midnight, got %d", len(got))
	}
}

func TestApplyDeliveryOnlyFilter(t *testing.T) {
	got := Apply(sampleSet(), FilterSpec{DeliveryOnly: true})
	if !reflect.DeepEqual(names(got), []string{"Sushi Dreams", "Taco Town", "Golden Dragon"}) {
		t.Fatalf("unexpected delivery filter result: %v", names(got))
	}
}

func TestApplySorts(t *testing.T) {
	byRating := Apply(sampleSet(), FilterSpec{SortBy: SortByRating})
	if !reflect.DeepEqual(names(byRating), []string{"Sushi Dreams", "Pasta Paradise", "Taco Town", "Golden Dragon"}) {
		t.Fatalf("unexpected rating sort: %v", names(byRating))
	}

	byDeliveryTime := Apply(sampleSet(), FilterSpec{SortBy: SortByDeliveryTime})
	if !reflect.DeepEqual(names(byDeliveryTime), []string{"Taco Town", "Sushi Dreams", "Pasta Paradise", "Golden Dragon"}) {
		t.Fatalf("unexpected delivery time sort: %v", names(byDeliveryTime))
	}

	byPriceAsc := Apply(sampleSet(), FilterSpec{SortBy: SortByPriceAsc})
	if !reflect.DeepEqual(names(byPriceAsc), []string{"Taco Town", "Pasta Paradise", "Sushi Dreams", "Golden Dragon"}) {
		t.Fatalf("unexpected ascending price sort: %v", names(byPriceAsc))
	}

	byPriceDesc := Apply(sampleSet(), FilterSpec{SortBy: SortByPriceDesc})
	if !reflect.DeepEqual(names(byPriceDesc), []string{"Golden Dragon", "Sushi Dreams", "Pasta Paradise", "Taco Town"}) {
		t.Fatalf("unexpected descending price sort: %v", names(byPriceDesc))
	}
}

func TestApplyDistanceSort(t *testing.T) {
	restaurants := []Restaurant{
		{Name: "far", Location: Location{Lat: 38.0, Lng: -122.0}},
		{Name: "near", Location: Location{Lat: 37.0, Lng: -122.0}},
	}
	distance := func(r Restaurant) float64 { return r.Location.Lat - 37.0 }

	got := Apply(restaurants, FilterSpec{SortBy: SortByDistance, Distance: distance})
	if !reflect.DeepEqual(names(got), []string{"near", "far"}) {
		t.Fatalf("unexpected distance sort: %v", names(got))
	}

	// Without a comparator, provider order stands.
	got = Apply(restaurants, FilterSpec{SortBy: SortByDistance})
	if !reflect.DeepEqual(names(got), []string{"far", "near"}) {
		t.Fatalf("expected provider order without distance func: %v", names(got))
	}
}

func TestApplyStableSortPreservesOrderOnTies(t *testing.T) {
	restaurants := []Restaurant{
		{Name: "first", PriceRange: 2},
		{Name: "second", PriceRange: 2},
		{Name: "third", PriceRange: 2},
	}

	got := Apply(restaurants, FilterSpec{SortBy: SortByPriceAsc})
	if !reflect.DeepEqual(names(got), []string{"first", "second", "third"}) {
		t.Fatalf("expected stable order on ties: %v", names(got))
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	spec := FilterSpec{MinRating: 4.2, SortBy: SortByRating}

	once := Apply(sampleSet(), spec)
	twice := Apply(once, spec)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected Apply to be idempotent")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := sampleSet()
	want := names(input)

	Apply(input, FilterSpec{SortBy: SortByRating})
	if !reflect.DeepEqual(names(input), want) {
		t.Fatalf("expected input untouched, got %v", names(input))
	}
}
