package geo

import (
	"math"
	"testing"
)

func TestHaversineKmZeroDistance(t *testing.T) {
	if d := HaversineKm(37.7749, -122.4194, 37.7749, -122.4194); d != 0 {
		t.Fatalf("expected 0 for identical points, got %v", d)
	}
}

func TestHaversineKmKnownDistance(t *testing.T) {
	// San Francisco -> Los Angeles, roughly 559km.
	d := HaversineKm(37.7749, -122.4194, 34.0522, -118.2437)
	if math.Abs(d-559) > 5 {
		t.Fatalf("expected ~559km, got %v", d)
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	a := HaversineKm(37.7749, -122.4194, 40.7128, -74.0060)
	b := HaversineKm(40.7128, -74.0060, 37.7749, -122.4194)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %v vs %v", a, b)
	}
}
