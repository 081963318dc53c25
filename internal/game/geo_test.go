package game

import (
	"math"
	"testing"
)

func TestClassifyKnownCities(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{"new york", 40.7128, -74.0060, "US"},
		{"paris", 48.8566, 2.3522, "FR"},
		{"berlin", 52.52, 13.405, "DE"},
		{"tokyo", 35.6762, 139.6503, "JP"},
		{"sydney", -33.8688, 151.2093, "AU"},
		{"sao paulo", -23.5505, -46.6333, "BR"},
	}
	for _, tc := range cases {
		got := ClassifyCode(tc.lat, tc.lon)
		if got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestClassifyOceanFallsBackToNearest(t *testing.T) {
	// Mid-Atlantic: no box contains it, but the nearest-box fallback must
	// still produce a country rather than Unknown.
	c := Classify(0, -30)
	if c.Code == "" || c.Name == UnknownCountry {
		t.Fatalf("expected nearest-country fallback for ocean point, got %+v", c)
	}
}

func TestClassifyCoastalBias(t *testing.T) {
	// A point just off the US east coast should resolve to the US via the
	// nearest-box fallback.
	if got := ClassifyCode(38.0, -70.0); got != "US" {
		t.Errorf("expected US for point off the east coast, got %s", got)
	}
}

func TestLocationKey(t *testing.T) {
	if got := LocationKey(40.7128, -74.0060); got != "40.7128,-74.0060" {
		t.Errorf("unexpected key: %s", got)
	}
	if got := LocationKey(0, 0); got != "0.0000,0.0000" {
		t.Errorf("unexpected zero key: %s", got)
	}
	if got := LocationKey(math.NaN(), 10); got != "" {
		t.Errorf("expected empty key for NaN, got %q", got)
	}
	if got := LocationKey(10, math.Inf(1)); got != "" {
		t.Errorf("expected empty key for Inf, got %q", got)
	}
}

func TestLocationKeyCollapsesNearbyPoints(t *testing.T) {
	a := LocationKey(40.71284, -74.00601)
	b := LocationKey(40.71281, -74.00603)
	if a != b {
		t.Errorf("expected points in the same grid cell to share a key: %s vs %s", a, b)
	}
}

func TestHaversineNewYorkParis(t *testing.T) {
	d := HaversineKm(40.7128, -74.0060, 48.8566, 2.3522)
	if d < 5800 || d > 5880 {
		t.Errorf("expected roughly 5837 km, got %.1f", d)
	}
}

func TestHaversineZeroDistance(t *testing.T) {
	if d := HaversineKm(10, 20, 10, 20); d != 0 {
		t.Errorf("expected zero distance, got %f", d)
	}
}
