package game

import (
	"math/rand"
	"testing"
)

func TestRandomSpherePointBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		lat, lon := RandomSpherePoint(rng)
		if lat < -MaxSpawnLatitude || lat > MaxSpawnLatitude {
			t.Fatalf("latitude out of spawn band: %v", lat)
		}
		if lon < -180 || lon >= 180 {
			t.Fatalf("longitude out of range: %v", lon)
		}
	}
}

func TestRandomSpherePointNotPolarClustered(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	polar, tropical := 0, 0
	const n = 20000
	for i := 0; i < n; i++ {
		lat, _ := RandomSpherePoint(rng)
		switch {
		case lat > 60 || lat < -60:
			polar++
		case lat < 23.5 && lat > -23.5:
			tropical++
		}
	}
	// Area-correct sampling puts roughly 40% of points in the tropics and
	// ~13% above 60 degrees. Uniform-in-latitude would give ~26% polar.
	if polar >= tropical {
		t.Fatalf("polar clustering detected: polar=%d tropical=%d", polar, tropical)
	}
	if float64(polar)/n > 0.20 {
		t.Fatalf("too many polar samples: %d of %d", polar, n)
	}
}

func TestRandomPointInBox(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		lat, lon := RandomPointInBox(rng, 35.0, -10.0, 60.0, 30.0)
		if lat < 35.0 || lat > 60.0 || lon < -10.0 || lon > 30.0 {
			t.Fatalf("sample escaped the box: %v, %v", lat, lon)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-100, -85, 85) != -85 || Clamp(100, -85, 85) != 85 || Clamp(3, -85, 85) != 3 {
		t.Fatal("clamp bounds wrong")
	}
}
