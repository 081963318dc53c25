package game

import "testing"

func TestResolveAttackType(t *testing.T) {
	cases := []struct {
		raw  string
		want AttackType
	}{
		{"pulse", AttackPulse},
		{"laser", AttackLaser},
		{"emp", AttackEMP},
		{"", AttackPulse},
		{"nuke", AttackPulse},
		{"PULSE", AttackPulse}, // case-sensitive on purpose
	}
	for _, c := range cases {
		if got := ResolveAttackType(c.raw); got != c.want {
			t.Errorf("ResolveAttackType(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestAttackSpeedOrdering(t *testing.T) {
	if !(AttackPulse.SpeedKps() < AttackLaser.SpeedKps() && AttackLaser.SpeedKps() < AttackEMP.SpeedKps()) {
		t.Fatal("speeds must strictly increase pulse < laser < emp")
	}
}

func TestAttackDurationFloor(t *testing.T) {
	// Adjacent cells still get the minimum animation window.
	for _, typ := range AttackTypes {
		got := AttackDurationSec(typ, 48.8566, 2.3522, 48.8567, 2.3523)
		if got != MinAttackDurationS {
			t.Errorf("%s near-zero distance: got %d, want %d", typ, got, MinAttackDurationS)
		}
	}
}

func TestAttackDurationTransatlanticPerType(t *testing.T) {
	// New York → Paris, ~5837 km.
	cases := []struct {
		typ  AttackType
		want int
	}{
		{AttackPulse, 78}, // 5837 / 75
		{AttackLaser, 39}, // 5837 / 150
		{AttackEMP, 20},   // 5837 / 300
	}
	for _, c := range cases {
		got := AttackDurationSec(c.typ, 40.7128, -74.0060, 48.8566, 2.3522)
		if got != c.want {
			t.Errorf("%s: got %ds, want %ds", c.typ, got, c.want)
		}
	}
}

func TestAttackDurationMonotoneInDistance(t *testing.T) {
	// Fixed type: farther targets never resolve earlier.
	prev := 0
	for lon := -70.0; lon <= 60.0; lon += 10 {
		d := AttackDurationSec(AttackPulse, 40.7128, -74.0060, 40.7128, lon)
		if d < prev {
			t.Fatalf("duration decreased with distance at lon %v: %d < %d", lon, d, prev)
		}
		prev = d
	}
}
