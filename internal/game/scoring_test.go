package game

import "testing"

func TestTargetPoints(t *testing.T) {
	cases := []struct {
		age  int
		want int
	}{
		{0, 10},
		{1, 11},
		{59, 69},
		{60, 70},
		{300, 70}, // age bonus caps at an hour
		{-5, 10},  // clock skew never subtracts
	}
	for _, c := range cases {
		if got := TargetPoints(c.age); got != c.want {
			t.Errorf("TargetPoints(%d) = %d, want %d", c.age, got, c.want)
		}
	}
}

func TestBasePoints(t *testing.T) {
	cases := []struct {
		cost, age int
		want      int
	}{
		{10, 0, 30},
		{10, 25, 55},
		{10, 120, 90}, // bonus capped at 60
		{0, 0, 5},     // floor
		{1, 0, 5},     // 3 < 5 floor
		{2, 0, 6},
	}
	for _, c := range cases {
		if got := BasePoints(c.cost, c.age); got != c.want {
			t.Errorf("BasePoints(%d, %d) = %d, want %d", c.cost, c.age, got, c.want)
		}
	}
}

func TestDefenseReduction(t *testing.T) {
	cases := []struct {
		name string
		d    DefenseLevels
		want float64
	}{
		{"none", DefenseLevels{}, 0},
		{"one shield", DefenseLevels{Shield: 1}, 0.10},
		{"shield capped", DefenseLevels{Shield: 9}, 0.50},
		{"armor capped", DefenseLevels{Armor: 9}, 0.40},
		{"interceptor capped", DefenseLevels{Interceptor: 9}, 0.15},
		{"mixed", DefenseLevels{Shield: 2, Armor: 1, Interceptor: 1}, 0.33},
	}
	for _, c := range cases {
		got := c.d.Reduction()
		if diff := got - c.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: Reduction() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFinalPointsBounds(t *testing.T) {
	base := 100
	for shield := 0; shield <= 10; shield++ {
		for armor := 0; armor <= 10; armor++ {
			d := DefenseLevels{Shield: shield, Armor: armor, Interceptor: 10}
			got := FinalPoints(base, d)
			if got > base {
				t.Fatalf("defense %+v inflated points to %d", d, got)
			}
			if got < base/5 {
				t.Fatalf("defense %+v pushed points below the floor: %d", d, got)
			}
		}
	}
}

func TestFinalPointsValues(t *testing.T) {
	cases := []struct {
		base int
		d    DefenseLevels
		want int
	}{
		{100, DefenseLevels{}, 100},
		{100, DefenseLevels{Shield: 1}, 90},
		{100, DefenseLevels{Shield: 9, Armor: 9, Interceptor: 9}, 20}, // floor wins over 1.05 reduction
		{30, DefenseLevels{Shield: 3, Armor: 2, Interceptor: 1}, 15},  // 30 * 0.49 rounded
	}
	for _, c := range cases {
		if got := FinalPoints(c.base, c.d); got != c.want {
			t.Errorf("FinalPoints(%d, %+v) = %d, want %d", c.base, c.d, got, c.want)
		}
	}
}
