package game

import "math"

// DefenseLevels are the per-player upgrade levels that shrink the points an
// attacker earns for destroying that player's position.
type DefenseLevels struct {
	Shield      int `json:"shield"`
	Armor       int `json:"armor"`
	Interceptor int `json:"interceptor"`
}

// Reduction is the combined diminishing-returns fraction removed from the
// attacker's points. Each upgrade line caps independently; the overall cap
// falls out of the per-line ones (0.50+0.40+0.15 is itself bounded by the
// final-points floor).
func (d DefenseLevels) Reduction() float64 {
	shield := math.Min(float64(d.Shield)*0.10, 0.50)
	armor := math.Min(float64(d.Armor)*0.08, 0.40)
	interceptor := math.Min(float64(d.Interceptor)*0.05, 0.15)
	return shield + armor + interceptor
}

// TargetPoints is the plain value of destroying a target: a flat base plus
// one point per minute of age, capped.
func TargetPoints(ageMinutes int) int {
	bonus := ageMinutes
	if bonus < 0 {
		bonus = 0
	}
	if bonus > MaxAgeBonusMin {
		bonus = MaxAgeBonusMin
	}
	return BaseTargetPoints + bonus
}

// BasePoints is the pre-defense score for a typed attack: triple the cost
// paid plus the capped age bonus, floored at the minimum award.
func BasePoints(attackCost, ageMinutes int) int {
	bonus := ageMinutes
	if bonus < 0 {
		bonus = 0
	}
	if bonus > MaxAgeBonusMin {
		bonus = MaxAgeBonusMin
	}
	points := attackCost*3 + bonus
	if points < MinAttackPoints {
		points = MinAttackPoints
	}
	return points
}

// FinalPoints applies the defender's reduction to the base, never dropping
// below the floor fraction of the base value.
func FinalPoints(basePoints int, defense DefenseLevels) int {
	base := float64(basePoints)
	earned := base * (1 - defense.Reduction())
	floor := base * MinPointsFraction
	if earned < floor {
		earned = floor
	}
	return int(math.Round(earned))
}
