package game

import (
	"math"
	"time"
)

// AttackType names a weapon profile. Each type has a fixed propagation speed
// that converts great-circle distance into travel time.
type AttackType string

const (
	AttackPulse AttackType = "pulse"
	AttackLaser AttackType = "laser"
	AttackEMP   AttackType = "emp"
)

var attackSpeedsKps = map[AttackType]float64{
	AttackPulse: 75,
	AttackLaser: 150,
	AttackEMP:   300,
}

// AttackTypes lists the valid types in a stable order.
var AttackTypes = []AttackType{AttackPulse, AttackLaser, AttackEMP}

// ResolveAttackType maps an arbitrary client-supplied string to a valid
// type, defaulting to pulse.
func ResolveAttackType(raw string) AttackType {
	t := AttackType(raw)
	if _, ok := attackSpeedsKps[t]; ok {
		return t
	}
	return AttackPulse
}

// SpeedKps is the propagation speed of the type in km/s.
func (t AttackType) SpeedKps() float64 {
	if s, ok := attackSpeedsKps[t]; ok {
		return s
	}
	return attackSpeedsKps[AttackPulse]
}

// AttackDurationSec converts endpoint distance into whole seconds of travel
// time, rounded up and floored at the minimum so even adjacent points get a
// visible animation window.
func AttackDurationSec(t AttackType, fromLat, fromLon, toLat, toLon float64) int {
	raw := HaversineKm(fromLat, fromLon, toLat, toLon) / t.SpeedKps()
	sec := int(math.Ceil(raw))
	if sec < MinAttackDurationS {
		sec = MinAttackDurationS
	}
	return sec
}

// AttackRequest is a validated-at-the-boundary attack submission.
type AttackRequest struct {
	FromLat     float64
	FromLon     float64
	ToLat       float64
	ToLon       float64
	Type        AttackType
	SessionID   string
	IsAutoAgent bool
	Cost        int // points the attacker paid, feeds the scoring base
}

// AttackEvent is one in-flight attack as broadcast to clients and replayed
// to late joiners while inside the rolling window.
type AttackEvent struct {
	FromLat     float64    `json:"fromLat"`
	FromLon     float64    `json:"fromLon"`
	ToLat       float64    `json:"toLat"`
	ToLon       float64    `json:"toLon"`
	IsAutoAgent bool       `json:"isAutoAgent"`
	AttackType  AttackType `json:"attackType"`
	Duration    int        `json:"duration"` // seconds
	Timestamp   time.Time  `json:"timestamp"`
	StartTime   int64      `json:"startTime"` // unix milliseconds at broadcast
}

// Remaining reports how much of the attack's travel window is left.
func (e AttackEvent) Remaining(now time.Time) time.Duration {
	end := time.UnixMilli(e.StartTime).Add(time.Duration(e.Duration) * time.Second)
	return end.Sub(now)
}

// Attack rejection reasons, sent back to the submitting session only.
const (
	RejectSameCountry      = "same_country"
	RejectAlreadyDestroyed = "already_destroyed"
	RejectInvalid          = "invalid_coordinates"
)
