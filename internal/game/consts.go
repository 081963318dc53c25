package game

import "time"

const (
	LocationKeyPrecision = 4     // decimal digits, ~11 m grid cells
	MaxActiveTargets     = 10000 // live-target capacity bound
	EarthRadiusKm        = 6371.0
	MinAttackDurationS   = 4 // perceptible animation floor for any attack

	// Delay between an attack's computed arrival and the destruction
	// broadcast, so clients can finish the trajectory animation.
	DestroyBuffer = 1 * time.Second

	// In-flight attacks older than this are pruned and are not replayed
	// to late joiners.
	AttackWindow = 60 * time.Second

	AgentMinInterval = 8 * time.Second
	AgentMaxInterval = 15 * time.Second

	RecentActivityCount = 5
	LeaderboardSize     = 10

	BaseTargetPoints  = 10
	MaxAgeBonusMin    = 60
	MinAttackPoints   = 5
	MinPointsFraction = 0.2

	// Latitudes beyond the polar caps never classify to a country; the
	// agent sampler clamps to this band.
	MaxSpawnLatitude = 85.0
)
