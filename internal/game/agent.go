package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Geocoder enriches a coordinate pair with reverse-geocode detail. Lookups
// must come back within the caller's context deadline; any failure makes the
// caller fall back to the box classifier.
type Geocoder interface {
	Lookup(ctx context.Context, lat, lon float64) (*GeoData, error)
}

// AutoAgent is the server's synthetic attacker: a free-running loop that
// drops a beacon somewhere on the globe and fires at a random foreign
// target, reusing the same ingestion and resolution paths as human players.
type AutoAgent struct {
	world    *World
	geocoder Geocoder // optional
	clock    Clock
	rng      *rand.Rand
	log      zerolog.Logger

	minInterval time.Duration
	maxInterval time.Duration
}

// AgentConfig configures the auto-agent. Zero intervals get the defaults.
type AgentConfig struct {
	World       *World
	Geocoder    Geocoder
	Clock       Clock
	Rand        *rand.Rand
	Logger      zerolog.Logger
	MinInterval time.Duration
	MaxInterval time.Duration
}

func NewAutoAgent(cfg AgentConfig) *AutoAgent {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = AgentMinInterval
	}
	if cfg.MaxInterval < cfg.MinInterval {
		cfg.MaxInterval = cfg.MinInterval
	}
	return &AutoAgent{
		world:       cfg.World,
		geocoder:    cfg.Geocoder,
		clock:       cfg.Clock,
		rng:         cfg.Rand,
		log:         cfg.Logger,
		minInterval: cfg.MinInterval,
		maxInterval: cfg.MaxInterval,
	}
}

// Run loops until the context is cancelled, sleeping a jittered interval
// between cycles. Meant to run in its own goroutine.
func (a *AutoAgent) Run(ctx context.Context) {
	timer := time.NewTimer(a.nextInterval())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			a.Cycle(ctx)
			timer.Reset(a.nextInterval())
		}
	}
}

func (a *AutoAgent) nextInterval() time.Duration {
	spread := a.maxInterval - a.minInterval
	if spread <= 0 {
		return a.minInterval
	}
	return a.minInterval + time.Duration(a.rng.Int63n(int64(spread)))
}

// Cycle performs one agent turn: sample a spawn point, drop a beacon there,
// then attack a random live target in a different country. With no
// cross-country target available the beacon still lands and the attack is
// skipped.
func (a *AutoAgent) Cycle(ctx context.Context) {
	lat, lon := RandomSpherePoint(a.rng)

	var geo *GeoData
	country := ClassifyCode(lat, lon)
	if a.geocoder != nil {
		if enriched, err := a.geocoder.Lookup(ctx, lat, lon); err == nil && enriched != nil {
			geo = enriched
			if enriched.CountryCode != "" {
				country = enriched.CountryCode
			}
		} else if err != nil {
			a.log.Debug().Err(err).Msg("geocode lookup failed, using box classifier")
		}
	}

	a.world.SubmitPulse(lat, lon, "auto", "", country, geo)

	target := a.pickTarget(lat, lon, country)
	if target == nil {
		a.log.Debug().Str("country", country).Msg("no cross-country target, beacon only")
		return
	}

	attackType := AttackTypes[a.rng.Intn(len(AttackTypes))]
	if _, reason := a.world.SubmitAttack(AttackRequest{
		FromLat:     lat,
		FromLon:     lon,
		ToLat:       target.Lat,
		ToLon:       target.Lon,
		Type:        attackType,
		IsAutoAgent: true,
	}); reason != "" {
		a.log.Debug().Str("reason", reason).Msg("agent attack rejected")
	}
}

// pickTarget chooses uniformly among live targets whose country differs from
// the agent's, skipping the agent's own cell.
func (a *AutoAgent) pickTarget(lat, lon float64, country string) *Target {
	selfKey := LocationKey(lat, lon)
	var candidates []*Target
	for _, t := range a.world.LiveTargets() {
		if t.LocationKey == selfKey {
			continue
		}
		targetCountry := t.Country
		if t.GeoData != nil && t.GeoData.CountryCode != "" {
			targetCountry = t.GeoData.CountryCode
		}
		if targetCountry == country {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[a.rng.Intn(len(candidates))]
}
