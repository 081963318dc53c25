package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// World owns all authoritative game state: the target registry, aggregate
// counters, score records, per-session defense data and the in-flight attack
// window. Every mutation happens under one mutex and broadcasts inline, so
// clients observe mutations in application order.
type World struct {
	log   zerolog.Logger
	clock Clock
	rng   *rand.Rand
	sink  Broadcaster
	sched *Scheduler

	mu        sync.Mutex
	registry  *Registry
	global    int
	countries map[string]int
	scores    *ScoreBoard
	sessions  map[string]*sessionState
	attacks   []AttackEvent
}

// sessionState is what the server remembers about one connected session
// beyond its transport: defense upgrade levels and, when the client has
// saved them, the coordinates of its home beacon.
type sessionState struct {
	defense   DefenseLevels
	lat, lon  float64
	hasCoords bool
}

// WorldConfig carries the injectable collaborators. Zero fields get
// production defaults.
type WorldConfig struct {
	Capacity int
	Clock    Clock
	Sink     Broadcaster
	Rand     *rand.Rand
	Logger   zerolog.Logger
}

func NewWorld(cfg WorldConfig) *World {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Sink == nil {
		cfg.Sink = NopBroadcaster{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &World{
		log:       cfg.Logger,
		clock:     cfg.Clock,
		rng:       cfg.Rand,
		sink:      cfg.Sink,
		registry:  NewRegistry(cfg.Capacity),
		countries: make(map[string]int),
		scores:    NewScoreBoard(),
		sessions:  make(map[string]*sessionState),
	}
	w.sched = NewScheduler(cfg.Clock)
	return w
}

// Scheduler exposes the delayed-task queue so the app can run it and tests
// can drive it.
func (w *World) Scheduler() *Scheduler { return w.sched }

// Stop discards pending delayed destructions. Only used at shutdown.
func (w *World) Stop() { w.sched.Stop() }

// SubmitPulse places or refreshes a beacon. Non-finite coordinates are
// silently dropped. Country resolution prefers enriched geocode data, then
// an explicit override, then the box classifier. Broadcasts, in order:
// targetRevived (if the key was destroyed), targetRemoved (if capacity
// forced an eviction) and pulseUpdate.
func (w *World) SubmitPulse(lat, lon float64, source, sessionID, countryOverride string, geo *GeoData) *Target {
	key := LocationKey(lat, lon)
	if key == "" {
		w.log.Debug().Float64("lat", lat).Float64("lon", lon).Msg("dropping pulse with non-finite coordinates")
		return nil
	}

	country := UnknownCountry
	switch {
	case geo != nil && geo.CountryCode != "":
		country = geo.CountryCode
	case countryOverride != "":
		country = countryOverride
	default:
		if code := ClassifyCode(lat, lon); code != "" {
			country = code
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	target := &Target{
		Country:     country,
		Timestamp:   now,
		Lat:         lat,
		Lon:         lon,
		LocationKey: key,
		Source:      source,
		SessionID:   sessionID,
		GeoData:     geo,
	}

	revived, evicted := w.registry.Upsert(target)
	if revived {
		w.sink.Broadcast(TargetRevived{LocationKey: key})
	}
	if evicted != "" {
		w.sink.Broadcast(TargetRemoved{LocationKey: evicted, Reason: "capacity"})
	}

	w.global++
	w.countries[country]++

	w.sink.Broadcast(PulseUpdate{
		Global:     w.global,
		Countries:  w.countryCounts(),
		Country:    country,
		Timestamp:  now,
		PulseEntry: target,
	})

	w.log.Info().
		Str("source", source).
		Str("country", country).
		Str("locationKey", key).
		Int("global", w.global).
		Msg("pulse")
	return target
}

// SubmitAttack validates and, when accepted, broadcasts an attack and
// schedules its delayed destruction. The returned reason is non-empty only
// on rejection and is meant for the submitting session alone.
func (w *World) SubmitAttack(req AttackRequest) (AttackEvent, string) {
	if !isFinite(req.FromLat) || !isFinite(req.FromLon) || !isFinite(req.ToLat) || !isFinite(req.ToLon) {
		return AttackEvent{}, RejectInvalid
	}

	attacker := ClassifyCode(req.FromLat, req.FromLon)
	defender := ClassifyCode(req.ToLat, req.ToLon)
	if attacker == defender {
		w.log.Info().Str("country", attacker).Msg("attack rejected: same country")
		return AttackEvent{}, RejectSameCountry
	}

	targetKey := LocationKey(req.ToLat, req.ToLon)

	w.mu.Lock()
	if w.registry.IsDestroyed(targetKey) {
		w.mu.Unlock()
		w.log.Info().Str("locationKey", targetKey).Msg("attack rejected: target already destroyed")
		return AttackEvent{}, RejectAlreadyDestroyed
	}

	now := w.clock.Now()
	event := AttackEvent{
		FromLat:     req.FromLat,
		FromLon:     req.FromLon,
		ToLat:       req.ToLat,
		ToLon:       req.ToLon,
		IsAutoAgent: req.IsAutoAgent,
		AttackType:  req.Type,
		Duration:    AttackDurationSec(req.Type, req.FromLat, req.FromLon, req.ToLat, req.ToLon),
		Timestamp:   now,
		StartTime:   now.UnixMilli(),
	}

	// Lazy pruning: the window only shrinks when a new attack arrives.
	w.attacks = append(w.attacks, event)
	for len(w.attacks) > 0 && now.Sub(time.UnixMilli(w.attacks[0].StartTime)) > AttackWindow {
		w.attacks = w.attacks[1:]
	}

	w.sink.Broadcast(event)
	w.mu.Unlock()

	w.log.Info().
		Str("from", attacker).
		Str("to", defender).
		Str("type", string(req.Type)).
		Int("duration", event.Duration).
		Bool("auto", req.IsAutoAgent).
		Msg("attack launched")

	delay := time.Duration(event.Duration)*time.Second + DestroyBuffer
	w.sched.Schedule(delay, func() { w.resolveAttack(req, targetKey) })
	return event, ""
}

// resolveAttack fires when an accepted attack's travel window ends. The
// destroyed-set check runs here, at fire time, not at submission: two
// attacks on one key both get scheduled and whichever resolves first wins.
func (w *World) resolveAttack(req AttackRequest, targetKey string) {
	w.mu.Lock()
	if w.registry.IsDestroyed(targetKey) {
		w.mu.Unlock()
		w.claimGround(req)
		return
	}

	target := w.registry.Get(targetKey)
	w.registry.MarkDestroyed(targetKey)
	w.sink.Broadcast(TargetRemoved{LocationKey: targetKey, Reason: destroyReason(req.IsAutoAgent)})

	now := w.clock.Now()
	name, country := UnknownCountry, UnknownCountry
	age := 0
	if target != nil {
		name, country = target.Country, target.Country
		age = target.AgeMinutes(now)
	}
	defense := w.defenseForKeyLocked(targetKey)

	points := TargetPoints(age)
	if req.Cost > 0 {
		points = FinalPoints(BasePoints(req.Cost, age), defense)
	}

	w.sink.Broadcast(TargetDestroyed{
		LocationKey:   targetKey,
		TargetName:    name,
		TargetCountry: country,
		TargetDefense: defense,
		PointsEarned:  points,
		IsAutoAgent:   req.IsAutoAgent,
		DestroyedBy:   req.SessionID,
		Timestamp:     now,
	})
	w.mu.Unlock()

	w.log.Info().
		Str("locationKey", targetKey).
		Str("country", country).
		Int("points", points).
		Bool("auto", req.IsAutoAgent).
		Msg("target destroyed")

	w.claimGround(req)
}

// claimGround spawns the human attacker's follow-up pulse at the origin.
// Auto-agent attacks never claim ground.
func (w *World) claimGround(req AttackRequest) {
	if req.IsAutoAgent {
		return
	}
	w.SubmitPulse(req.FromLat, req.FromLon, "client", req.SessionID, "", nil)
}

func destroyReason(auto bool) string {
	if auto {
		return "destroyed-by-auto"
	}
	return "destroyed-by-player"
}

// DestroyTarget is the direct destruction command. Idempotent; reports
// whether this call performed the destruction.
func (w *World) DestroyTarget(key string) bool {
	if key == "" {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.registry.IsDestroyed(key) {
		return false
	}
	w.registry.MarkDestroyed(key)
	w.sink.Broadcast(TargetRemoved{LocationKey: key, Reason: "destroyed"})
	w.sink.Broadcast(TargetDestroyed{LocationKey: key, Timestamp: w.clock.Now()})
	return true
}

// defenseForKeyLocked finds the defense levels of whichever session has
// saved home coordinates quantizing to the target key.
func (w *World) defenseForKeyLocked(key string) DefenseLevels {
	for _, s := range w.sessions {
		if s.hasCoords && LocationKey(s.lat, s.lon) == key {
			return s.defense
		}
	}
	return DefenseLevels{}
}

// UpdateDefense records a session's defense upgrade levels.
func (w *World) UpdateDefense(sessionID string, d DefenseLevels) {
	if sessionID == "" {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sessionLocked(sessionID).defense = d
}

// SetSessionCoords records where a session's home beacon sits, for
// destruction-time defense matching.
func (w *World) SetSessionCoords(sessionID string, lat, lon float64) {
	if sessionID == "" || !isFinite(lat) || !isFinite(lon) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	s := w.sessionLocked(sessionID)
	s.lat, s.lon, s.hasCoords = lat, lon, true
}

// DropSession forgets a disconnected session's transient state.
func (w *World) DropSession(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.sessions, sessionID)
}

func (w *World) sessionLocked(id string) *sessionState {
	s, ok := w.sessions[id]
	if !ok {
		s = &sessionState{}
		w.sessions[id] = s
	}
	return s
}

// UpdateScore upserts a player's score record and returns the refreshed
// leaderboard, already broadcast to everyone.
func (w *World) UpdateScore(id string, score int, name, avatar, country, provider string) []LeaderboardEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rec := w.scores.Upsert(id, score, name, avatar, country, provider, w.clock.Now()); rec == nil {
		return nil
	}
	top := w.scores.Top(LeaderboardSize)
	w.sink.Broadcast(LeaderboardUpdate{Players: top})
	return top
}

// Leaderboard returns the current top players without broadcasting.
func (w *World) Leaderboard() []LeaderboardEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scores.Top(LeaderboardSize)
}

// InitData is the one-shot full-state replay for a newly joined session.
type InitData struct {
	Global           int                `json:"global"`
	Countries        map[string]int     `json:"countries"`
	RecentActivities []ActivityEntry    `json:"recentActivities"`
	PulseHistory     []*Target          `json:"pulseHistory"`
	DestroyedTargets []string           `json:"destroyedTargets"`
	TopPlayers       []LeaderboardEntry `json:"topPlayers"`
	ActiveAttacks    []AttackEvent      `json:"activeAttacks"`
}

func (InitData) EventName() string { return "initData" }

// Snapshot assembles the handshake payload: aggregates, the full live list,
// destroyed keys, the recent-activity feed, the leaderboard and whichever
// attacks are still inside the replay window.
func (w *World) Snapshot() InitData {
	w.mu.Lock()
	defer w.mu.Unlock()

	live := w.registry.ListLive()
	recent := make([]ActivityEntry, 0, RecentActivityCount)
	for i := len(live) - 1; i >= 0 && len(recent) < RecentActivityCount; i-- {
		t := live[i]
		recent = append(recent, ActivityEntry{Country: t.Country, Timestamp: t.Timestamp, Lat: t.Lat, Lon: t.Lon})
	}

	return InitData{
		Global:           w.global,
		Countries:        w.countryCounts(),
		RecentActivities: recent,
		PulseHistory:     live,
		DestroyedTargets: w.registry.DestroyedKeys(),
		TopPlayers:       w.scores.Top(LeaderboardSize),
		ActiveAttacks:    w.activeAttacksLocked(),
	}
}

// ActiveAttacks returns the in-flight attacks still inside the window.
func (w *World) ActiveAttacks() []AttackEvent {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activeAttacksLocked()
}

func (w *World) activeAttacksLocked() []AttackEvent {
	now := w.clock.Now()
	out := make([]AttackEvent, 0, len(w.attacks))
	for _, a := range w.attacks {
		if now.Sub(time.UnixMilli(a.StartTime)) < AttackWindow {
			out = append(out, a)
		}
	}
	return out
}

// PeriodData aggregates live pulses inside the trailing window.
func (w *World) PeriodData(p Period) PeriodData {
	w.mu.Lock()
	defer w.mu.Unlock()

	cut := p.cutoff(w.clock.Now())
	countries := make(map[string]int)
	global := 0
	for _, t := range w.registry.ListLive() {
		if !cut.IsZero() && t.Timestamp.Before(cut) {
			continue
		}
		countries[t.Country]++
		global++
	}
	return PeriodData{Countries: countries, Global: global, Period: p}
}

// LiveTargets returns the live list for callers outside the lock, such as
// the auto-agent's target search.
func (w *World) LiveTargets() []*Target {
	w.mu.Lock()
	defer w.mu.Unlock()
	live := w.registry.ListLive()
	out := make([]*Target, len(live))
	copy(out, live)
	return out
}

// LiveCount reports the live-registry size.
func (w *World) LiveCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry.Len()
}

// IsDestroyed reports destroyed-set membership for a key.
func (w *World) IsDestroyed(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry.IsDestroyed(key)
}

func (w *World) countryCounts() map[string]int {
	out := make(map[string]int, len(w.countries))
	for k, v := range w.countries {
		out[k] = v
	}
	return out
}
