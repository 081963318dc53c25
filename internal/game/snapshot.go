package game

import "time"

// WorldSnapshot is the serializable slice of world state that survives a
// restart: aggregate counters plus the live pulse history. Destroyed keys
// and in-flight attacks are deliberately transient.
type WorldSnapshot struct {
	Global       int            `json:"global"`
	Countries    map[string]int `json:"countries"`
	PulseHistory []*Target      `json:"pulseHistory"`
	SavedAt      time.Time      `json:"savedAt"`
}

// Export captures the current snapshot.
func (w *World) Export() WorldSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorldSnapshot{
		Global:       w.global,
		Countries:    w.countryCounts(),
		PulseHistory: w.registry.ListLive(),
		SavedAt:      w.clock.Now(),
	}
}

// Restore replaces world state with a loaded snapshot. Counters are taken
// as-is; targets re-enter the registry in their stored order so eviction
// keeps honoring original insertion age. Broadcasts nothing: restore runs
// before any session connects.
func (w *World) Restore(snap WorldSnapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.registry = NewRegistry(w.registry.capacity)
	for _, t := range snap.PulseHistory {
		if t == nil {
			continue
		}
		if t.LocationKey == "" {
			t.LocationKey = LocationKey(t.Lat, t.Lon)
		}
		if t.LocationKey == "" {
			continue
		}
		w.registry.Upsert(t)
	}

	w.global = snap.Global
	w.countries = make(map[string]int, len(snap.Countries))
	for k, v := range snap.Countries {
		w.countries[k] = v
	}
	w.log.Info().Int("pulses", w.registry.Len()).Time("savedAt", snap.SavedAt).Msg("world state restored")
}
