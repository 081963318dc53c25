package game

import "time"

// Event is one broadcast mutation. The set of implementations is closed;
// the transport layer wraps each in a named envelope using EventName.
type Event interface {
	EventName() string
}

// Broadcaster fans an event out to every connected session, preserving the
// order in which events are handed to it. The engine calls Broadcast inline
// with each registry mutation, which is what gives clients mutation order.
type Broadcaster interface {
	Broadcast(Event)
}

// NopBroadcaster discards events. Used before the transport is wired and in
// tests that only assert on state.
type NopBroadcaster struct{}

func (NopBroadcaster) Broadcast(Event) {}

// PulseUpdate announces a new or refreshed target together with the updated
// aggregate counters.
type PulseUpdate struct {
	Global     int            `json:"global"`
	Countries  map[string]int `json:"countries"`
	Country    string         `json:"country"`
	Timestamp  time.Time      `json:"timestamp"`
	PulseEntry *Target        `json:"pulseEntry"`
}

func (PulseUpdate) EventName() string { return "pulseUpdate" }

// TargetRemoved announces eviction or post-destruction cleanup of a target.
type TargetRemoved struct {
	LocationKey string `json:"locationKey"`
	Reason      string `json:"reason,omitempty"`
}

func (TargetRemoved) EventName() string { return "targetRemoved" }

// TargetRevived announces that a destroyed location came back to life via a
// fresh pulse.
type TargetRevived struct {
	LocationKey string `json:"locationKey"`
}

func (TargetRevived) EventName() string { return "targetRevived" }

// TargetDestroyed announces the resolution of an attack, with everything the
// client needs for scoring and notification.
type TargetDestroyed struct {
	LocationKey   string        `json:"locationKey"`
	TargetName    string        `json:"targetName,omitempty"`
	TargetCountry string        `json:"targetCountry,omitempty"`
	TargetDefense DefenseLevels `json:"targetDefense"`
	PointsEarned  int           `json:"pointsEarned"`
	IsAutoAgent   bool          `json:"isAutoAgent"`
	DestroyedBy   string        `json:"destroyedBy,omitempty"`
	Timestamp     time.Time     `json:"timestamp,omitempty"`
}

func (TargetDestroyed) EventName() string { return "targetDestroyed" }

// LeaderboardUpdate carries the refreshed top-player list.
type LeaderboardUpdate struct {
	Players []LeaderboardEntry `json:"players"`
}

func (LeaderboardUpdate) EventName() string { return "leaderboardUpdate" }

func (AttackEvent) EventName() string { return "attackEvent" }

// AttackRejected is sent only to the submitting session, never broadcast.
type AttackRejected struct {
	Reason string `json:"reason"`
}

func (AttackRejected) EventName() string { return "attackRejected" }
