package game

import (
	"sort"
	"time"
)

// ScoreRecord is one player's cumulative standing. The ID is client-asserted;
// nothing ties it to a real identity.
type ScoreRecord struct {
	ID         string    `json:"id"`
	Provider   string    `json:"provider"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar,omitempty"`
	Country    string    `json:"country"`
	Score      int       `json:"score"`
	LastActive time.Time `json:"lastActive"`
}

// LeaderboardEntry is the wire view of one leaderboard row.
type LeaderboardEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Score   int    `json:"score"`
	Country string `json:"country"`
}

// ScoreBoard holds all score records. Not safe for concurrent use on its
// own; the World serializes access.
type ScoreBoard struct {
	records map[string]*ScoreRecord
}

func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{records: make(map[string]*ScoreRecord)}
}

// Upsert records a score update, creating the player on first sight. Blank
// metadata fields fall back to defaults on create and are preserved on
// update.
func (b *ScoreBoard) Upsert(id string, score int, name, avatar, country, provider string, now time.Time) *ScoreRecord {
	if id == "" {
		return nil
	}
	rec, ok := b.records[id]
	if !ok {
		if name == "" {
			name = "Player"
		}
		if country == "" {
			country = UnknownCountry
		}
		if provider == "" {
			provider = "unknown"
		}
		rec = &ScoreRecord{ID: id, Provider: provider, Name: name, Avatar: avatar, Country: country}
		b.records[id] = rec
	}
	rec.Score = score
	rec.LastActive = now
	return rec
}

// Top returns up to n entries sorted by score descending. Guests and
// zero-score players never appear.
func (b *ScoreBoard) Top(n int) []LeaderboardEntry {
	players := make([]*ScoreRecord, 0, len(b.records))
	for _, rec := range b.records {
		if rec.Provider == "guest" || rec.Score <= 0 {
			continue
		}
		players = append(players, rec)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Score > players[j].Score })
	if len(players) > n {
		players = players[:n]
	}
	out := make([]LeaderboardEntry, len(players))
	for i, rec := range players {
		out[i] = LeaderboardEntry{
			ID:      rec.ID,
			Name:    rec.Name,
			Avatar:  rec.Avatar,
			Score:   rec.Score,
			Country: rec.Country,
		}
	}
	return out
}

// Len reports the number of known players.
func (b *ScoreBoard) Len() int { return len(b.records) }
