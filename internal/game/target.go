package game

import "time"

// GeoData is the enriched reverse-geocode result attached to a target when
// the external lookup succeeded. Cosmetic except for CountryCode, which
// overrides the box classifier.
type GeoData struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Road        string `json:"road,omitempty"`
	IsWater     bool   `json:"isWater"`
}

// Target is the registry record backing one beacon at a quantized location.
type Target struct {
	Country     string    `json:"country"`
	Timestamp   time.Time `json:"timestamp"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	LocationKey string    `json:"locationKey"`
	Source      string    `json:"source"`              // "client", "auto" or "seed"
	SessionID   string    `json:"sessionId,omitempty"` // submitting session, when known
	GeoData     *GeoData  `json:"geoData,omitempty"`
}

// AgeMinutes is the whole minutes elapsed since the target's last pulse,
// clamped below at zero.
func (t *Target) AgeMinutes(now time.Time) int {
	if t == nil || t.Timestamp.IsZero() {
		return 0
	}
	mins := int(now.Sub(t.Timestamp).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// ActivityEntry is the trimmed view of a pulse shown in the recent-activity
// feed of the handshake payload.
type ActivityEntry struct {
	Country   string    `json:"country"`
	Timestamp time.Time `json:"timestamp"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
}
