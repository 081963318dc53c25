package server

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"PulseMap/internal/store"
)

// router builds the HTTP surface: the websocket endpoint plus the small REST
// API for profiles, saved game state and IP geolocation.
func (a *App) router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", a.handleWS)
	mux.HandleFunc("GET /api/user/{id}", a.handleGetUser)
	mux.HandleFunc("POST /api/user/{id}", a.handlePostUser)
	mux.HandleFunc("POST /api/gamestate/save", a.handleSaveGameState)
	mux.HandleFunc("GET /api/gamestate/{id}", a.handleGetGameState)
	mux.HandleFunc("GET /api/ip-location", a.handleIPLocation)
	mux.HandleFunc("GET /api/leaderboard", a.handleLeaderboard)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (a *App) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	u, err := a.Store.GetUser(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Unknown users get a blank profile, not an error.
			writeJSON(w, http.StatusOK, map[string]any{
				"id":            id,
				"personalScore": 0,
				"achievements":  []string{},
				"history":       []string{},
			})
			return
		}
		a.Log.Error().Err(err).Str("id", id).Msg("get user")
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (a *App) handlePostUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var u store.User
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	u.ID = id
	if err := a.Store.UpsertUser(&u); err != nil {
		a.Log.Error().Err(err).Str("id", id).Msg("upsert user")
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	// Keep the live leaderboard in step with the persisted score.
	a.World.UpdateScore(u.ID, u.Score, u.Name, u.Avatar, u.Country, u.Provider)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type gameStateSaveRequest struct {
	SessionID string          `json:"sessionId"`
	State     json.RawMessage `json:"state"`
}

// userCoordinates is the one part of the saved blob the server reads: the
// home beacon position that defense matching keys on.
type userCoordinates struct {
	UserCoordinates *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"userCoordinates"`
}

func (a *App) handleSaveGameState(w http.ResponseWriter, r *http.Request) {
	var req gameStateSaveRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.SessionID == "" || len(req.State) == 0 {
		writeError(w, http.StatusBadRequest, "sessionId and state required")
		return
	}
	if err := a.Store.SaveGameState(req.SessionID, req.State); err != nil {
		a.Log.Error().Err(err).Str("session", req.SessionID).Msg("save game state")
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	var coords userCoordinates
	if err := json.Unmarshal(req.State, &coords); err == nil && coords.UserCoordinates != nil {
		a.World.SetSessionCoords(req.SessionID, coords.UserCoordinates.Lat, coords.UserCoordinates.Lon)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

func (a *App) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	gs, err := a.Store.GetGameState(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]bool{"found": false})
			return
		}
		a.Log.Error().Err(err).Str("session", id).Msg("get game state")
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, gs)
}

func (a *App) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.World.Leaderboard())
}

const ipLocateBase = "http://ip-api.com/json/"

type ipAPIResponse struct {
	Status      string  `json:"status"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type ipLocation struct {
	IP          string  `json:"ip"`
	Country     string  `json:"country"`
	CountryName string  `json:"countryName,omitempty"`
	City        string  `json:"city,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lon         float64 `json:"lon,omitempty"`
	IsLocal     bool    `json:"isLocal"`
}

// handleIPLocation resolves the caller's public IP to a coarse location.
// Never an error to the client: private addresses (local development) and
// failed lookups both come back as Unknown.
func (a *App) handleIPLocation(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if ip == "" || isPrivateIP(ip) {
		writeJSON(w, http.StatusOK, ipLocation{IP: ip, Country: "Unknown", IsLocal: true})
		return
	}

	unknown := ipLocation{IP: ip, Country: "Unknown"}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(ipLocateBase + ip)
	if err != nil {
		a.Log.Warn().Err(err).Str("ip", ip).Msg("ip location lookup failed")
		writeJSON(w, http.StatusOK, unknown)
		return
	}
	defer resp.Body.Close()

	var loc ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil || loc.Status != "success" {
		writeJSON(w, http.StatusOK, unknown)
		return
	}
	writeJSON(w, http.StatusOK, ipLocation{
		IP:          ip,
		Country:     loc.CountryCode,
		CountryName: loc.Country,
		City:        loc.City,
		Lat:         loc.Lat,
		Lon:         loc.Lon,
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isPrivateIP(raw string) bool {
	ip := net.ParseIP(raw)
	if ip == nil {
		return true
	}
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified()
}
