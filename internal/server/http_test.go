package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"PulseMap/internal/game"
	"PulseMap/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	hub := NewHub(zerolog.Nop())
	world := game.NewWorld(game.WorldConfig{Sink: hub, Logger: zerolog.Nop()})
	return &App{
		Cfg:   Config{},
		Log:   zerolog.Nop(),
		World: world,
		Hub:   hub,
		Store: st,
	}
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUserRoundTrip(t *testing.T) {
	app := newTestApp(t)
	mux := app.router()

	// Unknown user gets a blank profile, not an error.
	rec := doJSON(t, mux, http.MethodGet, "/api/user/u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown user: got %d", rec.Code)
	}
	var blank struct {
		PersonalScore int      `json:"personalScore"`
		Achievements  []string `json:"achievements"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &blank); err != nil {
		t.Fatal(err)
	}
	if blank.PersonalScore != 0 || blank.Achievements == nil {
		t.Errorf("unexpected blank profile %s", rec.Body)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/user/u1", map[string]any{
		"provider": "github",
		"name":     "Ada",
		"country":  "GB",
		"score":    120,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create user: got %d: %s", rec.Code, rec.Body)
	}
	var saved struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil || !saved.Success {
		t.Fatalf("save should echo success, got %s", rec.Body)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/user/u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get user: got %d", rec.Code)
	}
	var u store.User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatal(err)
	}
	if u.ID != "u1" || u.Score != 120 || u.Name != "Ada" {
		t.Errorf("unexpected user %+v", u)
	}

	// Posting a score also lands on the live leaderboard.
	top := app.World.Leaderboard()
	if len(top) != 1 || top[0].ID != "u1" || top[0].Score != 120 {
		t.Errorf("leaderboard not updated: %v", top)
	}
}

func TestUserPostBadBody(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/user/u1", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	app.router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d", rec.Code)
	}
}

func TestGameStateSaveAndLoad(t *testing.T) {
	app := newTestApp(t)
	mux := app.router()

	state := map[string]any{
		"resources":       map[string]int{"energy": 40},
		"userCoordinates": map[string]float64{"lat": 40.7128, "lon": -74.0060},
	}
	rec := doJSON(t, mux, http.MethodPost, "/api/gamestate/save", map[string]any{
		"sessionId": "s1",
		"state":     state,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("save: got %d: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/gamestate/s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("load: got %d", rec.Code)
	}
	var gs store.GameState
	if err := json.Unmarshal(rec.Body.Bytes(), &gs); err != nil {
		t.Fatal(err)
	}
	var loaded map[string]any
	if err := json.Unmarshal(gs.State, &loaded); err != nil {
		t.Fatal(err)
	}
	if _, ok := loaded["resources"]; !ok {
		t.Errorf("state blob lost content: %s", gs.State)
	}

	// The saved coordinates must now count as s1's home for defense
	// matching: an attack on that cell resolves against s1's levels.
	app.World.SubmitPulse(40.7128, -74.0060, "client", "s1", "", nil)
	app.World.UpdateDefense("s1", game.DefenseLevels{Shield: 2})

	watcher := newQueuedSession("watcher", 64)
	app.Hub.register(watcher)

	_, reason := app.World.SubmitAttack(game.AttackRequest{
		FromLat: 48.8566, FromLon: 2.3522,
		ToLat: 40.7128, ToLon: -74.0060,
		Type: game.AttackPulse, SessionID: "attacker", Cost: 10,
	})
	if reason != "" {
		t.Fatalf("attack rejected: %s", reason)
	}
	app.World.Scheduler().RunDue(time.Now().Add(2 * time.Minute))

	var destroyed *game.TargetDestroyed
	for _, env := range drain(watcher) {
		if env.Type != "targetDestroyed" {
			continue
		}
		var ev game.TargetDestroyed
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			t.Fatal(err)
		}
		destroyed = &ev
	}
	if destroyed == nil {
		t.Fatal("attack never resolved")
	}
	if destroyed.TargetDefense.Shield != 2 {
		t.Fatalf("saved coordinates not matched to defense: %+v", destroyed.TargetDefense)
	}
	// cost 10 → base 30, shield 2 → 0.20 reduction → 24.
	if destroyed.PointsEarned != 24 {
		t.Errorf("expected 24 points after reduction, got %d", destroyed.PointsEarned)
	}
}

func TestGameStateSaveValidation(t *testing.T) {
	app := newTestApp(t)
	mux := app.router()

	rec := doJSON(t, mux, http.MethodPost, "/api/gamestate/save", map[string]any{"state": map[string]int{}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing sessionId: got %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/api/gamestate/nobody", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown session: got %d", rec.Code)
	}
	var missing struct {
		Found bool `json:"found"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &missing); err != nil || missing.Found {
		t.Fatalf("unknown session should report found=false, got %s", rec.Body)
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.World.UpdateScore("u1", 50, "Bea", "", "US", "google")

	rec := doJSON(t, app.router(), http.MethodGet, "/api/leaderboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var top []game.LeaderboardEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &top); err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].ID != "u1" {
		t.Errorf("unexpected leaderboard %v", top)
	}
}

func TestIPLocationPrivateAddress(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/ip-location", nil)
	req.RemoteAddr = "127.0.0.1:5000"
	rec := httptest.NewRecorder()
	app.router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("ip lookup must never error, got %d", rec.Code)
	}
	var loc ipLocation
	if err := json.Unmarshal(rec.Body.Bytes(), &loc); err != nil {
		t.Fatal(err)
	}
	if !loc.IsLocal || loc.Country != "Unknown" {
		t.Errorf("loopback should resolve as local Unknown, got %+v", loc)
	}
}

func TestClientIPParsing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	if got := clientIP(req); got != "203.0.113.7" {
		t.Errorf("remote addr: got %q", got)
	}
	req.Header.Set("X-Forwarded-For", "198.51.100.2, 10.0.0.1")
	if got := clientIP(req); got != "198.51.100.2" {
		t.Errorf("forwarded: got %q", got)
	}
	if !isPrivateIP("10.1.2.3") || !isPrivateIP("garbage") || isPrivateIP("198.51.100.2") {
		t.Error("private ip classification wrong")
	}
}
