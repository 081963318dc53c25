package store

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestUserUpsertAndGet(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.GetUser("u1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	u := &User{ID: "u1", Provider: "github", Name: "Ada", Country: "GB", Score: 10}
	if err := s.UpsertUser(u); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetUser("u1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Ada" || got.Score != 10 {
		t.Errorf("unexpected user %+v", got)
	}

	u.Score = 99
	if err := s.UpsertUser(u); err != nil {
		t.Fatal(err)
	}
	got, _ = s.GetUser("u1")
	if got.Score != 99 {
		t.Errorf("update lost: score %d", got.Score)
	}
}

func TestTopUsersFiltersAndOrders(t *testing.T) {
	s := openTestStore(t)
	users := []User{
		{ID: "a", Provider: "github", Name: "A", Score: 30},
		{ID: "b", Provider: "google", Name: "B", Score: 80},
		{ID: "g", Provider: "guest", Name: "G", Score: 500},
		{ID: "z", Provider: "github", Name: "Z", Score: 0},
	}
	for i := range users {
		if err := s.UpsertUser(&users[i]); err != nil {
			t.Fatal(err)
		}
	}

	top, err := s.TopUsers(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].ID != "b" || top[1].ID != "a" {
		t.Fatalf("unexpected top users %v", top)
	}
}

func TestGameStateRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.GetGameState("s1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	blob := []byte(`{"resources":{"energy":40},"userCoordinates":{"lat":1.5,"lon":2.5}}`)
	if err := s.SaveGameState("s1", blob); err != nil {
		t.Fatal(err)
	}

	gs, err := s.GetGameState("s1")
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(gs.State, &decoded); err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded["resources"]; !ok {
		t.Errorf("blob lost content: %s", gs.State)
	}

	// Save again overwrites, not duplicates.
	if err := s.SaveGameState("s1", []byte(`{"v":2}`)); err != nil {
		t.Fatal(err)
	}
	gs, _ = s.GetGameState("s1")
	if string(gs.State) != `{"v":2}` {
		t.Errorf("overwrite failed: %s", gs.State)
	}
}
