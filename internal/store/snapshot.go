package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"PulseMap/internal/game"
)

// SaveSnapshot writes the world snapshot as JSON, atomically: a temp file in
// the same directory is renamed over the target so a crash mid-write never
// leaves a truncated snapshot.
func SaveSnapshot(path string, snap game.WorldSnapshot) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a saved snapshot. A missing file returns ok=false with
// no error; a corrupt one is an error so the operator notices instead of
// silently starting fresh.
func LoadSnapshot(path string) (game.WorldSnapshot, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return game.WorldSnapshot{}, false, nil
		}
		return game.WorldSnapshot{}, false, fmt.Errorf("read snapshot %q: %w", path, err)
	}
	var snap game.WorldSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return game.WorldSnapshot{}, false, fmt.Errorf("parse snapshot %q: %w", path, err)
	}
	return snap, true, nil
}
