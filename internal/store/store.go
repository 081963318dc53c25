package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// User is a persisted player profile. The ID comes from the client's auth
// provider; there is no server-side account system beyond this row.
type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Provider  string         `json:"provider"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar,omitempty"`
	Country   string         `json:"country"`
	Score     int            `json:"score"`
	Profile   datatypes.JSON `json:"profile,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// GameState is one session's saved client-side state blob. The server treats
// it as opaque JSON except for the coordinates it mirrors into the live world
// on save.
type GameState struct {
	SessionID string         `gorm:"primaryKey" json:"sessionId"`
	State     datatypes.JSON `json:"state"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Store wraps the sqlite database behind the HTTP persistence surface.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the sqlite database at path and migrates
// the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}
	if err := db.AutoMigrate(&User{}, &GameState{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info().Str("path", path).Msg("database ready")
	return &Store{db: db, log: log}, nil
}

// ErrNotFound reports a missing row to callers without leaking gorm.
var ErrNotFound = errors.New("not found")

// GetUser loads one user by ID.
func (s *Store) GetUser(id string) (*User, error) {
	var u User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpsertUser creates or updates a user row.
func (s *Store) UpsertUser(u *User) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(u).Error
}

// TopUsers returns the highest-scoring persisted users.
func (s *Store) TopUsers(n int) ([]User, error) {
	var users []User
	err := s.db.Where("score > 0 AND provider <> ?", "guest").
		Order("score DESC").Limit(n).Find(&users).Error
	return users, err
}

// SaveGameState stores a session's opaque state blob.
func (s *Store) SaveGameState(sessionID string, state []byte) error {
	gs := GameState{SessionID: sessionID, State: datatypes.JSON(state)}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&gs).Error
}

// GetGameState loads a session's saved blob.
func (s *Store) GetGameState(sessionID string) (*GameState, error) {
	var gs GameState
	if err := s.db.First(&gs, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &gs, nil
}
