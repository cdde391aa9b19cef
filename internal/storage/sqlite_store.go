package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/packlight/packlight-cli/internal/constants"
	"github.com/packlight/packlight-cli/internal/models"
)

// SQLiteStore implements the same key-value contract as JSONStore over a
// single kv table. Values are stored JSON-serialized.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", ErrUnavailable, err)
	}
	s.db = db

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("%w: failed to create schema: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", ErrUnavailable, err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// get returns the stored value for key, or false when the key was never set.
func (s *SQLiteStore) get(key string, out interface{}) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: failed to read key %s: %v", ErrUnavailable, key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("%w: failed to parse key %s: %v", ErrUnavailable, key, err)
	}
	return true, nil
}

func (s *SQLiteStore) set(key string, value interface{}) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize key %s: %v", ErrUnavailable, key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: failed to write key %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (s *SQLiteStore) GetTrips() ([]models.Trip, error) {
	var trips []models.Trip
	ok, err := s.get(constants.KeyTrips, &trips)
	if err != nil {
		return nil, err
	}
	if !ok || trips == nil {
		return []models.Trip{}, nil
	}
	return trips, nil
}

func (s *SQLiteStore) SaveTrips(trips []models.Trip) error {
	return s.set(constants.KeyTrips, trips)
}

func (s *SQLiteStore) GetProfile() (models.Profile, error) {
	var p models.Profile
	if _, err := s.get(constants.KeyUserName, &p.Name); err != nil {
		return models.Profile{}, err
	}
	if _, err := s.get(constants.KeyUserCountry, &p.Country); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *SQLiteStore) SaveProfile(p models.Profile) error {
	if err := s.set(constants.KeyUserName, p.Name); err != nil {
		return err
	}
	return s.set(constants.KeyUserCountry, p.Country)
}

func (s *SQLiteStore) OnboardingComplete() (bool, error) {
	var done bool
	if _, err := s.get(constants.KeyOnboardingComplete, &done); err != nil {
		return false, err
	}
	return done, nil
}

func (s *SQLiteStore) SetOnboardingComplete(done bool) error {
	return s.set(constants.KeyOnboardingComplete, done)
}

// Clear removes all keys in a single transaction so readers never observe a
// partially cleared store.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrUnavailable, err)
	}
	if _, err := tx.Exec(`DELETE FROM kv`); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: failed to clear storage: %v", ErrUnavailable, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit clear: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
