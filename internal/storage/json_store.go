package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/packlight/packlight-cli/internal/models"
)

// document is the on-disk shape of the whole store.
type document struct {
	Version            int           `json:"version"`
	Trips              []models.Trip `json:"trips"`
	UserName           string        `json:"userName"`
	UserCountry        string        `json:"userCountry"`
	OnboardingComplete bool          `json:"onboardingComplete"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Trips:   []models.Trip{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("%w: failed to read storage: %v", ErrUnavailable, err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("%w: failed to parse storage: %v", ErrUnavailable, err)
	}

	if s.doc.Trips == nil {
		s.doc.Trips = []models.Trip{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to serialize storage: %v", ErrUnavailable, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: failed to write storage: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *JSONStore) GetTrips() ([]models.Trip, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	trips := make([]models.Trip, len(s.doc.Trips))
	copy(trips, s.doc.Trips)
	return trips, nil
}

func (s *JSONStore) SaveTrips(trips []models.Trip) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Trips = trips
	return s.save()
}

func (s *JSONStore) GetProfile() (models.Profile, error) {
	if s.doc == nil {
		return models.Profile{}, fmt.Errorf("storage not loaded")
	}
	return models.Profile{Name: s.doc.UserName, Country: s.doc.UserCountry}, nil
}

func (s *JSONStore) SaveProfile(p models.Profile) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.UserName = p.Name
	s.doc.UserCountry = p.Country
	return s.save()
}

func (s *JSONStore) OnboardingComplete() (bool, error) {
	if s.doc == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	return s.doc.OnboardingComplete, nil
}

func (s *JSONStore) SetOnboardingComplete(done bool) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.OnboardingComplete = done
	return s.save()
}

func (s *JSONStore) Clear() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc = &document{
		Version: 1,
		Trips:   []models.Trip{},
	}
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
