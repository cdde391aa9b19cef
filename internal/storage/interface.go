package storage

import "github.com/packlight/packlight-cli/internal/models"

// Provider is the persistence gateway for the trip collection and user
// profile. Implementations persist four logical keys (trips, userName,
// userCountry, onboardingComplete) as JSON-serialized values.
//
// Providers are not safe for concurrent use by multiple goroutines, and
// running multiple processes against the same path is last-writer-wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Trip collection
	GetTrips() ([]models.Trip, error)
	SaveTrips([]models.Trip) error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error
	OnboardingComplete() (bool, error)
	SetOnboardingComplete(bool) error

	// Clear removes all keys atomically with respect to subsequent reads.
	Clear() error

	// Utils
	GetConfigPath() string
}
