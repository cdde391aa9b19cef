package constants

import "time"

const (
	AppName           = "packlight"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/packlight/packlight.json"

	// DefaultKeyringUser is the keyring account under which the weather API
	// key is stored.
	DefaultKeyringUser = "weather-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// UpcomingWindow is how far ahead a trip's start date may be for the trip
	// to be flagged as upcoming.
	UpcomingWindow = 7 * 24 * time.Hour

	// TripReminderLead is how long before a trip's start date the
	// "starting tomorrow" notification fires.
	TripReminderLead = 24 * time.Hour

	// Notification copy
	TripStartTitle = "Trip Starting Tomorrow!"
	TripStartBody  = "Your trip to %s starts tomorrow! Time to start packing!"
	ItemTitle      = "Pack Your Item!"
	ItemBody       = "Don't forget to pack your %s for %s!"

	// Notifier constants
	NotifierLockfileName   = "packlight-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.packlight.tray"
)

// Storage keys for the persisted document. Stable identifiers; renaming one
// orphans previously written data.
const (
	KeyTrips              = "trips"
	KeyUserName           = "userName"
	KeyUserCountry        = "userCountry"
	KeyOnboardingComplete = "onboardingComplete"
)
