package repository

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/packlight/packlight-cli/internal/logger"
	"github.com/packlight/packlight-cli/internal/models"
	"github.com/packlight/packlight-cli/internal/storage"
	"github.com/packlight/packlight-cli/internal/utils"
)

// TripRepository owns the in-memory trip collection and is the single source
// of truth for it. Every mutating operation persists the full collection
// through the storage Provider before returning, so a caller that observes a
// mutation's completion also observes the persisted state.
//
// The repository runs on a single logic goroutine and performs no internal
// locking; the Provider contract already rules out concurrent writers.
type TripRepository struct {
	store     storage.Provider
	trips     []models.Trip
	listeners []func([]models.Trip)
}

// New builds a repository over an already-loaded Provider and reads the
// current collection into memory.
func New(store storage.Provider) (*TripRepository, error) {
	trips, err := store.GetTrips()
	if err != nil {
		return nil, fmt.Errorf("failed to load trip collection: %w", err)
	}
	return &TripRepository{
		store: store,
		trips: trips,
	}, nil
}

// Subscribe registers a listener invoked with a snapshot of the collection
// after every successful mutation. Used to drive reminder rescheduling.
func (r *TripRepository) Subscribe(fn func([]models.Trip)) {
	r.listeners = append(r.listeners, fn)
}

func (r *TripRepository) notify() {
	snapshot := r.snapshot()
	for _, fn := range r.listeners {
		fn(snapshot)
	}
}

func (r *TripRepository) snapshot() []models.Trip {
	trips := make([]models.Trip, len(r.trips))
	copy(trips, r.trips)
	return trips
}

// persist writes the full collection through to storage. On failure the
// in-memory state is left as-is; the persisted and in-memory views may have
// diverged and the caller reloads from storage on next start.
func (r *TripRepository) persist() error {
	if err := r.store.SaveTrips(r.trips); err != nil {
		logger.Error("Failed to persist trip collection", "error", err)
		return err
	}
	return nil
}

// ListTrips returns all trips ordered by ascending start date. Ordering is a
// view concern; the stored collection keeps insertion order.
func (r *TripRepository) ListTrips() []models.Trip {
	trips := r.snapshot()
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].StartDate < trips[j].StartDate
	})
	return trips
}

// GetTrip returns the trip with the given id.
func (r *TripRepository) GetTrip(id string) (models.Trip, error) {
	for _, t := range r.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trip{}, fmt.Errorf("trip %s: %w", id, models.ErrNotFound)
}

// CreateTrip validates the input, generates a fresh id, appends the trip with
// an empty item list, and persists.
func (r *TripRepository) CreateTrip(destination, startDate string) (models.Trip, error) {
	trip := models.Trip{
		ID:          uuid.New().String(),
		Destination: strings.TrimSpace(destination),
		StartDate:   startDate,
		Items:       []models.Item{},
	}
	if err := trip.Validate(); err != nil {
		return models.Trip{}, err
	}

	r.trips = append(r.trips, trip)
	if err := r.persist(); err != nil {
		return models.Trip{}, err
	}

	logger.Info("Created trip", "id", trip.ID, "destination", trip.Destination)
	r.notify()
	return trip, nil
}

// DeleteTrip removes the trip and all nested items permanently.
func (r *TripRepository) DeleteTrip(id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("trip %s: %w", id, models.ErrNotFound)
	}

	r.trips = append(r.trips[:idx], r.trips[idx+1:]...)
	if err := r.persist(); err != nil {
		return err
	}

	logger.Info("Deleted trip", "id", id)
	r.notify()
	return nil
}

// AddItem validates and inserts a new item at the front of the trip's item
// sequence (most-recently-added first). A reminder date, when supplied, must
// be strictly before the trip's start date at this moment; the check is not
// repeated if the trip's date later changes.
func (r *TripRepository) AddItem(tripID, category, name string, reminderDate *string) (models.Item, error) {
	idx := r.indexOf(tripID)
	if idx < 0 {
		return models.Item{}, fmt.Errorf("trip %s: %w", tripID, models.ErrNotFound)
	}
	trip := &r.trips[idx]

	item := models.Item{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(name),
		Category: strings.TrimSpace(category),
		Packed:   false,
	}
	if reminderDate != nil && *reminderDate != "" {
		item.ReminderDate = reminderDate
	}
	if err := item.Validate(); err != nil {
		return models.Item{}, err
	}

	if reminder, ok := item.Reminder(); ok {
		start, err := trip.Start()
		if err != nil {
			return models.Item{}, fmt.Errorf("%w: trip has an unparseable start date", models.ErrInvalidInput)
		}
		if !reminder.Before(start) {
			return models.Item{}, models.ErrInvalidReminder
		}
	}

	trip.Items = append([]models.Item{item}, trip.Items...)
	if err := r.persist(); err != nil {
		return models.Item{}, err
	}

	logger.Info("Added item", "trip", tripID, "item", item.ID, "name", item.Name)
	r.notify()
	return item, nil
}

// TogglePacked flips the packed flag on an item and returns the updated item.
func (r *TripRepository) TogglePacked(tripID, itemID string) (models.Item, error) {
	trip, item, err := r.findItem(tripID, itemID)
	if err != nil {
		return models.Item{}, err
	}

	item.Packed = !item.Packed
	if err := r.persist(); err != nil {
		return models.Item{}, err
	}

	logger.Debug("Toggled item", "trip", trip.ID, "item", item.ID, "packed", item.Packed)
	r.notify()
	return *item, nil
}

// DeleteItem removes an item from its trip.
func (r *TripRepository) DeleteItem(tripID, itemID string) error {
	idx := r.indexOf(tripID)
	if idx < 0 {
		return fmt.Errorf("trip %s: %w", tripID, models.ErrNotFound)
	}
	trip := &r.trips[idx]

	for i, item := range trip.Items {
		if item.ID == itemID {
			trip.Items = append(trip.Items[:i], trip.Items[i+1:]...)
			if err := r.persist(); err != nil {
				return err
			}
			r.notify()
			return nil
		}
	}
	return fmt.Errorf("item %s: %w", itemID, models.ErrNotFound)
}

// SearchItems returns the trip's items whose name or category contains the
// query, case-insensitively. An empty query returns all items in stored
// order.
func (r *TripRepository) SearchItems(tripID, query string) ([]models.Item, error) {
	trip, err := r.GetTrip(tripID)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return trip.Items, nil
	}

	q := strings.ToLower(query)
	matches := make([]models.Item, 0, len(trip.Items))
	for _, item := range trip.Items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// Reset clears all stored state (trips and profile) and empties the in-memory
// collection. Used by logout.
func (r *TripRepository) Reset() error {
	if err := r.store.Clear(); err != nil {
		return err
	}
	r.trips = []models.Trip{}
	logger.Info("Reset trip collection and profile")
	r.notify()
	return nil
}

// Trips returns a snapshot of the collection in stored order.
func (r *TripRepository) Trips() []models.Trip {
	return r.snapshot()
}

func (r *TripRepository) indexOf(id string) int {
	for i, t := range r.trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *TripRepository) findItem(tripID, itemID string) (*models.Trip, *models.Item, error) {
	idx := r.indexOf(tripID)
	if idx < 0 {
		return nil, nil, fmt.Errorf("trip %s: %w", tripID, models.ErrNotFound)
	}
	trip := &r.trips[idx]
	for i := range trip.Items {
		if trip.Items[i].ID == itemID {
			return trip, &trip.Items[i], nil
		}
	}
	return nil, nil, fmt.Errorf("item %s: %w", itemID, models.ErrNotFound)
}

// ValidateReminderDate reports whether a candidate reminder date would be
// accepted for the given trip start date right now. The CLI uses it for
// inline validation before calling AddItem.
func ValidateReminderDate(reminderDate, startDate string) error {
	reminder, err := utils.ParseDate(reminderDate)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	if !reminder.Before(start) {
		return models.ErrInvalidReminder
	}
	return nil
}
