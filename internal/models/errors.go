package models

import "errors"

// ErrNotFound is returned by repository operations when the referenced trip
// or item does not exist in the collection.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a required field is empty after trimming
// or a date fails to parse.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidReminder is returned when an item's reminder date is not strictly
// before the parent trip's start date. Kept distinct from ErrInvalidInput so
// callers can render a specific message.
var ErrInvalidReminder = errors.New("reminder date must be before the trip start date")
