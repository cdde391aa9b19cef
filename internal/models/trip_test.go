package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestTripValidate(t *testing.T) {
	valid := Trip{ID: "t1", Destination: "Paris", StartDate: "2026-06-10"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid trip rejected: %v", err)
	}

	cases := []struct {
		name string
		trip Trip
	}{
		{"empty destination", Trip{StartDate: "2026-06-10"}},
		{"whitespace destination", Trip{Destination: "  ", StartDate: "2026-06-10"}},
		{"missing date", Trip{Destination: "Paris"}},
		{"bad date format", Trip{Destination: "Paris", StartDate: "06/10/2026"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.trip.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestItemValidate(t *testing.T) {
	reminder := "2026-06-01"
	valid := Item{ID: "i1", Name: "Passport", Category: "Documents", ReminderDate: &reminder}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid item rejected: %v", err)
	}

	noReminder := Item{ID: "i1", Name: "Passport", Category: "Documents"}
	if err := noReminder.Validate(); err != nil {
		t.Errorf("reminder must be optional: %v", err)
	}

	bad := "yesterday"
	cases := []struct {
		name string
		item Item
	}{
		{"empty name", Item{Category: "Documents"}},
		{"empty category", Item{Name: "Passport"}},
		{"bad reminder date", Item{Name: "Passport", Category: "Documents", ReminderDate: &bad}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.item.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestTripStart(t *testing.T) {
	trip := Trip{StartDate: "2026-06-10"}
	start, err := trip.Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	want := time.Date(2026, 6, 10, 0, 0, 0, 0, time.Local)
	if !start.Equal(want) {
		t.Errorf("got %v, want %v", start, want)
	}

	broken := Trip{StartDate: "eventually"}
	if _, err := broken.Start(); err == nil {
		t.Error("expected error for unparseable start date")
	}
}

func TestItemReminder(t *testing.T) {
	date := "2026-06-01"
	item := Item{ReminderDate: &date}
	when, ok := item.Reminder()
	if !ok {
		t.Fatal("expected reminder to parse")
	}
	if !when.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("got %v", when)
	}

	unset := Item{}
	if _, ok := unset.Reminder(); ok {
		t.Error("unset reminder must report not ok")
	}

	empty := ""
	if _, ok := (&Item{ReminderDate: &empty}).Reminder(); ok {
		t.Error("empty reminder must report not ok")
	}
}

func TestItemJSONShape(t *testing.T) {
	item := Item{ID: "i1", Name: "Passport", Category: "Documents"}
	data, err := json.Marshal(item)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	json.Unmarshal(data, &raw)

	if _, ok := raw["reminderDate"]; ok {
		t.Error("unset reminderDate must be omitted from JSON")
	}
	for _, key := range []string{"id", "name", "category", "packed"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestFindCategory(t *testing.T) {
	cat, ok := FindCategory("Electronics")
	if !ok {
		t.Fatal("Electronics category missing from taxonomy")
	}
	if len(cat.Items) == 0 {
		t.Error("expected suggested items for Electronics")
	}

	if _, ok := FindCategory("electronics"); !ok {
		t.Error("category lookup must be case-insensitive")
	}
	if _, ok := FindCategory("Snacks"); ok {
		t.Error("unknown category must not be found")
	}
}
