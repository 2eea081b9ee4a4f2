package merge

import (
	"testing"

	"wayfare-sync-server/internal/domain"
)

func TestSnapshot_DisjointTripsBothSurvive(t *testing.T) {
	local := domain.Snapshot{Trips: []domain.Trip{{ID: "a", Title: "Andes"}}}
	remote := domain.Snapshot{Trips: []domain.Trip{{ID: "b", Title: "Bali"}}}

	got := Snapshot(local, remote, nil)
	if len(got.Trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(got.Trips))
	}
	if got.Trips[0].ID != "b" || got.Trips[1].ID != "a" {
		t.Errorf("expected remote-origin first [b a], got [%s %s]", got.Trips[0].ID, got.Trips[1].ID)
	}
	if got.Trips[0].Title != "Bali" || got.Trips[1].Title != "Andes" {
		t.Errorf("one-sided trips must pass through unchanged: %+v", got.Trips)
	}
}

func TestSnapshot_SharedTripMergedWithResolution(t *testing.T) {
	local := domain.Snapshot{Trips: []domain.Trip{
		{ID: "1", Title: "Paris Trip", Photos: []domain.Photo{{ID: "p1"}}},
	}}
	remote := domain.Snapshot{Trips: []domain.Trip{
		{ID: "1", Title: "Paris", Photos: []domain.Photo{{ID: "p2"}}},
	}}

	got := Snapshot(local, remote, map[string]domain.Resolution{"1": domain.ResolutionLocal})
	if len(got.Trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(got.Trips))
	}
	trip := got.Trips[0]
	if trip.Title != "Paris Trip" {
		t.Errorf("expected local scalars, got title %q", trip.Title)
	}
	if len(trip.Photos) != 2 || trip.Photos[0].ID != "p2" || trip.Photos[1].ID != "p1" {
		t.Errorf("expected photos [p2 p1], got %+v", trip.Photos)
	}
}

func TestSnapshot_ResolutionDefaultsToLocal(t *testing.T) {
	local := domain.Snapshot{Trips: []domain.Trip{{ID: "1", Title: "local title"}}}
	remote := domain.Snapshot{Trips: []domain.Trip{{ID: "1", Title: "remote title"}}}

	got := Snapshot(local, remote, map[string]domain.Resolution{})
	if got.Trips[0].Title != "local title" {
		t.Errorf("missing resolution entry must default to local, got %q", got.Trips[0].Title)
	}
}

func TestSnapshot_CustomEventsUnion(t *testing.T) {
	local := domain.Snapshot{CustomEvents: []domain.CustomEvent{
		{ID: "e1", Title: "local edit", Date: "2025-07-01"},
	}}
	remote := domain.Snapshot{CustomEvents: []domain.CustomEvent{
		{ID: "e1", Title: "remote edit", Date: "2025-07-01"},
		{ID: "e2", Title: "dentist", Date: "2025-07-02"},
	}}

	got := Snapshot(local, remote, nil)
	if len(got.CustomEvents) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got.CustomEvents))
	}
	if got.CustomEvents[0].Title != "local edit" {
		t.Errorf("expected local event to win id collision, got %q", got.CustomEvents[0].Title)
	}
}

func TestSnapshot_ProfileLocalWinsPerField(t *testing.T) {
	local := domain.Snapshot{UserProfile: domain.UserProfile{
		DisplayName: "Alex",
	}}
	remote := domain.Snapshot{UserProfile: domain.UserProfile{
		DisplayName:  "Old Name",
		HomeCurrency: "EUR",
	}}

	got := Snapshot(local, remote, nil)
	if got.UserProfile.DisplayName != "Alex" {
		t.Errorf("local profile field must win, got %q", got.UserProfile.DisplayName)
	}
	if got.UserProfile.HomeCurrency != "EUR" {
		t.Errorf("remote must fill blank local fields, got %q", got.UserProfile.HomeCurrency)
	}
}

func TestSnapshot_Idempotent(t *testing.T) {
	snap := domain.Snapshot{
		UserProfile:  domain.UserProfile{DisplayName: "Alex"},
		CustomEvents: []domain.CustomEvent{{ID: "e1"}},
		Trips: []domain.Trip{{
			ID:     "1",
			Title:  "Paris",
			Photos: []domain.Photo{{ID: "p1"}},
		}},
	}

	got := Snapshot(snap, snap, nil)
	if len(got.Trips) != 1 || len(got.Trips[0].Photos) != 1 || len(got.CustomEvents) != 1 {
		t.Errorf("self-merge must not duplicate anything: %+v", got)
	}
	if got.Trips[0].Title != "Paris" || got.UserProfile.DisplayName != "Alex" {
		t.Errorf("self-merge must not change values: %+v", got)
	}
}
