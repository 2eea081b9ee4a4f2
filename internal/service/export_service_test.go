package service

import (
	"strings"
	"testing"

	"wayfare-sync-server/internal/domain"
)

func TestExportService_Calendar(t *testing.T) {
	service := NewExportService()

	req := &domain.ExportCalendarRequest{
		Trips: []domain.Trip{
			{
				ID:        "trip-1",
				Title:     "Lisbon; spring",
				Location:  "Lisbon, Portugal",
				StartDate: "2026-04-10",
				EndDate:   "2026-04-14",
			},
		},
		Events: []domain.CustomEvent{
			{
				ID:    "ev-1",
				Title: "Visa appointment",
				Date:  "2026-03-02",
				Time:  "09:30",
			},
		},
	}

	cal := service.Calendar(req)

	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"END:VCALENDAR\r\n",
		"UID:trip-trip-1@wayfare",
		"SUMMARY:Lisbon\\; spring",
		"LOCATION:Lisbon\\, Portugal",
		"DTSTART;VALUE=DATE:20260410",
		// all-day DTEND is exclusive, so the 14th becomes the 15th
		"DTEND;VALUE=DATE:20260415",
		"UID:event-ev-1@wayfare",
		"DTSTART:20260302T093000Z",
	} {
		if !strings.Contains(cal, want) {
			t.Errorf("Calendar() missing %q", want)
		}
	}

	if got := strings.Count(cal, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("Calendar() event count = %d, want 2", got)
	}
}

func TestExportService_CalendarSkipsBadDates(t *testing.T) {
	service := NewExportService()

	cal := service.Calendar(&domain.ExportCalendarRequest{
		Trips: []domain.Trip{
			{ID: "ok", Title: "Good", StartDate: "2026-05-01", EndDate: "2026-05-03"},
			{ID: "bad", Title: "Broken", StartDate: "sometime in May"},
		},
	})

	if got := strings.Count(cal, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("Calendar() event count = %d, want 1", got)
	}
	if strings.Contains(cal, "Broken") {
		t.Error("Calendar() should skip events with unparseable dates")
	}
}
