package ics

import (
	"strings"
	"testing"
)

func TestCalendar_TripEvent(t *testing.T) {
	out := Calendar("-//wayfare//EN", []Event{
		{
			UID:       "trip-1",
			Summary:   "Paris Trip",
			Location:  "Paris, France",
			StartDate: "2025-06-01",
			EndDate:   "2025-06-05",
		},
	})

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:trip-1",
		"SUMMARY:Paris Trip",
		"LOCATION:Paris\\, France",
		"DTSTART;VALUE=DATE:20250601",
		"DTEND;VALUE=DATE:20250606", // exclusive end
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCalendar_TimedEvent(t *testing.T) {
	out := Calendar("-//wayfare//EN", []Event{
		{
			UID:       "event-1",
			Summary:   "Dinner reservation",
			StartDate: "2025-06-02",
			StartTime: "19:30",
		},
	})

	if !strings.Contains(out, "DTSTART:20250602T193000Z") {
		t.Errorf("expected timed DTSTART, got:\n%s", out)
	}
	if strings.Contains(out, "DTEND") {
		t.Errorf("timed event must not carry an all-day DTEND:\n%s", out)
	}
}

func TestCalendar_SkipsUnparseableDates(t *testing.T) {
	out := Calendar("-//wayfare//EN", []Event{
		{UID: "bad", Summary: "broken", StartDate: "sometime"},
		{UID: "good", Summary: "fine", StartDate: "2025-06-01"},
	})

	if strings.Contains(out, "UID:bad") {
		t.Errorf("unparseable event must be skipped:\n%s", out)
	}
	if !strings.Contains(out, "UID:good") {
		t.Errorf("valid event must survive:\n%s", out)
	}
}

func TestEscape(t *testing.T) {
	got := escape("a,b;c\nd\\e")
	want := "a\\,b\\;c\\nd\\\\e"
	if got != want {
		t.Errorf("escape() = %q, want %q", got, want)
	}
}
