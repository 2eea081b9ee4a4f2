// Package ics writes a minimal iCalendar (RFC 5545) document. Export is
// one-way: trips and events go out, nothing is ever read back.
package ics

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD, inclusive; empty means single day
	StartTime   string // HH:MM, empty for all-day
}

// Calendar renders the events into a VCALENDAR document. Events with
// unparseable dates are skipped rather than failing the whole export.
func Calendar(prodID string, events []Event) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	fmt.Fprintf(&b, "PRODID:%s\r\n", escape(prodID))
	b.WriteString("CALSCALE:GREGORIAN\r\n")

	stamp := time.Now().UTC().Format("20060102T150405Z")

	for _, ev := range events {
		start, err := time.Parse(dateLayout, ev.StartDate)
		if err != nil {
			continue
		}

		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:%s\r\n", escape(ev.UID))
		fmt.Fprintf(&b, "DTSTAMP:%s\r\n", stamp)

		if ev.StartTime != "" {
			if t, err := time.Parse("15:04", ev.StartTime); err == nil {
				local := time.Date(start.Year(), start.Month(), start.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
				fmt.Fprintf(&b, "DTSTART:%s\r\n", local.Format("20060102T150405Z"))
			} else {
				fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102"))
			}
		} else {
			fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102"))

			end := start
			if ev.EndDate != "" {
				if e, err := time.Parse(dateLayout, ev.EndDate); err == nil {
					end = e
				}
			}
			// DTEND is exclusive for all-day events.
			fmt.Fprintf(&b, "DTEND;VALUE=DATE:%s\r\n", end.AddDate(0, 0, 1).Format("20060102"))
		}

		fmt.Fprintf(&b, "SUMMARY:%s\r\n", escape(ev.Summary))
		if ev.Location != "" {
			fmt.Fprintf(&b, "LOCATION:%s\r\n", escape(ev.Location))
		}
		if ev.Description != "" {
			fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escape(ev.Description))
		}
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

var escaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\n", "\\n",
	"\r", "",
)

func escape(s string) string {
	return escaper.Replace(s)
}
