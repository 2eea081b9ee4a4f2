package service

import (
	"fmt"

	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/pkg/ics"
)

const calendarProdID = "-//wayfare-sync-server//travel calendar//EN"

// ExportService turns trips and custom events into an iCalendar file. This
// is a one-way export; nothing here feeds back into the merge logic.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (s *ExportService) Calendar(req *domain.ExportCalendarRequest) string {
	events := make([]ics.Event, 0, len(req.Trips)+len(req.Events))

	for _, trip := range req.Trips {
		events = append(events, ics.Event{
			UID:         fmt.Sprintf("trip-%s@wayfare", trip.ID),
			Summary:     trip.Title,
			Description: trip.Description,
			Location:    trip.Location,
			StartDate:   trip.StartDate,
			EndDate:     trip.EndDate,
		})
	}

	for _, ev := range req.Events {
		events = append(events, ics.Event{
			UID:         fmt.Sprintf("event-%s@wayfare", ev.ID),
			Summary:     ev.Title,
			Description: ev.Description,
			StartDate:   ev.Date,
			StartTime:   ev.Time,
		})
	}

	return ics.Calendar(calendarProdID, events)
}
