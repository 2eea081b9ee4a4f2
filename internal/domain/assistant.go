package domain

type SuggestItineraryRequest struct {
	Location  string   `json:"location" validate:"required"`
	StartDate string   `json:"start_date" validate:"required"`
	EndDate   string   `json:"end_date" validate:"required"`
	Interests []string `json:"interests,omitempty"`
	Pace      string   `json:"pace,omitempty" validate:"omitempty,oneof=relaxed moderate packed"`
}

type SuggestItineraryResponse struct {
	Itinerary map[string][]ItineraryItem `json:"itinerary"`
}

type ExportCalendarRequest struct {
	Trips  []Trip        `json:"trips"`
	Events []CustomEvent `json:"events,omitempty"`
}
