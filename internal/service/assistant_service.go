package service

import (
	"context"
	"fmt"
	"strings"

	"wayfare-sync-server/internal/ai"
	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/pkg/jsonx"

	"github.com/google/uuid"
)

type AssistantService struct {
	client ai.Client
}

func NewAssistantService(client ai.Client) *AssistantService {
	return &AssistantService{client: client}
}

// SuggestItinerary asks the text-generation collaborator for a day-by-day
// plan and extracts the structured part of its answer. Items come back with
// fresh ids so they can drop straight into a trip's itinerary and merge
// cleanly later.
func (s *AssistantService) SuggestItinerary(ctx context.Context, req *domain.SuggestItineraryRequest) (*domain.SuggestItineraryResponse, error) {
	text, err := s.client.Generate(ctx, buildItineraryPrompt(req))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Itinerary map[string][]domain.ItineraryItem `json:"itinerary"`
	}
	if err := jsonx.ExtractObject(text, &parsed); err != nil {
		return nil, fmt.Errorf("assistant returned no usable itinerary: %w", err)
	}

	for date, items := range parsed.Itinerary {
		for i := range items {
			items[i].ID = uuid.New().String()
		}
		parsed.Itinerary[date] = items
	}

	return &domain.SuggestItineraryResponse{Itinerary: parsed.Itinerary}, nil
}

func buildItineraryPrompt(req *domain.SuggestItineraryRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a trip to %s from %s to %s.\n", req.Location, req.StartDate, req.EndDate)
	if req.Pace != "" {
		fmt.Fprintf(&b, "Pace: %s.\n", req.Pace)
	}
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "Traveler interests: %s.\n", strings.Join(req.Interests, ", "))
	}

	b.WriteString(`Respond with a single JSON object of this shape, dates as YYYY-MM-DD keys:
{"itinerary":{"2025-06-01":[{"time":"09:00","title":"...","address":"...","notes":"...","category":"..."}]}}
Do not include any other text.`)

	return b.String()
}
