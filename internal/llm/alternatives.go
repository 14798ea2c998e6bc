package llm

import (
	"context"
	"fmt"

	"github.com/anachung/itinera/internal/trip"
)

const alternativesSystemPrompt = `You are a travel itinerary assistant for a trip called "%s".

The traveler's plan for %s (%s):
%s

Suggest %d alternative activities for this day: backups for bad weather, quieter
options if venues are crowded, or nearby things worth swapping in. Each
alternative should be a realistic replacement for part of the day, not a whole
new itinerary.

Rules:
1. "category" must be exactly one of: flight, food, sightseeing, transport,
   lodging, shopping, event.
2. "duration_minutes" is a realistic visit length in minutes.
3. "reason" explains in one sentence when the traveler would prefer this
   alternative (e.g. "indoor option if it rains").
4. Do not repeat activities already in the plan.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "alternatives": [
    {
      "title": "string",
      "description": "string",
      "location_name": "string",
      "category": "string",
      "duration_minutes": number,
      "price": "string",
      "reason": "string"
    }
  ]
}`

// defaultAlternativeCount is how many suggestions to request per day.
const defaultAlternativeCount = 3

// Alternative is a suggested swap-in activity for a day.
type Alternative struct {
	AnalyzedActivity
	Reason string `json:"reason"`
}

// AlternativesResponse is the parsed LLM response.
type AlternativesResponse struct {
	Alternatives []Alternative `json:"alternatives"`
}

// AlternativesRequest contains the input for alternative plan generation.
type AlternativesRequest struct {
	TripName string
	DayLabel string
	DayDate  string
	Existing []trip.Activity
	Count    int // 0 means default
}

// SuggestAlternatives asks the LLM for backup activities for a day.
func (a *Analyzer) SuggestAlternatives(ctx context.Context, req AlternativesRequest) ([]Alternative, error) {
	count := req.Count
	if count <= 0 {
		count = defaultAlternativeCount
	}

	prompt := fmt.Sprintf(alternativesSystemPrompt,
		req.TripName,
		req.DayLabel,
		req.DayDate,
		formatExistingActivities(req.Existing),
		count,
	)
	messages := []Message{
		{Role: "system", Content: prompt},
	}

	var resp AlternativesResponse
	if err := a.client.ChatJSON(ctx, messages, &resp); err != nil {
		return nil, fmt.Errorf("suggesting alternatives: %w", err)
	}
	return resp.Alternatives, nil
}
