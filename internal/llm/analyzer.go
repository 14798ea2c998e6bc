package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anachung/itinera/internal/trip"
)

const analyzeSystemPrompt = `You are a travel itinerary assistant. The user pastes free-form text
describing a place or plan: a note, a venue name, or a Google Maps link.

Trip context:
- Trip: %s
- Day: %s (%s)
%s

Input: "%s"

Extract ONE activity from the input. Rules:
1. "title" is a short activity name (e.g. "Borough Market", "Dinner at Dishoom").
2. "description" is one or two sentences about what the activity involves.
3. "location_name" is the venue or area name. For a Google Maps link, derive it
   from the place name embedded in the URL.
4. "category" must be exactly one of: flight, food, sightseeing, transport,
   lodging, shopping, event. Pick the closest fit; default to "sightseeing".
5. "duration_minutes" is a realistic visit length in minutes. If the input gives
   no hint, use %d.
6. "price" is an approximate cost indicator like "£15" or "Free", or "" if unknown.
7. If the input names coordinates or a Maps link encodes them, include "lat" and
   "lng" as numbers; otherwise omit both.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "title": "string",
  "description": "string",
  "location_name": "string",
  "category": "string",
  "duration_minutes": number,
  "price": "string",
  "lat": number (optional),
  "lng": number (optional)
}`

// AnalyzeRequest contains the input for the activity analyzer.
type AnalyzeRequest struct {
	Input    string // free text or a Google Maps link
	TripName string
	DayLabel string // e.g., "Day 1: Arrival & Westminster"
	DayDate  string // YYYY-MM-DD
	Existing []trip.Activity
}

// AnalyzedActivity is the parsed LLM response for a single activity.
type AnalyzedActivity struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LocationName    string   `json:"location_name"`
	Category        string   `json:"category"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           string   `json:"price"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
}

// Analyzer turns free-form text into activity proposals using an LLM.
type Analyzer struct {
	client Client
}

// NewAnalyzer creates a new Analyzer with the given LLM client.
func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze converts free-form input into a single activity proposal.
func (a *Analyzer) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzedActivity, error) {
	return a.AnalyzeWithMessages(ctx, a.BuildInitialMessages(req))
}

// AnalyzeWithMessages runs the analyzer against a pre-built message history.
// Used for retry logic where error feedback is appended to the conversation.
func (a *Analyzer) AnalyzeWithMessages(ctx context.Context, messages []Message) (*AnalyzedActivity, error) {
	var resp AnalyzedActivity
	if err := a.client.ChatJSON(ctx, messages, &resp); err != nil {
		return nil, fmt.Errorf("analyzing activity: %w", err)
	}
	return &resp, nil
}

// BuildInitialMessages creates the initial message list for an analyze request.
// Exported so callers can extend the conversation for retries.
func (a *Analyzer) BuildInitialMessages(req AnalyzeRequest) []Message {
	prompt := fmt.Sprintf(analyzeSystemPrompt,
		req.TripName,
		req.DayLabel,
		req.DayDate,
		formatExistingActivities(req.Existing),
		req.Input,
		trip.AnalyzedDurationMinutes,
	)
	return []Message{
		{Role: "system", Content: prompt},
	}
}

// ToActivity converts the LLM proposal into a domain Activity.
// Invalid categories fall back to sightseeing and non-positive durations to the
// analyzer default; stricter validation is the caller's job.
func (r *AnalyzedActivity) ToActivity() trip.Activity {
	category, err := trip.ParseCategory(r.Category)
	if err != nil {
		category = trip.CategorySightseeing
	}
	duration := r.DurationMinutes
	if duration <= 0 {
		duration = trip.AnalyzedDurationMinutes
	}

	a := trip.Activity{
		Title:           strings.TrimSpace(r.Title),
		Description:     strings.TrimSpace(r.Description),
		LocationName:    strings.TrimSpace(r.LocationName),
		Category:        category,
		DurationMinutes: duration,
		Price:           strings.TrimSpace(r.Price),
	}
	if r.Lat != nil && r.Lng != nil {
		a.Coordinates = &trip.Coordinates{Lat: *r.Lat, Lng: *r.Lng}
	}
	return a
}

func formatExistingActivities(items []trip.Activity) string {
	if len(items) == 0 {
		return "- Planned so far: nothing yet"
	}

	var sb strings.Builder
	sb.WriteString("- Planned so far:\n")
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("  - %s %s [%s] at %s\n",
			it.StartTime, it.Title, it.Category, it.LocationName))
	}
	return strings.TrimRight(sb.String(), "\n")
}
