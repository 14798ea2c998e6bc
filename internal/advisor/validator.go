// Package advisor provides high-level itinerary assistance orchestration.
package advisor

import (
	"fmt"
	"strings"

	"github.com/anachung/itinera/internal/llm"
	"github.com/anachung/itinera/internal/trip"
)

// maxDurationMinutes caps a single activity at a full day.
const maxDurationMinutes = trip.MinutesPerDay

// ValidationError represents a single validation error for an analyzed activity.
type ValidationError struct {
	Field   string // "title", "category", "duration_minutes"
	Message string
}

// String returns a formatted error message.
func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains the result of validating an LLM proposal.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// FormatErrors returns a formatted string of all validation errors for LLM feedback.
func (r ValidationResult) FormatErrors() string {
	if len(r.Errors) == 0 {
		return ""
	}

	result := "Your response had these errors:\n"
	for _, e := range r.Errors {
		result += fmt.Sprintf("- %s\n", e.String())
	}
	result += "\nPlease correct these issues and respond again with valid JSON."
	return result
}

// Validate checks an analyzed activity before it is accepted into the itinerary.
// It validates:
// - Title is present
// - Category is one of the known values
// - Duration, when given, is positive and at most a full day
//
// A zero duration means the proposal omitted it; the activity picks up the
// 90-minute default when it is converted, so omission is not an error.
func Validate(a *llm.AnalyzedActivity) ValidationResult {
	result := ValidationResult{Valid: true}

	if strings.TrimSpace(a.Title) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "title",
			Message: "must not be empty",
		})
	}

	if _, err := trip.ParseCategory(a.Category); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field: "category",
			Message: fmt.Sprintf("'%s' is invalid (must be one of: %s)",
				a.Category, categoryNames()),
		})
	}

	if a.DurationMinutes < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "duration_minutes",
			Message: fmt.Sprintf("%d is invalid (must be a positive number of minutes, or omitted)", a.DurationMinutes),
		})
	} else if a.DurationMinutes > maxDurationMinutes {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "duration_minutes",
			Message: fmt.Sprintf("%d is too long (must be at most %d)", a.DurationMinutes, maxDurationMinutes),
		})
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func categoryNames() string {
	names := make([]string, len(trip.Categories))
	for i, c := range trip.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
