package llm

import (
	"context"
	"fmt"
)

const assistantSystemPrompt = `You are a friendly, knowledgeable travel assistant for a trip called "%s".

The traveler's current itinerary:
%s

Answer questions about the trip: timing, logistics, what to wear, nearby food,
how to get between places, and local tips. Keep answers short and practical.
If a question cannot be answered from the itinerary alone, use general travel
knowledge but say when you are unsure.`

// Assistant answers free-form questions about a trip.
type Assistant struct {
	client Client
}

// NewAssistant creates a new Assistant with the given LLM client.
func NewAssistant(client Client) *Assistant {
	return &Assistant{client: client}
}

// Ask answers a question about the trip. itinerary is a plain-text digest of
// the current schedule used as grounding context.
func (a *Assistant) Ask(ctx context.Context, tripName, itinerary, question string) (string, error) {
	messages := []Message{
		{Role: "system", Content: fmt.Sprintf(assistantSystemPrompt, tripName, itinerary)},
		{Role: "user", Content: question},
	}

	answer, err := a.client.Chat(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("asking assistant: %w", err)
	}
	return answer, nil
}
