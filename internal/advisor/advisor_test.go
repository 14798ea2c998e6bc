package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/anachung/itinera/internal/llm"
	"github.com/anachung/itinera/internal/schedule"
	"github.com/anachung/itinera/internal/trip"
)

// scriptedClient replays a sequence of responses, one per call.
type scriptedClient struct {
	responses []string
	err       error
	calls     int
	histories [][]llm.Message
}

func (s *scriptedClient) Chat(_ context.Context, messages []llm.Message) (string, error) {
	s.histories = append(s.histories, messages)
	if s.err != nil {
		return "", s.err
	}
	resp := s.responses[min(s.calls, len(s.responses)-1)]
	s.calls++
	return resp, nil
}

func (s *scriptedClient) ChatJSON(_ context.Context, messages []llm.Message, result any) error {
	resp, err := s.Chat(context.Background(), messages)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(resp), result)
}

// memoryRepo records ReplaceDayActivities calls.
type memoryRepo struct {
	replaced map[string][]trip.Activity
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{replaced: make(map[string][]trip.Activity)}
}

func (m *memoryRepo) LoadTrip(context.Context) ([]trip.DaySchedule, error) { return nil, nil }
func (m *memoryRepo) CreateDay(context.Context, trip.DaySchedule) error    { return nil }
func (m *memoryRepo) ReplaceDayActivities(_ context.Context, date string, items []trip.Activity) error {
	m.replaced[date] = items
	return nil
}
func (m *memoryRepo) ListPackingItems(context.Context) ([]trip.PackingItem, error) { return nil, nil }
func (m *memoryRepo) AddPackingItem(context.Context, trip.PackingItem) error       { return nil }
func (m *memoryRepo) TogglePackingItem(context.Context, string) error              { return nil }
func (m *memoryRepo) DeletePackingItem(context.Context, string) error              { return nil }
func (m *memoryRepo) Close() error                                                 { return nil }

func newTestAdvisor(client llm.Client, repo trip.Repository) (*Advisor, *schedule.Engine) {
	start, _ := trip.NewActivity("Westminster Abbey", "", "Westminster", trip.CategorySightseeing, 90)
	start.StartTime = "09:00"

	t := trip.New("Winter in London", "2025-12-13", "2025-12-14", []trip.DaySchedule{
		{
			Date:       "2025-12-13",
			Label:      "Day 1: Arrival",
			Activities: []trip.Activity{start},
		},
		{
			Date:  "2025-12-14",
			Label: "Day 2: Markets",
		},
	})
	engine := schedule.NewEngine(t)
	return New(client, engine, repo), engine
}

const validProposal = `{
	"title": "Borough Market",
	"description": "Historic food market.",
	"location_name": "Southwark",
	"category": "food",
	"duration_minutes": 75,
	"price": "Free"
}`

func TestAddFromText(t *testing.T) {
	client := &scriptedClient{responses: []string{validProposal}}
	repo := newMemoryRepo()
	advisor, engine := newTestAdvisor(client, repo)

	added, err := advisor.AddFromText(context.Background(), "borough market")
	if err != nil {
		t.Fatalf("AddFromText failed: %v", err)
	}

	if added.Title != "Borough Market" {
		t.Errorf("Title = %q", added.Title)
	}
	if added.ID == "" {
		t.Error("expected an id to be assigned")
	}
	// Appended after the 90-minute first activity anchored at 09:00
	if added.StartTime != "10:30" {
		t.Errorf("StartTime = %q, want 10:30", added.StartTime)
	}

	day := engine.ActiveDay()
	if len(day.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(day.Activities))
	}

	// Day persisted through the repository
	persisted, ok := repo.replaced["2025-12-13"]
	if !ok {
		t.Fatal("expected day to be persisted")
	}
	if len(persisted) != 2 {
		t.Errorf("persisted %d activities, want 2", len(persisted))
	}
}

func TestAddFromText_RetriesWithFeedback(t *testing.T) {
	invalid := `{"title": "", "category": "nope", "duration_minutes": 0}`
	client := &scriptedClient{responses: []string{invalid, validProposal}}
	advisor, engine := newTestAdvisor(client, nil)

	added, err := advisor.AddFromText(context.Background(), "borough market")
	if err != nil {
		t.Fatalf("AddFromText failed: %v", err)
	}
	if added.Title != "Borough Market" {
		t.Errorf("Title = %q", added.Title)
	}
	if client.calls != 2 {
		t.Errorf("expected 2 LLM calls, got %d", client.calls)
	}

	// The retry conversation must include the validation feedback
	retryMsgs := client.histories[1]
	last := retryMsgs[len(retryMsgs)-1]
	if last.Role != "user" || !strings.Contains(last.Content, "errors") {
		t.Errorf("expected error feedback in retry, got %+v", last)
	}

	if len(engine.ActiveDay().Activities) != 2 {
		t.Errorf("expected activity added after retry")
	}
}

func TestAddFromText_RejectedAfterRetries(t *testing.T) {
	invalid := `{"title": "", "category": "nope", "duration_minutes": 0}`
	client := &scriptedClient{responses: []string{invalid, invalid}}
	advisor, engine := newTestAdvisor(client, nil)

	_, err := advisor.AddFromText(context.Background(), "gibberish")
	if err == nil {
		t.Fatal("expected error when validation keeps failing")
	}
	if client.calls != 2 {
		t.Errorf("expected 2 LLM calls, got %d", client.calls)
	}
	if len(engine.ActiveDay().Activities) != 1 {
		t.Errorf("day must be untouched on rejection")
	}
}

func TestAddFromText_ClientError(t *testing.T) {
	client := &scriptedClient{err: errors.New("connection refused")}
	advisor, _ := newTestAdvisor(client, nil)

	_, err := advisor.AddFromText(context.Background(), "borough market")
	if err == nil {
		t.Fatal("expected error from failing client")
	}
}

func TestAsk(t *testing.T) {
	client := &scriptedClient{responses: []string{"Bring a warm coat."}}
	advisor, _ := newTestAdvisor(client, nil)

	answer, err := advisor.Ask(context.Background(), "what should I pack?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "Bring a warm coat." {
		t.Errorf("answer = %q", answer)
	}

	// The prompt must be grounded on the itinerary digest
	system := client.histories[0][0]
	if !strings.Contains(system.Content, "Westminster Abbey") {
		t.Error("expected itinerary digest in system prompt")
	}
}

func TestAlternatives(t *testing.T) {
	client := &scriptedClient{responses: []string{`{
		"alternatives": [
			{"title": "Natural History Museum", "category": "sightseeing",
			 "duration_minutes": 120, "reason": "indoor option if it rains"}
		]
	}`}}
	advisor, _ := newTestAdvisor(client, nil)

	alts, err := advisor.Alternatives(context.Background(), 1)
	if err != nil {
		t.Fatalf("Alternatives failed: %v", err)
	}
	if len(alts) != 1 {
		t.Fatalf("expected 1 alternative, got %d", len(alts))
	}
	if alts[0].Reason == "" {
		t.Error("expected a reason")
	}
}

func TestAdvisor_NoActiveDay(t *testing.T) {
	engine := schedule.NewEngine(trip.New("Empty", "2025-12-13", "2025-12-13", nil))
	advisor := New(&scriptedClient{responses: []string{validProposal}}, engine, nil)

	if _, err := advisor.AddFromText(context.Background(), "x"); !errors.Is(err, ErrNoActiveDay) {
		t.Errorf("AddFromText error = %v, want %v", err, ErrNoActiveDay)
	}
	if _, err := advisor.Alternatives(context.Background(), 0); !errors.Is(err, ErrNoActiveDay) {
		t.Errorf("Alternatives error = %v, want %v", err, ErrNoActiveDay)
	}
}
