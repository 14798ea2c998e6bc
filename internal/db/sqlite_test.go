package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/anachung/itinera/internal/trip"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func testActivity(title string, minutes int) trip.Activity {
	a, _ := trip.NewActivity(title, "", "London", trip.CategorySightseeing, minutes)
	return a
}

func TestLoadTrip_Empty(t *testing.T) {
	repo := newTestRepo(t)

	days, err := repo.LoadTrip(context.Background())
	if err != nil {
		t.Fatalf("LoadTrip failed: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected no days, got %d", len(days))
	}
}

func TestCreateDayAndLoadTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := testActivity("St Pancras arrival", 60)
	first.StartTime = "09:00"
	second := testActivity("Hotel check-in", 45)
	second.StartTime = "10:00"
	second.Coordinates = &trip.Coordinates{Lat: 51.5007, Lng: -0.1246}

	day := trip.DaySchedule{
		Date:        "2025-12-13",
		Label:       "Day 1: Arrival",
		Theme:       "Getting settled",
		WeatherNote: "Cold, chance of rain",
		Activities:  []trip.Activity{first, second},
	}

	if err := repo.CreateDay(ctx, day); err != nil {
		t.Fatalf("CreateDay failed: %v", err)
	}

	days, err := repo.LoadTrip(ctx)
	if err != nil {
		t.Fatalf("LoadTrip failed: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}

	got := days[0]
	if got.Date != "2025-12-13" {
		t.Errorf("Date = %q, want 2025-12-13", got.Date)
	}
	if got.Label != "Day 1: Arrival" {
		t.Errorf("Label = %q", got.Label)
	}
	if got.WeatherNote != "Cold, chance of rain" {
		t.Errorf("WeatherNote = %q", got.WeatherNote)
	}
	if len(got.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(got.Activities))
	}
	if got.Activities[0].Title != "St Pancras arrival" {
		t.Errorf("activities[0].Title = %q", got.Activities[0].Title)
	}
	if got.Activities[1].Coordinates == nil {
		t.Fatal("expected coordinates on second activity")
	}
	if got.Activities[1].Coordinates.Lat != 51.5007 {
		t.Errorf("Lat = %v, want 51.5007", got.Activities[1].Coordinates.Lat)
	}
	if got.Activities[0].Coordinates != nil {
		t.Error("first activity should have no coordinates")
	}
}

func TestCreateDay_Duplicate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	day := trip.DaySchedule{Date: "2025-12-13", Label: "Day 1"}
	if err := repo.CreateDay(ctx, day); err != nil {
		t.Fatalf("CreateDay failed: %v", err)
	}

	if err := repo.CreateDay(ctx, day); err == nil {
		t.Fatal("expected error creating duplicate day")
	}
}

func TestLoadTrip_DaysInDateOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, date := range []string{"2025-12-15", "2025-12-13", "2025-12-14"} {
		if err := repo.CreateDay(ctx, trip.DaySchedule{Date: date, Label: "Day"}); err != nil {
			t.Fatalf("CreateDay(%s) failed: %v", date, err)
		}
	}

	days, err := repo.LoadTrip(ctx)
	if err != nil {
		t.Fatalf("LoadTrip failed: %v", err)
	}

	want := []string{"2025-12-13", "2025-12-14", "2025-12-15"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i, date := range want {
		if days[i].Date != date {
			t.Errorf("days[%d].Date = %q, want %q", i, days[i].Date, date)
		}
	}
}

func TestReplaceDayActivities(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	original := testActivity("Westminster Abbey", 90)
	day := trip.DaySchedule{
		Date:       "2025-12-14",
		Label:      "Day 2",
		Activities: []trip.Activity{original},
	}
	if err := repo.CreateDay(ctx, day); err != nil {
		t.Fatalf("CreateDay failed: %v", err)
	}

	replA := testActivity("Tower of London", 120)
	replA.StartTime = "09:00"
	replB := testActivity("Borough Market", 75)
	replB.StartTime = "11:00"
	replC := testActivity("Tate Modern", 90)
	replC.StartTime = "12:15"

	err := repo.ReplaceDayActivities(ctx, "2025-12-14", []trip.Activity{replA, replB, replC})
	if err != nil {
		t.Fatalf("ReplaceDayActivities failed: %v", err)
	}

	days, err := repo.LoadTrip(ctx)
	if err != nil {
		t.Fatalf("LoadTrip failed: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	got := days[0].Activities
	if len(got) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(got))
	}

	// Old activity gone, order preserved
	wantTitles := []string{"Tower of London", "Borough Market", "Tate Modern"}
	for i, title := range wantTitles {
		if got[i].Title != title {
			t.Errorf("activities[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestReplaceDayActivities_EmptyList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	day := trip.DaySchedule{
		Date:       "2025-12-14",
		Label:      "Day 2",
		Activities: []trip.Activity{testActivity("Westminster Abbey", 90)},
	}
	if err := repo.CreateDay(ctx, day); err != nil {
		t.Fatalf("CreateDay failed: %v", err)
	}

	if err := repo.ReplaceDayActivities(ctx, "2025-12-14", nil); err != nil {
		t.Fatalf("ReplaceDayActivities failed: %v", err)
	}

	days, err := repo.LoadTrip(ctx)
	if err != nil {
		t.Fatalf("LoadTrip failed: %v", err)
	}
	if len(days[0].Activities) != 0 {
		t.Errorf("expected empty day, got %d activities", len(days[0].Activities))
	}
}

func TestReplaceDayActivities_UnknownDay(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.ReplaceDayActivities(context.Background(), "2025-12-25", nil)
	if err == nil {
		t.Fatal("expected error for unknown day")
	}
	if !errors.Is(err, trip.ErrDayNotFound) {
		t.Errorf("got error %v, want %v", err, trip.ErrDayNotFound)
	}
}

func TestPackingItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	coat := trip.NewPackingItem("Warm coat")
	adapter := trip.NewPackingItem("UK plug adapter")

	if err := repo.AddPackingItem(ctx, coat); err != nil {
		t.Fatalf("AddPackingItem failed: %v", err)
	}
	if err := repo.AddPackingItem(ctx, adapter); err != nil {
		t.Fatalf("AddPackingItem failed: %v", err)
	}

	items, err := repo.ListPackingItems(ctx)
	if err != nil {
		t.Fatalf("ListPackingItems failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Text != "Warm coat" || items[1].Text != "UK plug adapter" {
		t.Errorf("insertion order not preserved: %+v", items)
	}
	if items[0].Checked {
		t.Error("new items should start unchecked")
	}

	// Toggle on, then off
	if err := repo.TogglePackingItem(ctx, coat.ID); err != nil {
		t.Fatalf("TogglePackingItem failed: %v", err)
	}
	items, _ = repo.ListPackingItems(ctx)
	if !items[0].Checked {
		t.Error("expected item to be checked after toggle")
	}

	if err := repo.TogglePackingItem(ctx, coat.ID); err != nil {
		t.Fatalf("TogglePackingItem failed: %v", err)
	}
	items, _ = repo.ListPackingItems(ctx)
	if items[0].Checked {
		t.Error("expected item to be unchecked after second toggle")
	}

	// Delete
	if err := repo.DeletePackingItem(ctx, coat.ID); err != nil {
		t.Fatalf("DeletePackingItem failed: %v", err)
	}
	items, _ = repo.ListPackingItems(ctx)
	if len(items) != 1 {
		t.Fatalf("expected 1 item after delete, got %d", len(items))
	}
	if items[0].ID != adapter.ID {
		t.Errorf("wrong item deleted")
	}
}

func TestTogglePackingItem_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.TogglePackingItem(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown packing item")
	}
}

func TestDeletePackingItem_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.DeletePackingItem(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown packing item")
	}
}
