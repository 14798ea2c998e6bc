package trip

// DaySchedule holds the ordered activities for a single calendar day.
//
// Order is the sole source of truth for timing: every StartTime is derived
// from the day anchor and the durations of the preceding activities.
type DaySchedule struct {
	Date        string // YYYY-MM-DD, unique within a trip
	Label       string // "Day 1", "Day 2"
	Theme       string // display text, not used in computation
	WeatherNote string // pre-filled forecast text, display only
	Activities  []Activity
}

// Anchor returns the day's start-of-day time: the first activity's StartTime,
// or "09:00" when the day is empty.
func (d DaySchedule) Anchor() string {
	if len(d.Activities) == 0 {
		return "09:00"
	}
	return d.Activities[0].StartTime
}

// FindActivity returns the index of the activity with the given id, or -1.
func (d DaySchedule) FindActivity(id string) int {
	for i, a := range d.Activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// CloneActivities returns a deep copy of the activity list. Mutation
// operations work on copies so stale references held by readers are never
// partially updated.
func (d DaySchedule) CloneActivities() []Activity {
	out := make([]Activity, len(d.Activities))
	for i, a := range d.Activities {
		out[i] = a.Clone()
	}
	return out
}

// TotalMinutes returns the summed effective duration of all activities.
func (d DaySchedule) TotalMinutes() int {
	total := 0
	for _, a := range d.Activities {
		total += a.EffectiveDuration()
	}
	return total
}

// EndTime returns the clock time at which the day's last activity ends,
// wrapping past midnight. Empty days end at their anchor.
func (d DaySchedule) EndTime() string {
	return FormatClock(ParseClock(d.Anchor()) + d.TotalMinutes())
}
