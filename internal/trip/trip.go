package trip

// Trip is the full itinerary: one DaySchedule per calendar day, ordered by
// date, plus the index of the day currently being viewed or edited.
//
// The day list is fixed at trip-definition time; mutation operations replace
// a day's activity list wholesale rather than editing it in place.
type Trip struct {
	Name      string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Days      []DaySchedule

	activeDay int
}

// New creates a Trip over the given days.
func New(name, startDate, endDate string, days []DaySchedule) *Trip {
	return &Trip{
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
	}
}

// ActiveDayIndex returns the index of the active day.
func (t *Trip) ActiveDayIndex() int {
	return t.activeDay
}

// SelectDay sets the active day. Out-of-range indexes are ignored.
// Switching days never triggers recomputation: each day's times are
// independent and were already consistent when last mutated.
func (t *Trip) SelectDay(index int) {
	if index < 0 || index >= len(t.Days) {
		return
	}
	t.activeDay = index
}

// ActiveDay returns the active day, or nil if the trip has no days.
func (t *Trip) ActiveDay() *DaySchedule {
	if len(t.Days) == 0 {
		return nil
	}
	return &t.Days[t.activeDay]
}

// DayByDate returns the day with the given date, or nil.
func (t *Trip) DayByDate(date string) *DaySchedule {
	for i := range t.Days {
		if t.Days[i].Date == date {
			return &t.Days[i]
		}
	}
	return nil
}

// ReplaceActivities installs a new activity list for the day at index,
// replacing the old list atomically.
func (t *Trip) ReplaceActivities(index int, items []Activity) {
	if index < 0 || index >= len(t.Days) {
		return
	}
	t.Days[index].Activities = items
}
