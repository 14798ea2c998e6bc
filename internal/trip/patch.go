package trip

// Patch is a partial field update for an activity. Nil fields are left
// untouched by Apply.
//
// StartTime is patchable so the user can re-anchor a day by editing its
// first activity; recomputation runs after the merge, so the edited value
// only sticks on the first activity (later activities are overwritten by
// the chain).
type Patch struct {
	Title        *string
	Description  *string
	LocationName *string
	Category     *Category
	StartTime    *string
	Duration     *int
	Notes        *string
	Price        *string
}

// Apply merges the patch into a copy of the activity and returns it.
// Invalid values are skipped rather than failing the edit: an unknown
// category or non-positive duration leaves the existing field alone.
func (p Patch) Apply(a Activity) Activity {
	out := a.Clone()
	if p.Title != nil && *p.Title != "" {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.LocationName != nil {
		out.LocationName = *p.LocationName
	}
	if p.Category != nil && p.Category.Valid() {
		out.Category = *p.Category
	}
	if p.StartTime != nil {
		out.StartTime = *p.StartTime
	}
	if p.Duration != nil && *p.Duration > 0 {
		out.DurationMinutes = *p.Duration
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	return out
}

// String returns a pointer to s, for building patches.
func String(s string) *string { return &s }

// Int returns a pointer to n, for building patches.
func Int(n int) *int { return &n }

// CategoryPtr returns a pointer to c, for building patches.
func CategoryPtr(c Category) *Category { return &c }
