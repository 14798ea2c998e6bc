package trip

import "github.com/google/uuid"

// PackingItem is one entry in the trip checklist. The packing list has no
// scheduling behavior; it is a plain toggle list.
type PackingItem struct {
	ID      string
	Text    string
	Checked bool
}

// NewPackingItem creates a checklist entry with a fresh id.
func NewPackingItem(text string) PackingItem {
	return PackingItem{ID: uuid.NewString(), Text: text}
}
