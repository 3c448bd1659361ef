package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// NoResultsMessage is shown in place of the list when nothing matches
const NoResultsMessage = "No matching suggestions"

// PickerItem is one suggestion row ready for rendering
type PickerItem struct {
	Name      string
	Positions []int // rune offsets of the matched substring
	Selected  bool
}

// PickerState contains all the state needed to render the picker
type PickerState struct {
	Width int
	Input string // rendered text field
	Open  bool
	Empty bool // the applied query matched nobody
	Items []PickerItem
	Above int // matches hidden above the visible window
	Below int // matches hidden below the visible window
}

// PickerRenderer renders the text field and its suggestion dropdown.
// The text field is always the first line and each visible item takes
// exactly one line directly below it.
type PickerRenderer struct {
	styles *Styles
}

// NewPickerRenderer creates a new picker renderer
func NewPickerRenderer(styles *Styles) *PickerRenderer {
	return &PickerRenderer{styles: styles}
}

// Render produces the picker view
func (r *PickerRenderer) Render(state PickerState) string {
	var b strings.Builder
	b.WriteString(state.Input)

	if state.Empty {
		b.WriteString("\n")
		b.WriteString(r.styles.NoResults.Render(NoResultsMessage))
		return b.String()
	}

	if !state.Open {
		return b.String()
	}

	for _, item := range state.Items {
		b.WriteString("\n")
		b.WriteString(r.renderItem(item, state.Width))
	}

	if state.Above > 0 || state.Below > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more  ↓ %d more", state.Above, state.Below)))
	}

	return b.String()
}

// renderItem renders one suggestion line, truncated to width
func (r *PickerRenderer) renderItem(item PickerItem, width int) string {
	marker := "  "
	if item.Selected {
		marker = r.styles.Cursor.Render("> ")
	}

	name := item.Name
	if width > 4 {
		name = ansi.Truncate(name, width-2, "…")
	}

	return marker + r.highlight(name, item.Positions, item.Selected)
}

// highlight styles the runes at positions and the rest as a plain item
func (r *PickerRenderer) highlight(name string, positions []int, selected bool) string {
	base := r.styles.Item
	hl := r.styles.Highlight
	if selected {
		base = base.Inherit(r.styles.SelectionBg)
		hl = hl.Inherit(r.styles.SelectionBg)
	}

	if len(positions) == 0 {
		return base.Render(name)
	}

	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}

	var b strings.Builder
	var run []rune
	runMarked := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMarked {
			b.WriteString(hl.Render(string(run)))
		} else {
			b.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}

	for i, ch := range []rune(name) {
		if marked[i] != runMarked {
			flush()
			runMarked = marked[i]
		}
		run = append(run, ch)
	}
	flush()

	return b.String()
}
