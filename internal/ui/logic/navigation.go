package logic

// NoSelection is the selected index while the highlight sits on the text
// field rather than on a suggestion
const NoSelection = -1

// Navigator handles the highlight and the visible window over the
// suggestion list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a navigator showing at most height rows
func NewNavigator(height int) *Navigator {
	if height < 1 {
		height = 1
	}
	return &Navigator{
		selectedIndex:  NoSelection,
		viewportHeight: height,
	}
}

// Reset moves the highlight back to the text field for a new list of total items
func (n *Navigator) Reset(total int) {
	n.totalItems = total
	n.selectedIndex = NoSelection
	n.viewportOffset = 0
}

// GetSelectedIndex returns the highlighted item, or NoSelection
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the index of the first visible item
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// VisibleRange returns the half-open range of item indices currently shown
func (n *Navigator) VisibleRange() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.totalItems {
		end = n.totalItems
	}
	return n.viewportOffset, end
}

// MoveDown highlights the next item, stopping at the last one
func (n *Navigator) MoveDown() {
	if n.selectedIndex < n.totalItems-1 {
		n.selectedIndex++
	}
	n.ensureSelectedVisible()
}

// MoveUp highlights the previous item; moving up from the first item
// returns the highlight to the text field
func (n *Navigator) MoveUp() {
	if n.selectedIndex > NoSelection {
		n.selectedIndex--
	}
	n.ensureSelectedVisible()
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex == NoSelection {
		n.viewportOffset = 0
		return
	}

	// If selected item is above viewport, scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// If selected item is below viewport, scroll down
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	maxOffset := n.totalItems - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
}
