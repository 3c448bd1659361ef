package autocomplete

import "peoplepicker/internal/domain"

// applyQueryMsg is delivered when a debounce timer expires. Only the
// message carrying the latest sequence number is applied.
type applyQueryMsg struct {
	seq   int
	query string
}

// SelectedMsg is emitted after a suggestion has been chosen and the
// selection callback has run
type SelectedMsg struct {
	Person domain.Person
}

// QueryAppliedMsg is emitted whenever the filter query changes
type QueryAppliedMsg struct {
	Query   string
	Matches int
}
