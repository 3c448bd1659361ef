package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryApplied   EventType = "QueryApplied"
	EventPersonSelected EventType = "PersonSelected"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventDataLoaded     EventType = "DataLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryAppliedEvent is emitted when a debounced query reaches the filter
type QueryAppliedEvent struct {
	Query   string
	Matches int
}

func (e QueryAppliedEvent) Type() EventType { return EventQueryApplied }

// PersonSelectedEvent is emitted when the user confirms a suggestion
type PersonSelectedEvent struct {
	Person Person
}

func (e PersonSelectedEvent) Type() EventType { return EventPersonSelected }

// ConfigLoadedEvent is emitted after configuration has been read
type ConfigLoadedEvent struct {
	Path    string
	DelayMs int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// DataLoadedEvent is emitted once the people directory is available
type DataLoadedEvent struct {
	Source string // file path, or "" for the built-in dataset
	Count  int
}

func (e DataLoadedEvent) Type() EventType { return EventDataLoaded }
