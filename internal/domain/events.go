package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged     EventType = "QueryChanged"
	EventTabChanged       EventType = "TabChanged"
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventIconChosen       EventType = "IconChosen"
	EventUsedListChanged  EventType = "UsedListChanged"
	EventUsedListMigrated EventType = "UsedListMigrated"
	EventColorPresetSet   EventType = "ColorPresetSet"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted when the picker query text changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// TabChangedEvent is emitted when the active tab switches
type TabChangedEvent struct {
	Tab Tab
}

func (e TabChangedEvent) Type() EventType { return EventTabChanged }

// SearchStartedEvent is emitted when a search is issued
type SearchStartedEvent struct {
	Query      string
	Tab        Tab
	Generation uint64
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a search result is applied
type SearchCompletedEvent struct {
	Query      string
	Generation uint64
	IconCount  int
	EmojiCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// IconChosenEvent is emitted when the user selects an item
type IconChosenEvent struct {
	Item IconItem
}

func (e IconChosenEvent) Type() EventType { return EventIconChosen }

// UsedListChangedEvent is emitted after the recently-used list is updated
type UsedListChangedEvent struct {
	Count int
}

func (e UsedListChangedEvent) Type() EventType { return EventUsedListChanged }

// UsedListMigratedEvent is emitted after the one-shot legacy migration
type UsedListMigratedEvent struct {
	Migrated int
}

func (e UsedListMigratedEvent) Type() EventType { return EventUsedListMigrated }

// ColorPresetSetEvent is emitted when a color preset is picked
type ColorPresetSetEvent struct {
	Preset string
}

func (e ColorPresetSetEvent) Type() EventType { return EventColorPresetSet }

// ErrorEvent is emitted when a recoverable error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
