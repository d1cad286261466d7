package ui

import "iconpick/internal/search"

// searchDebounceMsg fires when the debounce window after a query edit
// elapses; stale generations are ignored.
type searchDebounceMsg struct {
	generation uint64
}

// searchResultMsg carries a completed search back to the update loop.
// Only the result matching the latest generation is applied.
type searchResultMsg struct {
	generation uint64
	result     search.Result
}
