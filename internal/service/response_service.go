package service

import "time"

// LibraryFilter narrows the per-user library view.
type LibraryFilter struct {
	Tag           string // case-insensitive; "" keeps everything
	IncludeHidden bool   // keep parent-only templates
}

// SelectParams identifies who selects which device.
type SelectParams struct {
	UserID   string
	DeviceID string // "null" clears the selection
}

// EventFilter supports history filtering by time range and action.
type EventFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Action string    // "", "select device"
}
