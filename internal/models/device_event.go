package models

import "time"

// Analytics categories and actions recorded by the selection flow.
const (
	EventCategoryDevices = "devices"
	EventActionSelect    = "select device"
)

// DeviceEvent is a single analytics log entry.
type DeviceEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Category   string    `json:"category"` // devices
	Action     string    `json:"action"`   // select device
	Label      string    `json:"label"`    // device id
	UserID     string    `json:"user_id,omitempty"`
	Metadata   any       `json:"metadata,omitempty"`
}
