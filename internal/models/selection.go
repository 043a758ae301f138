package models

import "time"

// Selection is the device a user currently has selected.
type Selection struct {
	UserID    string    `json:"user_id"`
	DeviceID  string    `json:"device_id"`
	UpdatedAt time.Time `json:"updated_at"`
}
