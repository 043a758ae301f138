package service

import "errors"

var (
	ErrDeviceNotFound    = errors.New("device: not found")
	ErrDeviceDisabled    = errors.New("device: disabled")
	ErrDeviceUnavailable = errors.New("device: not available for user")
	ErrDeviceLoad        = errors.New("device: load failed")
	ErrInvalidUser       = errors.New("user id is required")
	ErrInvalidTimeRange  = errors.New("invalid time range: From must be <= To")
)
