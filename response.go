package device_library

import "device_library/internal/models"

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error" example:"device: not found"`
}

// StatusResponse answers the health check.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// CatalogResponse lists the static catalog.
type CatalogResponse struct {
	Count   int                       `json:"count"`
	Devices []models.DeviceDescriptor `json:"devices"`
}

// DevicesResponse lists the reconciled devices annotated for one user.
type DevicesResponse struct {
	Count   int                  `json:"count"`
	Devices []models.LibraryItem `json:"devices"`
}

// SelectRequest is the body of POST /api/v1/devices/select.
type SelectRequest struct {
	UserID   string `json:"user_id" binding:"required" example:"42"`
	DeviceID string `json:"device_id" binding:"required" example:"arduinoUno"`
}

// EventsResponse lists analytics events.
type EventsResponse struct {
	Count  int                  `json:"count"`
	Events []models.DeviceEvent `json:"events"`
}
