package models

// Entitlement is what a user may use beyond the free devices.
type Entitlement struct {
	UserID             string   `json:"user_id"`
	PurchasedDeviceIDs []string `json:"purchased_device_ids"`
	SubscriptionActive bool     `json:"subscription_active"`
}

// Owns reports whether deviceID was purchased by the user.
func (e Entitlement) Owns(deviceID string) bool {
	for _, id := range e.PurchasedDeviceIDs {
		if id == deviceID {
			return true
		}
	}
	return false
}

// LibraryItem is a reconciled device annotated for one user.
type LibraryItem struct {
	DeviceDescriptor
	Available bool `json:"available"`
}

// Annotate marks d as available when it is free, covered by the
// subscription, or purchased.
func (e Entitlement) Annotate(d DeviceDescriptor) LibraryItem {
	return LibraryItem{
		DeviceDescriptor: d,
		Available:        d.FreeDevice || e.SubscriptionActive || e.Owns(d.DeviceID),
	}
}
