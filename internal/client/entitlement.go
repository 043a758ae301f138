package client

import (
	"context"
	"net/http"
	"net/url"

	"device_library/internal/logger"
	"device_library/internal/models"
)

// EntitlementClient fetches purchased kits from the user API.
type EntitlementClient struct {
	c *jsonClient
}

func NewEntitlementClient(opts Options, log *logger.Logger) (*EntitlementClient, error) {
	c, err := newJSONClient(opts, log)
	if err != nil {
		return nil, err
	}
	return &EntitlementClient{c: c}, nil
}

type kitRef struct {
	KitExternalID string `json:"kit_external_id"`
}

type kitsResponse struct {
	Kits               []kitRef `json:"kit_external_id"`
	SubscriptionActive bool     `json:"subscription_active"`
}

// Fetch returns the device ids userID has purchased.
func (e *EntitlementClient) Fetch(ctx context.Context, userID string) (models.Entitlement, error) {
	var out kitsResponse
	path := "/api/user/" + url.PathEscape(userID) + "/kits"
	if err := e.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return models.Entitlement{}, err
	}

	ent := models.Entitlement{
		UserID:             userID,
		PurchasedDeviceIDs: make([]string, 0, len(out.Kits)),
		SubscriptionActive: out.SubscriptionActive,
	}
	for _, k := range out.Kits {
		if k.KitExternalID != "" {
			ent.PurchasedDeviceIDs = append(ent.PurchasedDeviceIDs, k.KitExternalID)
		}
	}
	return ent, nil
}
