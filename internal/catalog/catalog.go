// Package catalog holds the static, ordered list of supported boards.
//
// A Catalog is built once at startup and never changes afterwards, so it can
// be shared between goroutines without locking. Every accessor returns deep
// copies; callers cannot reach the catalog's own slices.
package catalog

import (
	"fmt"

	"device_library/internal/models"
)

// Catalog is an immutable, ordered set of device descriptors keyed by id.
// Index 0 is always the unselect entry.
type Catalog struct {
	devices []models.DeviceDescriptor
	index   map[string]int
}

// New validates descriptors and freezes them into a Catalog.
func New(descriptors []models.DeviceDescriptor) (*Catalog, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%w: no descriptors", ErrInvalidCatalog)
	}
	if descriptors[0].DeviceID != models.UnselectDeviceID {
		return nil, fmt.Errorf("%w: first descriptor must be %q, got %q",
			ErrInvalidCatalog, models.UnselectDeviceID, descriptors[0].DeviceID)
	}

	c := &Catalog{
		devices: make([]models.DeviceDescriptor, 0, len(descriptors)),
		index:   make(map[string]int, len(descriptors)),
	}
	for i, d := range descriptors {
		if err := validateDescriptor(d); err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
		if prev, ok := c.index[d.DeviceID]; ok {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateDevice, d.DeviceID, prev, i)
		}
		c.index[d.DeviceID] = i
		c.devices = append(c.devices, d.Clone())
	}
	return c, nil
}

// Default builds the catalog from the built-in table.
func Default() *Catalog {
	c, err := New(Builtin())
	if err != nil {
		panic(fmt.Sprintf("built-in device catalog: %v", err))
	}
	return c
}

func validateDescriptor(d models.DeviceDescriptor) error {
	if d.DeviceID == "" {
		return fmt.Errorf("%w: empty device id", ErrInvalidCatalog)
	}
	for _, m := range d.ProgramMode {
		if !m.Valid() {
			return fmt.Errorf("%w: %s: unknown program mode %q", ErrInvalidCatalog, d.DeviceID, m)
		}
	}
	for _, l := range d.ProgramLanguage {
		if !l.Valid() {
			return fmt.Errorf("%w: %s: unknown program language %q", ErrInvalidCatalog, d.DeviceID, l)
		}
	}
	return nil
}

// Descriptors returns the catalog in its defined order.
func (c *Catalog) Descriptors() []models.DeviceDescriptor {
	out := make([]models.DeviceDescriptor, len(c.devices))
	for i, d := range c.devices {
		out[i] = d.Clone()
	}
	return out
}

// Sentinel returns the unselect entry.
func (c *Catalog) Sentinel() models.DeviceDescriptor {
	return c.devices[0].Clone()
}

// Lookup finds a descriptor by exact device id.
func (c *Catalog) Lookup(id string) (models.DeviceDescriptor, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.DeviceDescriptor{}, false
	}
	return c.devices[i].Clone(), true
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	return len(c.devices)
}
