package service

import (
	"slices"
	"strings"

	"device_library/internal/catalog"
	"device_library/internal/models"
)

// Diagnostics receives non-fatal reconciliation warnings. *zap.SugaredLogger
// and *logger.Logger both satisfy it.
type Diagnostics interface {
	Warnw(msg string, keysAndValues ...interface{})
}

type nopDiagnostics struct{}

func (nopDiagnostics) Warnw(string, ...interface{}) {}

// Reconcile merges a discovered device list against cat.
//
// A nil raw slice means discovery failed or never ran and yields the whole
// catalog in order. Otherwise every entry yields at most one descriptor, in
// input order, with the sentinel forced to the front:
//   - an exact id match emits the catalog descriptor unchanged;
//   - an id of the form <prefix>_<base> whose base is in the catalog emits the
//     entry merged over that parent, always visible;
//   - anything else is dropped and reported once to diag.
func Reconcile(cat *catalog.Catalog, raw []models.RawDeviceEntry, diag Diagnostics) []models.DeviceDescriptor {
	if raw == nil {
		return cat.Descriptors()
	}
	if diag == nil {
		diag = nopDiagnostics{}
	}

	out := make([]models.DeviceDescriptor, 0, len(raw)+1)
	out = append(out, cat.Sentinel())

	for _, entry := range raw {
		if len(entry.TypeList) > 0 && strings.Contains(entry.DeviceID, "arduino") {
			visible := false
			entry.Hide = &visible
		}

		if d, ok := cat.Lookup(entry.DeviceID); ok {
			out = append(out, d)
			continue
		}

		parent, ok := cat.Lookup(baseDeviceID(entry.DeviceID))
		if !ok {
			diag.Warnw("device not in catalog and has no known parent",
				"device_id", entry.DeviceID,
				"base_id", baseDeviceID(entry.DeviceID),
			)
			continue
		}
		out = append(out, mergeWithParent(entry, parent))
	}
	return out
}

// baseDeviceID returns the part of id after the first "_", or id itself.
// A base id that itself contains "_" keeps its tail, e.g. "a_b_c" -> "b_c".
func baseDeviceID(id string) string {
	if _, base, ok := strings.Cut(id, "_"); ok {
		return base
	}
	return id
}

// mergeWithParent fills every field absent from entry with the parent's
// value. The result keeps the entry's id and is never hidden.
func mergeWithParent(entry models.RawDeviceEntry, parent models.DeviceDescriptor) models.DeviceDescriptor {
	d := parent.Clone()
	d.DeviceID = entry.DeviceID

	setString(&d.Name, entry.Name)
	if entry.Type != nil {
		d.Type = *entry.Type
	}
	setString(&d.Manufactor, entry.Manufactor)
	setString(&d.LearnMore, entry.LearnMore)
	setString(&d.IconURL, entry.IconURL)
	setString(&d.Description, entry.Description)
	setBool(&d.Featured, entry.Featured)
	setBool(&d.Disabled, entry.Disabled)

	setBool(&d.BluetoothRequired, entry.BluetoothRequired)
	setBool(&d.SerialportRequired, entry.SerialportRequired)
	setString(&d.DefaultBaudRate, entry.DefaultBaudRate)
	setBool(&d.InternetConnectionRequired, entry.InternetConnectionRequired)
	setBool(&d.LaunchPeripheralConnectionFlow, entry.LaunchPeripheralConnectionFlow)
	setBool(&d.UseAutoScan, entry.UseAutoScan)
	setString(&d.ConnectionIconURL, entry.ConnectionIconURL)
	setString(&d.ConnectionSmallIconURL, entry.ConnectionSmallIconURL)
	setString(&d.ConnectingMessage, entry.ConnectingMessage)

	setString(&d.BaseToolBox, entry.BaseToolBox)
	setString(&d.DeviceExtensionsCompatible, entry.DeviceExtensionsCompatible)

	setSlice(&d.ProgramMode, entry.ProgramMode)
	setSlice(&d.ProgramLanguage, entry.ProgramLanguage)
	setSlice(&d.Tags, entry.Tags)

	setString(&d.HelpLink, entry.HelpLink)
	setBool(&d.FreeDevice, entry.FreeDevice)
	setString(&d.BuyNowURL, entry.BuyNowURL)

	setSlice(&d.TypeList, entry.TypeList)
	setSlice(&d.PnpIDList, entry.PnpIDList)
	setSlice(&d.DeviceExtensions, entry.DeviceExtensions)

	d.Hide = false
	return d
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setSlice[T any](dst *[]T, v []T) {
	if v != nil {
		*dst = slices.Clone(v)
	}
}

// ReconcilerService binds Reconcile to one catalog and logger.
type ReconcilerService struct {
	catalog *catalog.Catalog
	diag    Diagnostics
}

func NewReconcilerService(cat *catalog.Catalog, diag Diagnostics) *ReconcilerService {
	return &ReconcilerService{catalog: cat, diag: diag}
}

func (s *ReconcilerService) Reconcile(raw []models.RawDeviceEntry) []models.DeviceDescriptor {
	return Reconcile(s.catalog, raw, s.diag)
}

func (s *ReconcilerService) Catalog() []models.DeviceDescriptor {
	return s.catalog.Descriptors()
}
