package models

import (
	"slices"
	"strings"
)

// DeviceType is the board family tag. Classification only.
type DeviceType string

const (
	DeviceTypeArduino  DeviceType = "arduino"
	DeviceTypeMicrobit DeviceType = "microbit"
)

// ProgramMode is an execution mode supported by a board.
type ProgramMode string

const (
	ProgramModeRealtime ProgramMode = "realtime"
	ProgramModeUpload   ProgramMode = "upload"
)

// Valid reports whether m is one of the known program modes.
func (m ProgramMode) Valid() bool {
	return m == ProgramModeRealtime || m == ProgramModeUpload
}

// ProgramLanguage is a language target supported by a board.
type ProgramLanguage string

const (
	ProgramLanguageBlock       ProgramLanguage = "block"
	ProgramLanguageC           ProgramLanguage = "c"
	ProgramLanguageCpp         ProgramLanguage = "cpp"
	ProgramLanguageMicroPython ProgramLanguage = "microPython"
)

// Valid reports whether l is one of the known program languages.
func (l ProgramLanguage) Valid() bool {
	switch l {
	case ProgramLanguageBlock, ProgramLanguageC, ProgramLanguageCpp, ProgramLanguageMicroPython:
		return true
	}
	return false
}

// UnselectDeviceID is the id of the "no device selected" catalog entry.
const UnselectDeviceID = "null"

// DeviceDescriptor describes one supported board. Field names on the wire
// match the VM's device list so raw entries and descriptors share a shape.
type DeviceDescriptor struct {
	DeviceID   string     `json:"deviceId" yaml:"deviceId"`
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Type       DeviceType `json:"type,omitempty" yaml:"type,omitempty"`
	Manufactor string     `json:"manufactor,omitempty" yaml:"manufactor,omitempty"`
	LearnMore  string     `json:"learnMore,omitempty" yaml:"learnMore,omitempty"`
	IconURL    string     `json:"iconURL,omitempty" yaml:"iconURL,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Featured    bool   `json:"featured" yaml:"featured"`
	Disabled    bool   `json:"disabled" yaml:"disabled"`
	Hide        bool   `json:"hide" yaml:"hide"`

	BluetoothRequired              bool   `json:"bluetoothRequired" yaml:"bluetoothRequired"`
	SerialportRequired             bool   `json:"serialportRequired" yaml:"serialportRequired"`
	DefaultBaudRate                string `json:"defaultBaudRate,omitempty" yaml:"defaultBaudRate,omitempty"`
	InternetConnectionRequired     bool   `json:"internetConnectionRequired" yaml:"internetConnectionRequired"`
	LaunchPeripheralConnectionFlow bool   `json:"launchPeripheralConnectionFlow" yaml:"launchPeripheralConnectionFlow"`
	UseAutoScan                    bool   `json:"useAutoScan" yaml:"useAutoScan"`
	ConnectionIconURL              string `json:"connectionIconURL,omitempty" yaml:"connectionIconURL,omitempty"`
	ConnectionSmallIconURL         string `json:"connectionSmallIconURL,omitempty" yaml:"connectionSmallIconURL,omitempty"`
	ConnectingMessage              string `json:"connectingMessage,omitempty" yaml:"connectingMessage,omitempty"`

	BaseToolBox                string `json:"baseToolBox,omitempty" yaml:"baseToolBox,omitempty"` // arduino | microbit
	DeviceExtensionsCompatible string `json:"deviceExtensionsCompatible,omitempty" yaml:"deviceExtensionsCompatible,omitempty"`

	ProgramMode     []ProgramMode     `json:"programMode,omitempty" yaml:"programMode,omitempty"`
	ProgramLanguage []ProgramLanguage `json:"programLanguage,omitempty" yaml:"programLanguage,omitempty"`
	Tags            []string          `json:"tags,omitempty" yaml:"tags,omitempty"`

	HelpLink   string `json:"helpLink,omitempty" yaml:"helpLink,omitempty"`
	FreeDevice bool   `json:"freeDevice" yaml:"freeDevice"`
	BuyNowURL  string `json:"buyNowUrl,omitempty" yaml:"buyNowUrl,omitempty"`

	// Loading metadata, normally only present on devices reported by the VM.
	TypeList         []string `json:"typeList,omitempty" yaml:"typeList,omitempty"`
	PnpIDList        []string `json:"pnpidList,omitempty" yaml:"pnpidList,omitempty"`
	DeviceExtensions []string `json:"deviceExtensions,omitempty" yaml:"deviceExtensions,omitempty"`
}

// Clone returns a copy of d that shares no slices with it.
func (d DeviceDescriptor) Clone() DeviceDescriptor {
	d.ProgramMode = slices.Clone(d.ProgramMode)
	d.ProgramLanguage = slices.Clone(d.ProgramLanguage)
	d.Tags = slices.Clone(d.Tags)
	d.TypeList = slices.Clone(d.TypeList)
	d.PnpIDList = slices.Clone(d.PnpIDList)
	d.DeviceExtensions = slices.Clone(d.DeviceExtensions)
	return d
}

// IsUnselect reports whether d is the "unselect device" entry.
func (d DeviceDescriptor) IsUnselect() bool {
	return d.DeviceID == UnselectDeviceID
}

// HasTag reports whether d carries tag, ignoring case.
func (d DeviceDescriptor) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// RawDeviceEntry is one device as reported by the VM. A nil pointer or nil
// slice means the field was not sent; anything else is an explicit value.
type RawDeviceEntry struct {
	DeviceID string   `json:"deviceId"`
	TypeList []string `json:"typeList,omitempty"`

	Name        *string     `json:"name,omitempty"`
	Type        *DeviceType `json:"type,omitempty"`
	Manufactor  *string     `json:"manufactor,omitempty"`
	LearnMore   *string     `json:"learnMore,omitempty"`
	IconURL     *string     `json:"iconURL,omitempty"`
	Description *string     `json:"description,omitempty"`
	Featured    *bool       `json:"featured,omitempty"`
	Disabled    *bool       `json:"disabled,omitempty"`
	Hide        *bool       `json:"hide,omitempty"`

	BluetoothRequired              *bool   `json:"bluetoothRequired,omitempty"`
	SerialportRequired             *bool   `json:"serialportRequired,omitempty"`
	DefaultBaudRate                *string `json:"defaultBaudRate,omitempty"`
	InternetConnectionRequired     *bool   `json:"internetConnectionRequired,omitempty"`
	LaunchPeripheralConnectionFlow *bool   `json:"launchPeripheralConnectionFlow,omitempty"`
	UseAutoScan                    *bool   `json:"useAutoScan,omitempty"`
	ConnectionIconURL              *string `json:"connectionIconURL,omitempty"`
	ConnectionSmallIconURL         *string `json:"connectionSmallIconURL,omitempty"`
	ConnectingMessage              *string `json:"connectingMessage,omitempty"`

	BaseToolBox                *string `json:"baseToolBox,omitempty"`
	DeviceExtensionsCompatible *string `json:"deviceExtensionsCompatible,omitempty"`

	ProgramMode     []ProgramMode     `json:"programMode,omitempty"`
	ProgramLanguage []ProgramLanguage `json:"programLanguage,omitempty"`
	Tags            []string          `json:"tags,omitempty"`

	HelpLink   *string `json:"helpLink,omitempty"`
	FreeDevice *bool   `json:"freeDevice,omitempty"`
	BuyNowURL  *string `json:"buyNowUrl,omitempty"`

	PnpIDList        []string `json:"pnpidList,omitempty"`
	DeviceExtensions []string `json:"deviceExtensions,omitempty"`
}
