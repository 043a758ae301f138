package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"device_library/internal/models"
)

// catalogFile is the on-disk shape of an extra catalog:
//
//	devices:
//	  - deviceId: arduinoMini
//	    name: Arduino Mini
//	    type: arduino
//	    programMode: [upload]
type catalogFile struct {
	Devices []models.DeviceDescriptor `yaml:"devices"`
}

// LoadFile reads extra descriptors from a YAML file.
func LoadFile(path string) ([]models.DeviceDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file %q: %w", path, err)
	}
	return f.Devices, nil
}

// FromFile builds a catalog of the built-in table followed by the
// descriptors in path. An empty path yields the built-in catalog.
func FromFile(path string) (*Catalog, error) {
	if path == "" {
		return New(Builtin())
	}
	extra, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(append(Builtin(), extra...))
}
