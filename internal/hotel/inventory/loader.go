package inventory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlLayoutFile is the top-level YAML structure for layout files.
type yamlLayoutFile struct {
	Hotel yamlHotel `yaml:"hotel"`
}

// yamlHotel is the YAML representation of a hotel.
type yamlHotel struct {
	Floors []yamlFloor `yaml:"floors"`
}

// yamlFloor is the YAML representation of one floor.
type yamlFloor struct {
	Floor int   `yaml:"floor"`
	Rooms []int `yaml:"rooms"`
}

// LoadLayoutFromFile reads and validates a layout YAML file.
//
// Precondition: path must point to a readable YAML layout file.
// Postcondition: Returns a validated Layout or a non-nil error.
func LoadLayoutFromFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout file %s: %w", path, err)
	}
	return LoadLayoutFromBytes(data)
}

// LoadLayoutFromBytes parses and validates a layout from YAML bytes.
//
// Postcondition: Returns a validated Layout or a non-nil error.
func LoadLayoutFromBytes(data []byte) (Layout, error) {
	var file yamlLayoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Layout{}, fmt.Errorf("parsing layout YAML: %w", err)
	}

	layout := Layout{Floors: make([]FloorLayout, 0, len(file.Hotel.Floors))}
	for _, f := range file.Hotel.Floors {
		layout.Floors = append(layout.Floors, FloorLayout{Floor: f.Floor, Rooms: f.Rooms})
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("validating layout: %w", err)
	}
	return layout, nil
}
