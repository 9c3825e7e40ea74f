package parser

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// RoomsConfig overrides per-room settings. Today the only knob is the
// placeholder seat cap, e.g. to treat a room as 6-max:
//
//	rooms:
//	  fulltilt-ring:
//	    max-seats: 6
type RoomsConfig struct {
	Rooms map[string]RoomOverride `yaml:"rooms"`
}

type RoomOverride struct {
	MaxSeats int `yaml:"max-seats"`
}

func LoadRoomsConfig(fileName string) (*RoomsConfig, error) {
	data, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading rooms config %s", fileName)
	}
	var config RoomsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "Error parsing rooms config %s", fileName)
	}
	return &config, nil
}

// Apply pushes the overrides onto the registered rooms.
func (c *RoomsConfig) Apply() error {
	for name, override := range c.Rooms {
		room, ok := Lookup(name)
		if !ok {
			return errors.Errorf("rooms config references unknown room %q", name)
		}
		if override.MaxSeats < 2 {
			return errors.Errorf("rooms config: %s: max-seats must be at least 2", name)
		}
		room.MaxSeats = override.MaxSeats
	}
	return nil
}
