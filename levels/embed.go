package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a flat arena on the XZ plane. Walls are axis-aligned boxes given by
// their center and footprint; the floor sits at FloorY.
type Level struct {
	Name     string   `json:"name"`
	Width    float64  `json:"width"`
	Depth    float64  `json:"depth"`
	CellSize float64  `json:"cell_size"`
	FloorY   float64  `json:"floor_y"`
	Walls    []Wall   `json:"walls,omitempty"`
	Entities []Entity `json:"entities,omitempty"`
}

type Wall struct {
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
	Width float64 `json:"w"`
	Depth float64 `json:"d"`
}

type Entity struct {
	Type  string            `json:"type"`
	X     float64           `json:"x"`
	Y     float64           `json:"y"`
	Z     float64           `json:"z"`
	Props map[string]string `json:"props,omitempty"`
}

// Prop returns the named property or def when it is absent.
func (e Entity) Prop(name, def string) string {
	if v, ok := e.Props[name]; ok && v != "" {
		return v
	}
	return def
}

// Load reads an embedded level. The .json suffix is optional.
func Load(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return decode(name, data)
}

// LoadFile reads a level from disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return decode(path, data)
}

// Names lists the embedded levels.
func Names() []string {
	matches, _ := fs.Glob(LevelsFS, "*.json")
	return matches
}

func decode(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	if lvl.CellSize == 0 {
		lvl.CellSize = 1
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	var errs []error
	if l.Width <= 0 || l.Depth <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %gx%g", ErrInvalidLevel, l.Width, l.Depth))
	}
	if l.CellSize < 0 {
		errs = append(errs, fmt.Errorf("%w: cell_size %g", ErrInvalidLevel, l.CellSize))
	}
	for i, w := range l.Walls {
		if w.Width <= 0 || w.Depth <= 0 {
			errs = append(errs, fmt.Errorf("%w: wall %d has no footprint", ErrInvalidLevel, i))
		}
	}
	players := 0
	for _, e := range l.Entities {
		if e.Type == "player" {
			players++
		}
	}
	if players > 1 {
		errs = append(errs, fmt.Errorf("%w: %d players", ErrInvalidLevel, players))
	}
	return errors.Join(errs...)
}

// OfType returns the entities with the given type in file order.
func (l *Level) OfType(typ string) []Entity {
	var out []Entity
	for _, e := range l.Entities {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
