package data

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/quadscene/internal/geom"
)

// ErrUnknownKind is returned for spawn entries naming a kind no factory
// is registered for.
var ErrUnknownKind = errors.New("unknown entity kind")

// DefaultSize is used for entries that leave w or h out.
const DefaultSize = 10

// SpawnEntry places one entity when the scene starts.
type SpawnEntry struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
	Note string `yaml:"note"`
}

// Rect returns the entry's rectangle with default sizes applied.
func (e SpawnEntry) Rect() geom.Rect {
	w, h := e.W, e.H
	if w <= 0 {
		w = DefaultSize
	}
	if h <= 0 {
		h = DefaultSize
	}
	return geom.R(e.X, e.Y, w, h)
}

// LoadSpawnList loads spawn_list.yaml. A missing file is an empty list.
func LoadSpawnList(path string) ([]SpawnEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read spawn list: %w", err)
	}
	var entries []SpawnEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse spawn list: %w", err)
	}
	for i, e := range entries {
		if e.Kind == "" {
			return nil, fmt.Errorf("spawn list entry %d: missing kind", i)
		}
	}
	return entries, nil
}
