// Package maps loads hand-authored world maps from YAML files.
// It depends on world but world does not depend on maps.
package maps

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilewalk/internal/world"
)

// ErrInvalidMap is wrapped by every validation failure.
var ErrInvalidMap = errors.New("maps: invalid map")

// yamlMap is the on-disk layout of a map file.
type yamlMap struct {
	ID      string    `yaml:"id"`
	Name    string    `yaml:"name"`
	Size    yamlSize  `yaml:"size"`
	Tile    yamlTile  `yaml:"tile"`
	Spawn   yamlPoint `yaml:"spawn"`
	Map     [][]int   `yaml:"map"`
	Overlay [][]int   `yaml:"overlay,omitempty"`
}

type yamlSize struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

type yamlTile struct {
	Base  int `yaml:"base"`
	Scale int `yaml:"scale"`
}

type yamlPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Map is a parsed, validated map file.
type Map struct {
	ID       string
	Name     string
	Geometry world.Geometry
	Spawn    world.Point
	Layer    *world.Layer // Background
	Overlay  *world.Layer // nil when the file has no overlay
	Path     string
}

// Parse decodes and validates a YAML map.
func Parse(data []byte) (Map, error) {
	var ym yamlMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if ym.ID == "" {
		return Map{}, fmt.Errorf("%w: missing id", ErrInvalidMap)
	}
	if ym.Tile.Base == 0 {
		ym.Tile.Base = 16
	}
	if ym.Tile.Scale == 0 {
		ym.Tile.Scale = 4
	}

	geom := world.Geometry{
		Cols:     ym.Size.Cols,
		Rows:     ym.Size.Rows,
		BaseTile: ym.Tile.Base,
		Scale:    ym.Tile.Scale,
	}
	if err := geom.Validate(); err != nil {
		return Map{}, fmt.Errorf("%w: %s: %v", ErrInvalidMap, ym.ID, err)
	}

	layer, err := buildLayer(geom, ym.Map)
	if err != nil {
		return Map{}, fmt.Errorf("%w: %s: map layer: %v", ErrInvalidMap, ym.ID, err)
	}

	var overlay *world.Layer
	if len(ym.Overlay) > 0 {
		overlay, err = buildLayer(geom, ym.Overlay)
		if err != nil {
			return Map{}, fmt.Errorf("%w: %s: overlay layer: %v", ErrInvalidMap, ym.ID, err)
		}
	}

	spawn := world.Point{X: ym.Spawn.X, Y: ym.Spawn.Y}
	if !geom.Contains(spawn.X, spawn.Y) {
		return Map{}, fmt.Errorf("%w: %s: spawn (%d,%d) outside %dx%d world",
			ErrInvalidMap, ym.ID, spawn.X, spawn.Y, geom.Width(), geom.Height())
	}

	name := ym.Name
	if name == "" {
		name = ym.ID
	}

	return Map{
		ID:       ym.ID,
		Name:     name,
		Geometry: geom,
		Spawn:    spawn,
		Layer:    layer,
		Overlay:  overlay,
	}, nil
}

// buildLayer checks the rows against the declared size before building.
func buildLayer(geom world.Geometry, rows [][]int) (*world.Layer, error) {
	if len(rows) != geom.Rows {
		return nil, fmt.Errorf("has %d rows, size says %d", len(rows), geom.Rows)
	}
	for y, row := range rows {
		if len(row) != geom.Cols {
			return nil, fmt.Errorf("row %d has %d tiles, size says %d", y, len(row), geom.Cols)
		}
	}
	return world.LayerFromRows(rows)
}

// Loader reads map files from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys (os.DirFS in production).
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadAll walks the filesystem and loads every map file.
// Invalid files are skipped. Maps are sorted by ID.
func (l *Loader) LoadAll() ([]Map, error) {
	var out []Map

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMapFile(p) {
			return nil
		}

		m, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("maps: walking: %w", err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(p string) (Map, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Map{}, fmt.Errorf("maps: reading %s: %w", p, err)
	}

	m, err := Parse(data)
	if err != nil {
		return Map{}, fmt.Errorf("maps: parsing %s: %w", p, err)
	}
	m.Path = p
	return m, nil
}

// LoadByID loads the map with the given ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}
	for _, m := range all {
		if m.ID == id {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("maps: map not found: %s", id)
}

func isMapFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
