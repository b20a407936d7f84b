package world

import (
	"fmt"
	"math/rand"
)

// DefaultSeed is the generation seed used when none is configured.
const DefaultSeed int64 = 141

// GenParams configures seeded world generation.
type GenParams struct {
	Seed    int64
	Ground  []int // Background tile ids, picked uniformly
	Props   []int // Overlay tile ids; every prop blocks movement
	Density int   // Percent chance a cell gets a prop, 0..100
	Spawn   Point // The tile under this point is kept free of props
}

// DefaultGenParams returns the generator settings of the tile demo.
func DefaultGenParams() GenParams {
	return GenParams{
		Seed:    DefaultSeed,
		Ground:  []int{1, 2, 3},
		Props:   []int{4, 5, 6, 7},
		Density: 12,
	}
}

// Generate fills a map layer and an overlay layer for the geometry.
// The same params always produce the same layers.
func Generate(g Geometry, p GenParams) (mapLayer, overlay *Layer, err error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}
	if len(p.Ground) == 0 {
		return nil, nil, fmt.Errorf("world: ground palette is empty")
	}
	if p.Density < 0 || p.Density > 100 {
		return nil, nil, fmt.Errorf("world: density must be 0..100, got %d", p.Density)
	}
	if p.Density > 0 && len(p.Props) == 0 {
		return nil, nil, fmt.Errorf("world: prop palette is empty")
	}
	for _, id := range p.Props {
		if id == 0 {
			return nil, nil, fmt.Errorf("world: prop tile id 0 would never block")
		}
	}

	rng := rand.New(rand.NewSource(p.Seed))
	mapLayer = newLayer(g.Cols, g.Rows)
	overlay = newLayer(g.Cols, g.Rows)

	for i := range mapLayer.tiles {
		mapLayer.tiles[i] = p.Ground[rng.Intn(len(p.Ground))]
		if rng.Intn(100) < p.Density {
			overlay.tiles[i] = p.Props[rng.Intn(len(p.Props))]
		}
	}

	// Cleared after the pass so the random stream does not depend on Spawn.
	if idx, err := g.TileIndex(p.Spawn.X, p.Spawn.Y); err == nil {
		overlay.tiles[idx] = 0
	}

	return mapLayer, overlay, nil
}
