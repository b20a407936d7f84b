package tilewalk

import (
	"fmt"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/world"
	"github.com/vovakirdan/tilewalk/internal/world/maps"
)

// StageFromConfig converts a stage config into world parameters.
func StageFromConfig(wc config.WorldConfig, st config.StageConfig) world.Stage {
	return world.Stage{
		Geometry: world.Geometry{
			Cols:     st.Tiles.Cols,
			Rows:     st.Tiles.Rows,
			BaseTile: st.Tiles.Base,
			Scale:    st.Tiles.Scale,
		},
		ScreenW:    wc.Screen.Width,
		ScreenH:    wc.Screen.Height,
		PlayerSize: st.PlayerSize,
		Step:       st.Step,
		Spawn:      world.Point{X: st.Spawn.X, Y: st.Spawn.Y},
		Sprite: world.SpriteSpec{
			BaseSize: st.Sprite.Base,
			Scale:    st.Sprite.Scale,
			Centered: st.Sprite.Centered,
		},
	}
}

// BuildWorld creates the world for stage id. A non-nil map replaces the
// generated layers and the stage geometry and spawn; stages without layers
// ignore it. A non-zero seed overrides the configured generation seed.
func BuildWorld(wc config.WorldConfig, id string, m *maps.Map, seed int64) (*world.State, error) {
	st, err := wc.Stage(id)
	if err != nil {
		return nil, err
	}
	st = st.WithSeed(seed)
	stage := StageFromConfig(wc, st)

	if !st.Layers.Map {
		return world.New(stage, nil, nil)
	}

	var mapLayer, overlay *world.Layer
	if m != nil {
		stage.Geometry = m.Geometry
		stage.Spawn = m.Spawn
		mapLayer, overlay = m.Layer, m.Overlay
	} else {
		gen := st.Generation
		mapLayer, overlay, err = world.Generate(stage.Geometry, world.GenParams{
			Seed:    gen.Seed,
			Ground:  gen.Ground,
			Props:   gen.Props,
			Density: gen.Density,
			Spawn:   stage.Spawn,
		})
		if err != nil {
			return nil, fmt.Errorf("tilewalk: generating %s: %w", id, err)
		}
	}

	if !st.Layers.Overlay {
		overlay = nil
	}

	w, err := world.New(stage, mapLayer, overlay)
	if err != nil {
		return nil, fmt.Errorf("tilewalk: building %s: %w", id, err)
	}
	return w, nil
}
