package maps

import (
	"testing"

	"github.com/psanford/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilewalk/internal/world"
)

const meadow = `
id: meadow
name: Meadow
size: {cols: 4, rows: 3}
tile: {base: 16, scale: 4}
spawn: {x: 10, y: 10}
map:
  - [1, 1, 2, 2]
  - [1, 3, 3, 2]
  - [1, 1, 1, 1]
overlay:
  - [0, 0, 0, 4]
  - [0, 0, 0, 0]
  - [5, 0, 0, 0]
`

const plain = `
id: plain
size: {cols: 2, rows: 2}
spawn: {x: 0, y: 0}
map:
  - [1, 1]
  - [1, 1]
`

func newFS(t *testing.T, files map[string]string) *memfs.FS {
	t.Helper()
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("worlds/extra", 0o755))
	for name, body := range files {
		require.NoError(t, fsys.WriteFile(name, []byte(body), 0o644))
	}
	return fsys
}

func TestParse(t *testing.T) {
	m, err := Parse([]byte(meadow))
	require.NoError(t, err)

	assert.Equal(t, "meadow", m.ID)
	assert.Equal(t, "Meadow", m.Name)
	assert.Equal(t, world.Geometry{Cols: 4, Rows: 3, BaseTile: 16, Scale: 4}, m.Geometry)
	assert.Equal(t, world.Point{X: 10, Y: 10}, m.Spawn)

	id, ok := m.Layer.AtCell(1, 1)
	require.True(t, ok)
	assert.Equal(t, 3, id)

	require.NotNil(t, m.Overlay)
	assert.Equal(t, 2, m.Overlay.NonZero())
	id, _ = m.Overlay.AtCell(3, 0)
	assert.Equal(t, 4, id)
}

func TestParseDefaults(t *testing.T) {
	m, err := Parse([]byte(plain))
	require.NoError(t, err)

	assert.Equal(t, "plain", m.Name, "name falls back to id")
	assert.Equal(t, 16, m.Geometry.BaseTile)
	assert.Equal(t, 4, m.Geometry.Scale)
	assert.Nil(t, m.Overlay)
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing id", "size: {cols: 1, rows: 1}\nmap: [[1]]\n"},
		{"zero size", "id: a\nsize: {cols: 0, rows: 1}\nmap: [[1]]\n"},
		{"short row", "id: a\nsize: {cols: 2, rows: 1}\nmap: [[1]]\n"},
		{"row count", "id: a\nsize: {cols: 1, rows: 2}\nmap: [[1]]\n"},
		{"overlay size", "id: a\nsize: {cols: 1, rows: 1}\nmap: [[1]]\noverlay: [[1, 1]]\n"},
		{"spawn outside", "id: a\nsize: {cols: 1, rows: 1}\nspawn: {x: 64, y: 0}\nmap: [[1]]\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body))
			assert.ErrorIs(t, err, ErrInvalidMap)
		})
	}
}

func TestParseBadYAML(t *testing.T) {
	_, err := Parse([]byte("id: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidMap)
}

func TestLoadAll(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"worlds/meadow.yaml":     meadow,
		"worlds/extra/plain.yml": plain,
		"worlds/broken.yaml":     "id: broken\n",
		"worlds/readme.txt":      "not a map",
	})

	all, err := NewLoader(fsys).LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "meadow", all[0].ID)
	assert.Equal(t, "worlds/meadow.yaml", all[0].Path)
	assert.Equal(t, "plain", all[1].ID)
	assert.Equal(t, "worlds/extra/plain.yml", all[1].Path)
}

func TestLoadFileError(t *testing.T) {
	fsys := newFS(t, map[string]string{"worlds/broken.yaml": "id: broken\n"})
	l := NewLoader(fsys)

	_, err := l.LoadFile("worlds/broken.yaml")
	assert.ErrorIs(t, err, ErrInvalidMap)

	_, err = l.LoadFile("worlds/missing.yaml")
	assert.Error(t, err)
}

func TestLoadByID(t *testing.T) {
	fsys := newFS(t, map[string]string{"worlds/meadow.yaml": meadow})
	l := NewLoader(fsys)

	m, err := l.LoadByID("meadow")
	require.NoError(t, err)
	assert.Equal(t, "Meadow", m.Name)

	_, err = l.LoadByID("nope")
	assert.Error(t, err)
}

func TestLoadedMapBuildsWorld(t *testing.T) {
	m, err := Parse([]byte(meadow))
	require.NoError(t, err)

	stage := world.Stage{
		Geometry:   m.Geometry,
		ScreenW:    128,
		ScreenH:    128,
		PlayerSize: 16,
		Step:       10,
		Spawn:      m.Spawn,
		Sprite:     world.SpriteSpec{BaseSize: 16, Scale: 1},
	}
	s, err := world.New(stage, m.Layer, m.Overlay)
	require.NoError(t, err)

	assert.True(t, s.Blocked(3*64+1, 0))
	assert.False(t, s.Blocked(0, 0))
}
