package registry

import (
	"testing"

	"github.com/vovakirdan/tilewalk/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func register(id string) {
	Register(id, func() Game { return &stubGame{id: id} })
}

func TestRegisterKeepsOrder(t *testing.T) {
	ids := []string{"test_zeta", "test_alpha", "test_mid"}
	for _, id := range ids {
		register(id)
	}

	var got []string
	for _, info := range List() {
		for _, id := range ids {
			if info.ID == id {
				got = append(got, info.ID)
				if info.Title != "Stub "+id {
					t.Errorf("title for %s = %q", id, info.Title)
				}
			}
		}
	}

	if len(got) != len(ids) {
		t.Fatalf("listed %v, want %v", got, ids)
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("List order = %v, want registration order %v", got, ids)
			break
		}
	}
}

func TestCreate(t *testing.T) {
	register("test_create")

	if !Exists("test_create") {
		t.Fatal("registered game does not exist")
	}
	g, err := Create("test_create")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_create" {
		t.Errorf("ID = %q", g.ID())
	}

	if Exists("test_missing") {
		t.Error("unregistered game exists")
	}
	if _, err := Create("test_missing"); err == nil {
		t.Error("Create of an unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("test_dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	register("test_dup")
}
