package registry

import (
	"testing"

	"github.com/vovakirdan/blobblab/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Description() string { return "a stub" }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, expected zz_stub", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID != "zz_stub" {
			continue
		}
		found = true
		if info.Title != "Stub zz_stub" || info.Description != "a stub" {
			t.Errorf("List() info = %+v", info)
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for unknown ids")
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
