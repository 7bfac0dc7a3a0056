package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create returned %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			ia = i
		case "stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List should be sorted by ID, got %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
