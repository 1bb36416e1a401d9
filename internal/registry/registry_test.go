package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/paddles/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Controls() string         { return "none" }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Fatal("Exists reports wrong membership")
	}

	g1, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g2, _ := Create("stub-a")
	g1.Step(core.NewInputFrame())
	if g2.State().Score != 0 {
		t.Error("Create should return independent instances")
	}

	var a, b int = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "stub-a":
			a = i
			if info.Title != "Stub stub-a" || info.Controls != "none" {
				t.Errorf("info = %+v", info)
			}
		case "stub-b":
			b = i
		}
	}
	if a < 0 || b < 0 || a > b {
		t.Errorf("List not sorted by id: a=%d b=%d", a, b)
	}

	if _, err := Create("stub-missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) err = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
