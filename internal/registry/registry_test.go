package registry

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-b", func() Game { return stubGame{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Game { return stubGame{id: "zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Fatal("registered track should exist")
	}

	g, err := Create("zz-stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub-b" {
		t.Errorf("ID = %q", g.ID())
	}

	list := List()
	var a, b = -1, -1
	for i, info := range list {
		switch info.ID {
		case "zz-stub-a":
			a = i
			if info.Title != "Stub zz-stub-a" {
				t.Errorf("title = %q", info.Title)
			}
		case "zz-stub-b":
			b = i
		}
	}
	if a < 0 || b < 0 || a > b {
		t.Errorf("List should be sorted by ID: %v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing-track"); err == nil {
		t.Error("expected error for unknown track")
	}
	if Exists("missing-track") {
		t.Error("unknown track should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
}
