package registry

import (
	"testing"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("ID() = %q, expected aa-stub", g.ID())
	}

	list := List()
	if len(list) < 2 || list[0].ID != "aa-stub" {
		t.Errorf("List() should be sorted by ID, got %+v", list)
	}
	if list[0].Title != "Stub aa-stub" {
		t.Errorf("title = %q, expected Stub aa-stub", list[0].Title)
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}
