package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
)

func TestBundledLevelsSolve(t *testing.T) {
	all, err := Bundled().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("expected at least 3 bundled levels, got %d", len(all))
	}

	for _, lvl := range all {
		t.Run(lvl.ID, func(t *testing.T) {
			if lvl.Solution == "" {
				t.Skip("no recorded solution")
			}
			room, err := lvl.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			defer room.Close()

			for i, code := range lvl.Solution {
				if _, err := room.LoadMove(code); err != nil {
					t.Fatalf("move %d (%q): %v", i, code, err)
				}
			}
			complete, err := room.Settle()
			if err != nil {
				t.Fatalf("Settle: %v", err)
			}
			if !complete {
				t.Error("solution should complete the room")
			}
			if !room.IsSolvable() {
				t.Error("solved room should still be solvable")
			}
			if room.StepCount() != len([]rune(lvl.Solution)) {
				t.Errorf("StepCount() = %d, expected %d", room.StepCount(), len([]rune(lvl.Solution)))
			}
		})
	}
}

func TestBuildKeepsDefinitionOrder(t *testing.T) {
	lvl, err := Bundled().LoadByID("02-steel-door")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	room, err := lvl.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	expected := []core.Kind{core.KindWall, core.KindFish, core.KindFish, core.KindItem}
	if room.ModelCount() != len(expected) {
		t.Fatalf("ModelCount() = %d, expected %d", room.ModelCount(), len(expected))
	}
	for i, kind := range expected {
		m, err := room.Model(i)
		if err != nil {
			t.Fatal(err)
		}
		if m.Kind() != kind {
			t.Errorf("model %d kind = %s, expected %s", i, m.Kind(), kind)
		}
	}

	big, _ := room.Model(2)
	if big.Power() != core.WeightHeavy || len(big.Cells()) != 2 {
		t.Errorf("big fish power=%v cells=%d, expected heavy and 2", big.Power(), len(big.Cells()))
	}
	if room.Active() == nil || room.Active().Name() != "small fish" {
		t.Error("the first fish should start active")
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	level := `id: 99-custom
map: |
  #..
  #a.
models:
  - symbol: "#"
    kind: wall
  - symbol: a
    kind: fish
    power: light
    codes: udlr
`
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(level), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("id: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := NewLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "99-custom" {
		t.Errorf("ListIDs() = %v, expected [99-custom]", ids)
	}

	lvl, err := Find("99-custom", dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if lvl.Width != 3 || lvl.Height != 2 {
		t.Errorf("size = %dx%d, expected 3x2", lvl.Width, lvl.Height)
	}

	all, err := Catalog(dir)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	bundled, _ := Bundled().ListIDs()
	if len(all) != len(bundled)+1 {
		t.Errorf("Catalog has %d levels, expected %d", len(all), len(bundled)+1)
	}

	if _, err := Find("no-such-level", dir); err == nil {
		t.Error("Find should fail for unknown IDs")
	}
}
