package formats

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`id: sample
name: Sample
map: |
  ####
  #aa.
  #bc.
models:
  - symbol: "#"
    kind: wall
  - symbol: a
    kind: fish
    power: heavy
    codes: UDLR
  - symbol: b
    weight: light
  - symbol: c
    weight: heavy
    goal: stay
solution: R
`)

	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if lvl.Width != 4 || lvl.Height != 3 {
		t.Errorf("size = %dx%d, expected 4x3", lvl.Width, lvl.Height)
	}
	if len(lvl.Models) != 4 {
		t.Fatalf("expected 4 models, got %d", len(lvl.Models))
	}

	testCases := []struct {
		symbol rune
		kind   core.Kind
		weight core.Weight
		goal   core.Goal
		loc    core.Coord
		cells  int
	}{
		{'#', core.KindWall, core.WeightFixed, core.GoalNone, core.C(0, 0), 6},
		{'a', core.KindFish, core.WeightHeavy, core.GoalOut, core.C(1, 1), 2},
		{'b', core.KindItem, core.WeightLight, core.GoalNone, core.C(1, 2), 1},
		{'c', core.KindItem, core.WeightHeavy, core.GoalStay, core.C(2, 2), 1},
	}

	for i, tc := range testCases {
		def := lvl.Models[i]
		if def.Symbol != tc.symbol {
			t.Errorf("model %d symbol = %q, expected %q", i, def.Symbol, tc.symbol)
		}
		if def.Config.Kind != tc.kind || def.Config.Weight != tc.weight || def.Config.Goal != tc.goal {
			t.Errorf("model %q = %s/%v/%v, expected %s/%v/%v", tc.symbol,
				def.Config.Kind, def.Config.Weight, def.Config.Goal, tc.kind, tc.weight, tc.goal)
		}
		if def.Config.Loc != tc.loc {
			t.Errorf("model %q loc = %v, expected %v", tc.symbol, def.Config.Loc, tc.loc)
		}
		if len(def.Config.Shape) != tc.cells {
			t.Errorf("model %q cells = %d, expected %d", tc.symbol, len(def.Config.Shape), tc.cells)
		}
	}
	if lvl.Solution != "R" {
		t.Errorf("Solution = %q, expected %q", lvl.Solution, "R")
	}
}

func TestParseYAMLErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
		want string
	}{
		{"missing id", "map: |\n  a\nmodels: []\n", "no id"},
		{"empty map", "id: x\nmap: \"\"\n", "empty map"},
		{"undefined symbol", "id: x\nmap: |\n  ab\nmodels:\n  - symbol: a\n", "undefined map symbols"},
		{"symbol off map", "id: x\nmap: |\n  a\nmodels:\n  - symbol: a\n  - symbol: z\n", "not on the map"},
		{"duplicate symbol", "id: x\nmap: |\n  a\nmodels:\n  - symbol: a\n  - symbol: a\n", "defined twice"},
		{"fish without codes", "id: x\nmap: |\n  a\nmodels:\n  - symbol: a\n    kind: fish\n", "no move codes"},
		{"bad weight", "id: x\nmap: |\n  a\nmodels:\n  - symbol: a\n    weight: feather\n", "unknown weight"},
		{"bad yaml", "id: [", "yaml unmarshal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON: %v", err)
	}
	text := string(data)
	for _, want := range []string{"Fillets Level", `"map"`, `"models"`, `"codes"`} {
		if !strings.Contains(text, want) {
			t.Errorf("schema does not contain %s", want)
		}
	}
}
