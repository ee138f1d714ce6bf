// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id" json:"id" jsonschema:"description=Unique level identifier"`
	Name     string            `yaml:"name" json:"name" jsonschema:"description=Display name"`
	Map      string            `yaml:"map" json:"map" jsonschema:"description=ASCII room map; every symbol marks a cell of the model bound to it; '.' and space are water"`
	Models   []YAMLModel       `yaml:"models" json:"models" jsonschema:"description=Models in index order"`
	Solution string            `yaml:"solution,omitempty" json:"solution,omitempty" jsonschema:"description=Move log that solves the room"`
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// YAMLModel describes one model bound to a map symbol.
type YAMLModel struct {
	Symbol string `yaml:"symbol" json:"symbol" jsonschema:"description=Single map character covering the model's cells"`
	Kind   string `yaml:"kind,omitempty" json:"kind,omitempty" jsonschema:"enum=fish,enum=item,enum=wall,description=Behavior family (default item)"`
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Weight string `yaml:"weight,omitempty" json:"weight,omitempty" jsonschema:"enum=none,enum=light,enum=heavy,enum=fixed"`
	Power  string `yaml:"power,omitempty" json:"power,omitempty" jsonschema:"enum=none,enum=light,enum=heavy,description=Pushing power of a fish"`
	Goal   string `yaml:"goal,omitempty" json:"goal,omitempty" jsonschema:"enum=none,enum=out,enum=stay"`
	Codes  string `yaml:"codes,omitempty" json:"codes,omitempty" jsonschema:"description=Up down left right move codes of a drivable fish"`
}

// ModelDef is a parsed model ready to be placed into a room.
type ModelDef struct {
	Symbol rune
	Config core.ModelConfig
	Codes  string
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Models   []ModelDef
	Solution string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl.Level()
}

// Level converts the raw document into a parsed level.
func (yl YAMLLevel) Level() (Level, error) {
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	rows := splitMap(yl.Map)
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("level %s: empty map", yl.ID)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Height:   len(rows),
		Solution: strings.TrimSpace(yl.Solution),
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	cells := make(map[rune][]core.Coord)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) > level.Width {
			level.Width = len(runes)
		}
		for x, r := range runes {
			if isWater(r) {
				continue
			}
			cells[r] = append(cells[r], core.C(x, y))
		}
	}

	seen := make(map[rune]bool)
	for i, ym := range yl.Models {
		def, err := ym.def()
		if err != nil {
			return Level{}, fmt.Errorf("level %s: model %d: %w", yl.ID, i, err)
		}
		if seen[def.Symbol] {
			return Level{}, fmt.Errorf("level %s: symbol %q defined twice", yl.ID, def.Symbol)
		}
		seen[def.Symbol] = true

		covered := cells[def.Symbol]
		if len(covered) == 0 {
			return Level{}, fmt.Errorf("level %s: symbol %q not on the map", yl.ID, def.Symbol)
		}
		def.Config.Loc, def.Config.Shape = anchor(covered)
		level.Models = append(level.Models, def)
	}

	var unknown []string
	for r := range cells {
		if !seen[r] {
			unknown = append(unknown, string(r))
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Level{}, fmt.Errorf("level %s: undefined map symbols %q", yl.ID, strings.Join(unknown, ""))
	}

	return level, nil
}

func (ym YAMLModel) def() (ModelDef, error) {
	symbol := []rune(ym.Symbol)
	if len(symbol) != 1 || isWater(symbol[0]) {
		return ModelDef{}, fmt.Errorf("bad symbol %q", ym.Symbol)
	}

	kind := core.Kind(strings.ToLower(strings.TrimSpace(ym.Kind)))
	if kind == "" {
		kind = core.KindItem
	}

	weight, err := core.ParseWeight(ym.Weight)
	if err != nil {
		return ModelDef{}, err
	}
	power, err := core.ParseWeight(ym.Power)
	if err != nil {
		return ModelDef{}, err
	}
	goal, err := core.ParseGoal(ym.Goal)
	if err != nil {
		return ModelDef{}, err
	}

	switch kind {
	case core.KindWall:
		weight = core.WeightFixed
	case core.KindFish:
		if ym.Weight == "" {
			weight = power
		}
		if ym.Goal == "" {
			goal = core.GoalOut
		}
		if ym.Codes == "" {
			return ModelDef{}, fmt.Errorf("fish %q has no move codes", ym.Symbol)
		}
	}

	name := ym.Name
	if name == "" {
		name = string(kind)
	}

	return ModelDef{
		Symbol: symbol[0],
		Codes:  ym.Codes,
		Config: core.ModelConfig{
			Kind:   kind,
			Name:   name,
			Weight: weight,
			Power:  power,
			Goal:   goal,
		},
	}, nil
}

// anchor returns the top-left corner of the cells and their offsets from it.
func anchor(cells []core.Coord) (core.Coord, []core.Coord) {
	loc := cells[0]
	for _, c := range cells[1:] {
		if c.X < loc.X {
			loc.X = c.X
		}
		if c.Y < loc.Y {
			loc.Y = c.Y
		}
	}
	shape := make([]core.Coord, len(cells))
	for i, c := range cells {
		shape[i] = c.Minus(loc)
	}
	return loc, shape
}

func splitMap(m string) []string {
	m = strings.Trim(m, "\n")
	if strings.TrimSpace(m) == "" {
		return nil
	}
	return strings.Split(m, "\n")
}

func isWater(r rune) bool {
	return r == '.' || r == ' ' || r == '\r' || r == '\t'
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
