package core

import (
	"fmt"
	"strings"
)

// Weight is the weight class of a model, also used as the pushing power of fish.
type Weight uint8

const (
	WeightNone Weight = iota
	WeightLight
	WeightHeavy
	WeightFixed
)

// String returns the string representation of a weight.
func (w Weight) String() string {
	switch w {
	case WeightNone:
		return "none"
	case WeightLight:
		return "light"
	case WeightHeavy:
		return "heavy"
	case WeightFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseWeight parses a weight name as written in level files.
func ParseWeight(s string) (Weight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return WeightNone, nil
	case "light", "small":
		return WeightLight, nil
	case "heavy", "big":
		return WeightHeavy, nil
	case "fixed":
		return WeightFixed, nil
	default:
		return WeightNone, fmt.Errorf("unknown weight %q", s)
	}
}

// Goal is what a model must achieve for the room to be solved.
type Goal uint8

const (
	GoalNone Goal = iota // no requirement
	GoalOut              // must leave the room
	GoalStay             // must not leave the room
)

// String returns the string representation of a goal.
func (g Goal) String() string {
	switch g {
	case GoalNone:
		return "none"
	case GoalOut:
		return "out"
	case GoalStay:
		return "stay"
	default:
		return "unknown"
	}
}

// ParseGoal parses a goal name as written in level files.
func ParseGoal(s string) (Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return GoalNone, nil
	case "out":
		return GoalOut, nil
	case "stay":
		return GoalStay, nil
	default:
		return GoalNone, fmt.Errorf("unknown goal %q", s)
	}
}

// Kind names the behavior family of a model.
type Kind string

const (
	KindFish Kind = "fish"
	KindItem Kind = "item"
	KindWall Kind = "wall"
)

// State is the visible condition of a model.
type State uint8

const (
	StateNormal State = iota
	StateDead
	StateOut
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDead:
		return "dead"
	case StateOut:
		return "out"
	default:
		return "unknown"
	}
}

// ModelConfig describes a model before it is placed into a room.
type ModelConfig struct {
	Kind   Kind
	Name   string
	Weight Weight
	Power  Weight // pushing power, meaningful for fish
	Goal   Goal
	Loc    Coord   // anchor position
	Shape  []Coord // cell offsets from Loc; empty means a single cell
}

// Model is a game object occupying one or more cells of the room.
type Model struct {
	index  int
	kind   Kind
	name   string
	weight Weight
	power  Weight
	goal   Goal
	loc    Coord
	shape  []Coord

	alive bool
	out   bool
	wrong bool
	state State

	rules Rules
}

// NewModel creates a model driven by the given rules.
// The rules value must not be shared with another model.
func NewModel(cfg ModelConfig, rules Rules) *Model {
	shape := make([]Coord, len(cfg.Shape))
	copy(shape, cfg.Shape)
	if len(shape) == 0 {
		shape = []Coord{C(0, 0)}
	}

	m := &Model{
		index:  -1,
		kind:   cfg.Kind,
		name:   cfg.Name,
		weight: cfg.Weight,
		power:  cfg.Power,
		goal:   cfg.Goal,
		loc:    cfg.Loc,
		shape:  shape,
		alive:  true,
		rules:  rules,
	}
	rules.base().model = m
	return m
}

// Index returns the stable index assigned when the model joined a room, or -1.
func (m *Model) Index() int { return m.index }

// Kind returns the behavior family of the model.
func (m *Model) Kind() Kind { return m.kind }

// Name returns the display name of the model.
func (m *Model) Name() string { return m.name }

// Weight returns the weight class of the model.
func (m *Model) Weight() Weight { return m.weight }

// Power returns the pushing power of the model.
func (m *Model) Power() Weight { return m.power }

// Goal returns the goal of the model.
func (m *Model) Goal() Goal { return m.goal }

// Loc returns the anchor position of the model.
func (m *Model) Loc() Coord { return m.loc }

// Rules returns the behavior strategy of the model.
func (m *Model) Rules() Rules { return m.rules }

// IsAlive returns true until the model dies.
func (m *Model) IsAlive() bool { return m.alive }

// IsOut returns true once the model has left the room.
func (m *Model) IsOut() bool { return m.out }

// IsWrong returns true when the model can no longer reach its goal.
func (m *Model) IsWrong() bool { return m.wrong }

// State returns the visible condition of the model.
func (m *Model) State() State { return m.state }

// IsWall returns true for fixed models.
func (m *Model) IsWall() bool { return m.weight == WeightFixed }

// IsFish returns true for models of the fish kind.
func (m *Model) IsFish() bool { return m.kind == KindFish }

// MarkWrong flags the model as structurally unsolvable.
// The flag is sticky for the rest of the room's life.
func (m *Model) MarkWrong() { m.wrong = true }

// IsSatisfy returns true when the model meets its goal.
func (m *Model) IsSatisfy() bool {
	switch m.goal {
	case GoalOut:
		return m.out
	case GoalStay:
		return !m.out
	default:
		return true
	}
}

// Shape returns a copy of the model's cell offsets.
func (m *Model) Shape() []Coord {
	shape := make([]Coord, len(m.shape))
	copy(shape, m.shape)
	return shape
}

// Cells returns the absolute cells covered by the model.
func (m *Model) Cells() []Coord {
	return m.cellsAt(m.loc)
}

func (m *Model) cellsAt(loc Coord) []Coord {
	cells := make([]Coord, len(m.shape))
	for i, off := range m.shape {
		cells[i] = loc.Plus(off)
	}
	return cells
}

// bottom returns the lowest row covered by the model.
func (m *Model) bottom() int {
	y := m.loc.Y + m.shape[0].Y
	for _, off := range m.shape[1:] {
		if m.loc.Y+off.Y > y {
			y = m.loc.Y + off.Y
		}
	}
	return y
}
