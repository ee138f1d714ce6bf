package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
)

func addFish(t *testing.T, r *core.Room, loc core.Coord, power core.Weight, codes string) *core.Model {
	t.Helper()
	m := core.NewModel(core.ModelConfig{
		Kind:   core.KindFish,
		Weight: power,
		Power:  power,
		Goal:   core.GoalOut,
		Loc:    loc,
	}, core.NewFishRules())
	u, err := core.NewUnit(codes)
	if err != nil {
		t.Fatalf("NewUnit(%q): %v", codes, err)
	}
	if _, err := r.AddModel(m, u); err != nil {
		t.Fatalf("AddModel fish at %v: %v", loc, err)
	}
	return m
}

func addItem(t *testing.T, r *core.Room, loc core.Coord, w core.Weight, shape ...core.Coord) *core.Model {
	t.Helper()
	m := core.NewModel(core.ModelConfig{
		Kind:   core.KindItem,
		Weight: w,
		Loc:    loc,
		Shape:  shape,
	}, core.NewItemRules())
	if _, err := r.AddModel(m, nil); err != nil {
		t.Fatalf("AddModel item at %v: %v", loc, err)
	}
	return m
}

func addWall(t *testing.T, r *core.Room, cells ...core.Coord) *core.Model {
	t.Helper()
	m := core.NewModel(core.ModelConfig{
		Kind:   core.KindWall,
		Weight: core.WeightFixed,
		Shape:  cells,
	}, core.NewWallRules())
	if _, err := r.AddModel(m, nil); err != nil {
		t.Fatalf("AddModel wall: %v", err)
	}
	return m
}

type recordedSound struct {
	names []string
}

func (s *recordedSound) PlaySound(name string, volume int) {
	s.names = append(s.names, name)
}

type countingPlanner struct {
	interrupts int
}

func (p *countingPlanner) InterruptPlan() {
	p.interrupts++
}

type fakeTimer struct {
	tick int
}

func (f *fakeTimer) Tick() int {
	return f.tick
}
