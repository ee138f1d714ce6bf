package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
)

func TestFieldOccupy(t *testing.T) {
	f := core.NewField(3, 2)
	a := core.NewModel(core.ModelConfig{Kind: core.KindItem}, core.NewItemRules())
	b := core.NewModel(core.ModelConfig{Kind: core.KindItem}, core.NewItemRules())

	if err := f.Occupy(core.C(1, 1), a); err != nil {
		t.Fatalf("Occupy: %v", err)
	}
	if got := f.Model(core.C(1, 1)); got != a {
		t.Errorf("Model(1,1) = %v, expected a", got)
	}
	if err := f.Occupy(core.C(1, 1), a); err != nil {
		t.Errorf("re-occupy by the same model should succeed, got %v", err)
	}
	if err := f.Occupy(core.C(1, 1), b); !errors.Is(err, core.ErrCellTaken) {
		t.Errorf("expected ErrCellTaken, got %v", err)
	}
	if err := f.Occupy(core.C(3, 0), b); !errors.Is(err, core.ErrOutOfField) {
		t.Errorf("expected ErrOutOfField, got %v", err)
	}
	if f.Occupied() != 1 {
		t.Errorf("Occupied() = %d, expected 1", f.Occupied())
	}

	f.Release(core.C(1, 1))
	if f.Model(core.C(1, 1)) != nil {
		t.Error("cell should be empty after Release")
	}
	f.Release(core.C(-1, 5)) // Should not panic
}

func TestFieldBounds(t *testing.T) {
	f := core.NewField(4, 3)

	testCases := []struct {
		coord    core.Coord
		inBounds bool
		floor    bool
	}{
		{core.C(0, 0), true, false},
		{core.C(3, 2), true, false},
		{core.C(4, 0), false, false},
		{core.C(-1, 1), false, false},
		{core.C(0, -1), false, false},
		{core.C(1, 3), false, true},
		{core.C(-2, 7), false, true},
	}

	for _, tc := range testCases {
		if got := f.InBounds(tc.coord); got != tc.inBounds {
			t.Errorf("InBounds(%v) = %v, expected %v", tc.coord, got, tc.inBounds)
		}
		if got := f.IsFloor(tc.coord); got != tc.floor {
			t.Errorf("IsFloor(%v) = %v, expected %v", tc.coord, got, tc.floor)
		}
		if tc.inBounds {
			continue
		}
		if f.Model(tc.coord) != nil {
			t.Errorf("Model(%v) should be nil outside the field", tc.coord)
		}
	}
}

func TestAddModelOverlapFails(t *testing.T) {
	r := core.NewRoom(3, 3)
	addItem(t, r, core.C(1, 1), core.WeightLight)

	m := core.NewModel(core.ModelConfig{Kind: core.KindItem, Loc: core.C(0, 1), Shape: []core.Coord{core.C(0, 0), core.C(1, 0)}}, core.NewItemRules())
	_, err := r.AddModel(m, nil)
	if !core.IsLogic(err) {
		t.Fatalf("expected LogicError, got %v", err)
	}
	if !errors.Is(err, core.ErrCellTaken) {
		t.Errorf("expected ErrCellTaken cause, got %v", err)
	}
	if r.AskField(core.C(0, 1)) != nil {
		t.Error("failed AddModel should not leave cells occupied")
	}
	if r.ModelCount() != 1 {
		t.Errorf("ModelCount() = %d, expected 1", r.ModelCount())
	}
}

func TestCoordArithmetic(t *testing.T) {
	a, b := core.C(3, 1), core.C(1, 2)
	if got := a.Plus(b); got != core.C(4, 3) {
		t.Errorf("Plus = %v", got)
	}
	if got := a.Minus(b); got != core.C(2, -1) {
		t.Errorf("Minus = %v", got)
	}
	if got := a.Step(core.DirDown); got != core.C(3, 2) {
		t.Errorf("Step(down) = %v", got)
	}
	if got := a.Step(core.DirNo); got != a {
		t.Errorf("Step(no) = %v", got)
	}
}
