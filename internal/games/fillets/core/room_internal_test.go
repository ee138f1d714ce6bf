package core

import "testing"

func placeItem(t *testing.T, r *Room, loc Coord, w Weight) *Model {
	t.Helper()
	m := NewModel(ModelConfig{Kind: KindItem, Weight: w, Loc: loc}, NewItemRules())
	if _, err := r.AddModel(m, nil); err != nil {
		t.Fatalf("AddModel at %v: %v", loc, err)
	}
	return m
}

func TestCommitDeadlockIsLogicError(t *testing.T) {
	r := NewRoom(2, 1)
	a := placeItem(t, r, C(0, 0), WeightLight)
	b := placeItem(t, r, C(1, 0), WeightLight)
	a.rules.base().pending = DirRight
	b.rules.base().pending = DirLeft

	_, err := r.BeginFall(false)
	if !IsLogic(err) {
		t.Fatalf("BeginFall with swapped moves = %v, expected LogicError", err)
	}
	if a.Loc() != C(0, 0) || b.Loc() != C(1, 0) {
		t.Errorf("deadlocked models moved: a=%v b=%v", a.Loc(), b.Loc())
	}
}

func TestLandingWithoutDropIsNotMotion(t *testing.T) {
	r := NewRoom(1, 2)
	item := placeItem(t, r, C(0, 1), WeightHeavy)
	item.rules.base().falling = true

	falling, err := r.BeginFall(false)
	if err != nil {
		t.Fatal(err)
	}
	if falling {
		t.Error("a landing that did not move should not hold the round")
	}
	if !r.Fresh() {
		t.Error("round should stay open for a move")
	}
	if r.LastImpact() != WeightHeavy {
		t.Errorf("LastImpact() = %v, expected heavy", r.LastImpact())
	}
	if item.rules.base().falling {
		t.Error("landed item should no longer be falling")
	}
}
