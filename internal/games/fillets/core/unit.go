package core

import "fmt"

// Unit binds four move codes to a drivable model.
type Unit struct {
	model *Model
	codes [4]rune // indexed like MoveDirs
}

// NewUnit creates a unit from its up, down, left and right move codes, e.g. "udlr".
func NewUnit(codes string) (*Unit, error) {
	runes := []rune(codes)
	if len(runes) != len(MoveDirs) {
		return nil, fmt.Errorf("unit: need %d move codes, got %q", len(MoveDirs), codes)
	}
	u := &Unit{}
	for i, r := range runes {
		for _, prev := range runes[:i] {
			if prev == r {
				return nil, fmt.Errorf("unit: duplicate move code %q in %q", r, codes)
			}
		}
		u.codes[i] = r
	}
	return u, nil
}

// Model returns the model driven by the unit, nil before it is added to a room.
func (u *Unit) Model() *Model {
	return u.model
}

// Codes returns the unit's move codes in up, down, left, right order.
func (u *Unit) Codes() string {
	return string(u.codes[:])
}

// Code returns the move code recorded for a move in d.
func (u *Unit) Code(d Dir) rune {
	for i, md := range MoveDirs {
		if md == d {
			return u.codes[i]
		}
	}
	return 0
}

// DirOf returns the direction bound to code, or DirNo.
func (u *Unit) DirOf(code rune) Dir {
	for i, c := range u.codes {
		if c == code {
			return MoveDirs[i]
		}
	}
	return DirNo
}

// CanDrive returns true while the unit's model is alive and inside the room.
func (u *Unit) CanDrive() bool {
	return u.model != nil && u.model.alive && !u.model.out
}

// overlaps returns a move code shared with other, if any.
func (u *Unit) overlaps(other *Unit) (rune, bool) {
	for _, c := range u.codes {
		if other.DirOf(c) != DirNo {
			return c, true
		}
	}
	return 0, false
}
