package core

import "fmt"

// Controls binds input and replayed move codes to the active unit
// and records the move log.
type Controls struct {
	units      []*Unit
	active     int
	moves      []rune
	steps      int
	locker     *PhaseLocker
	movePhases int

	moved   bool // a move was committed this round
	blocked bool // the last driving attempt was refused
}

// NewControls creates controls sharing the given phase locker.
func NewControls(locker *PhaseLocker, movePhases int) *Controls {
	return &Controls{
		active:     -1,
		locker:     locker,
		movePhases: movePhases,
	}
}

func (c *Controls) addUnit(u *Unit) error {
	for _, other := range c.units {
		if code, ok := u.overlaps(other); ok {
			return fmt.Errorf("controls: move code %q already bound", code)
		}
	}
	c.units = append(c.units, u)
	if c.active < 0 && u.CanDrive() {
		c.active = len(c.units) - 1
	}
	return nil
}

// Units returns the registered units in insertion order.
func (c *Controls) Units() []*Unit {
	units := make([]*Unit, len(c.units))
	copy(units, c.units)
	return units
}

// Active returns the active unit, or nil when there is none.
func (c *Controls) Active() *Unit {
	if c.active < 0 || c.active >= len(c.units) {
		return nil
	}
	return c.units[c.active]
}

func (c *Controls) drivable() int {
	n := 0
	for _, u := range c.units {
		if u.CanDrive() {
			n++
		}
	}
	return n
}

// nextDrivable returns the first drivable unit after from, wrapping, or -1.
func (c *Controls) nextDrivable(from int) int {
	n := len(c.units)
	for i := 1; i <= n; i++ {
		idx := (from + i + n) % n
		if c.units[idx].CanDrive() {
			return idx
		}
	}
	return -1
}

// SwitchActive makes the next drivable unit active.
// Has no effect with fewer than two drivable units.
func (c *Controls) SwitchActive() {
	if c.drivable() < 2 {
		return
	}
	if next := c.nextDrivable(c.active); next >= 0 {
		c.active = next
	}
}

// CheckActive moves away from an active unit that can no longer drive.
func (c *Controls) CheckActive() {
	if u := c.Active(); u != nil && u.CanDrive() {
		return
	}
	if len(c.units) == 0 {
		return
	}
	if next := c.nextDrivable(c.active); next >= 0 {
		c.active = next
	}
}

// MakeMove applies a recorded move code to the unit owning it.
// Returns false for unknown codes and illegal moves.
func (c *Controls) MakeMove(code rune) bool {
	for i, u := range c.units {
		d := u.DirOf(code)
		if d == DirNo {
			continue
		}
		if !u.CanDrive() || !u.model.rules.MoveDir(d) {
			return false
		}
		c.active = i
		c.record(code)
		return true
	}
	return false
}

// Driving moves the active unit in the first asserted direction.
func (c *Controls) Driving(in InputSource) bool {
	c.blocked = false
	u := c.Active()
	if u == nil || !u.CanDrive() {
		return false
	}
	for _, d := range MoveDirs {
		if !in.Asserted(d) {
			continue
		}
		if u.model.rules.MoveDir(d) {
			c.record(u.Code(d))
			return true
		}
		c.blocked = true
		return false
	}
	return false
}

// Blocked returns true when the last Driving call asserted an illegal move.
func (c *Controls) Blocked() bool {
	return c.blocked
}

func (c *Controls) record(code rune) {
	c.moves = append(c.moves, code)
	c.steps++
	c.moved = true
}

// CannotMove returns true when no drivable unit has a legal move.
func (c *Controls) CannotMove() bool {
	for _, u := range c.units {
		if !u.CanDrive() {
			continue
		}
		for _, d := range MoveDirs {
			if u.model.rules.CanMoveDir(d) {
				return false
			}
		}
	}
	return true
}

// LockPhases holds the locker for the move animation of this round.
func (c *Controls) LockPhases() {
	if c.moved {
		c.locker.Ensure(c.movePhases)
	}
}

// Moves returns the move log.
func (c *Controls) Moves() string {
	return string(c.moves)
}

// StepCount returns the number of committed moves.
func (c *Controls) StepCount() int {
	return c.steps
}

func (c *Controls) finishRound() {
	c.moved = false
}
