package core

// Rules is the behavior strategy of one model.
// The Room calls each round operation for all models before moving to the
// next operation.
type Rules interface {
	// CommitPosition applies the pending move to the field.
	// Returns false when a target cell is still held by another model;
	// the Room calls it again once that model has moved.
	CommitPosition() bool
	// CheckDeath returns true when the model dies this call.
	CheckDeath() bool
	// ChangeState updates the visible state and the wrong flag.
	ChangeState()
	// AttemptExit returns a positive depth when the model leaves the room.
	AttemptExit() int
	// AttemptFall applies one gravity step.
	AttemptFall() Fall
	// FinishRound clears per-round state.
	FinishRound()

	// CanMoveDir reports whether a player move in d is legal now.
	CanMoveDir(d Dir) bool
	// MoveDir schedules a player move in d, pushing whatever is in the way.
	MoveDir(d Dir) bool

	base() *mask
}

// mask is the shared part of every behavior strategy: the model's footprint
// on the field and its per-round motion state.
type mask struct {
	model *Model
	field *Field

	pending  Dir  // move applied at the next commit
	falling  bool // dropped and still unsupported
	dropped  bool // dropped during this round
	lastFell bool // dropped during the previous round
}

func (r *mask) base() *mask {
	return r
}

// attach occupies the model's in-bounds cells.
func (r *mask) attach(f *Field) error {
	r.field = f
	return r.occupy()
}

// detach releases every cell the model holds.
func (r *mask) detach() {
	if r.field == nil {
		return
	}
	r.release()
	r.field = nil
}

func (r *mask) occupy() error {
	for _, c := range r.model.Cells() {
		if !r.field.InBounds(c) {
			continue
		}
		if err := r.field.Occupy(c, r.model); err != nil {
			return err
		}
	}
	return nil
}

func (r *mask) release() {
	for _, c := range r.model.Cells() {
		if r.field.Model(c) == r.model {
			r.field.Release(c)
		}
	}
}

// shift moves the model one cell in d. Target cells must be free.
func (r *mask) shift(d Dir) {
	r.release()
	r.model.loc = r.model.loc.Step(d)
	if err := r.occupy(); err != nil {
		panic(&LogicError{Op: "shift", Err: err})
	}
}

// isFree reports whether the model could occupy cells shifted by d,
// ignoring cells it already holds.
func (r *mask) isFree(d Dir) bool {
	for _, c := range r.model.cellsAt(r.model.loc.Step(d)) {
		if r.field.IsFloor(c) {
			return false
		}
		if occ := r.field.Model(c); occ != nil && occ != r.model {
			return false
		}
	}
	return true
}

// supported reports whether something solid lies directly below the model.
// A model in mid-fall does not support anything.
func (r *mask) supported() bool {
	for _, c := range r.model.Cells() {
		below := c.Step(DirDown)
		if r.field.IsFloor(below) {
			return true
		}
		occ := r.field.Model(below)
		if occ == nil || occ == r.model {
			continue
		}
		if !occ.rules.base().falling {
			return true
		}
	}
	return false
}

// onSolid reports whether the model rests on the floor or on a wall.
func (r *mask) onSolid() bool {
	for _, c := range r.model.Cells() {
		below := c.Step(DirDown)
		if r.field.IsFloor(below) {
			return true
		}
		if occ := r.field.Model(below); occ != nil && occ != r.model && occ.IsWall() {
			return true
		}
	}
	return false
}

// above returns the distinct models resting directly on top of this one.
func (r *mask) above() []*Model {
	var result []*Model
	seen := make(map[*Model]bool)
	for _, c := range r.model.Cells() {
		occ := r.field.Model(c.Step(DirUp))
		if occ == nil || occ == r.model || seen[occ] {
			continue
		}
		seen[occ] = true
		result = append(result, occ)
	}
	return result
}

func (r *mask) CommitPosition() bool {
	if r.pending == DirNo {
		return true
	}
	if !r.isFree(r.pending) {
		return false
	}
	r.shift(r.pending)
	r.pending = DirNo
	return true
}

func (r *mask) CheckDeath() bool {
	return false
}

func (r *mask) ChangeState() {
	m := r.model
	switch {
	case m.out:
		m.state = StateOut
	case !m.alive:
		m.state = StateDead
	default:
		m.state = StateNormal
	}

	if m.goal == GoalOut && !m.alive {
		m.wrong = true
	}
	if m.goal == GoalStay && m.out {
		m.wrong = true
	}
}

func (r *mask) AttemptExit() int {
	m := r.model
	if m.out {
		return 0
	}
	for _, c := range m.Cells() {
		if !r.field.InBounds(c) {
			r.release()
			m.out = true
			r.pending = DirNo
			r.falling = false
			return 1
		}
	}
	return 0
}

func (r *mask) AttemptFall() Fall {
	m := r.model
	if m.out || m.weight == WeightNone || m.weight == WeightFixed {
		r.falling = false
		return FallNone
	}
	if !r.isFree(DirDown) {
		if r.falling {
			r.falling = false
			return FallLast
		}
		return FallNone
	}

	r.shift(DirDown)
	r.dropped = true
	if r.supported() {
		r.falling = false
		return FallLast
	}
	r.falling = true
	return FallNow
}

func (r *mask) FinishRound() {
	r.lastFell = r.dropped
	r.dropped = false
}

func (r *mask) CanMoveDir(d Dir) bool {
	return false
}

func (r *mask) MoveDir(d Dir) bool {
	return false
}

// ItemRules drive loose objects: they fall, can be pushed and can leave the room.
type ItemRules struct {
	mask
}

// NewItemRules creates rules for a loose object.
func NewItemRules() Rules {
	return &ItemRules{}
}

// WallRules drive fixed scenery that never moves.
type WallRules struct {
	mask
}

// NewWallRules creates rules for fixed scenery.
func NewWallRules() Rules {
	return &WallRules{}
}

func (r *WallRules) AttemptExit() int {
	return 0
}

func (r *WallRules) AttemptFall() Fall {
	return FallNone
}

// FishRules drive player controlled fish.
type FishRules struct {
	mask
}

// NewFishRules creates rules for a fish.
func NewFishRules() Rules {
	return &FishRules{}
}

// CheckDeath kills the fish when something that has just fallen rests on it,
// or when it carries a load heavier than its power.
func (r *FishRules) CheckDeath() bool {
	m := r.model
	if !m.alive || m.out {
		return false
	}

	for _, load := range r.load() {
		lm := load.rules.base()
		if lm.lastFell || (load.weight >= WeightHeavy && m.power < WeightHeavy) {
			m.alive = false
			r.pending = DirNo
			return true
		}
	}
	return false
}

// load collects models resting on the fish, directly or through other models.
// Models also lying on a wall or the floor, walls and live fish are not load.
func (r *FishRules) load() []*Model {
	var result []*Model
	seen := map[*Model]bool{r.model: true}
	queue := []*Model{r.model}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, up := range q.rules.base().above() {
			if seen[up] {
				continue
			}
			seen[up] = true
			if up.IsWall() || (up.IsFish() && up.alive) || up.out {
				continue
			}
			if up.rules.base().onSolid() {
				continue
			}
			result = append(result, up)
			queue = append(queue, up)
		}
	}
	return result
}

func (r *FishRules) AttemptFall() Fall {
	if r.model.alive {
		r.falling = false
		return FallNone
	}
	return r.mask.AttemptFall()
}

func (r *FishRules) CanMoveDir(d Dir) bool {
	_, ok := r.pushSet(d)
	return ok
}

func (r *FishRules) MoveDir(d Dir) bool {
	pushed, ok := r.pushSet(d)
	if !ok {
		return false
	}
	r.pending = d
	for _, p := range pushed {
		p.rules.base().pending = d
	}
	return true
}

// pushSet returns the models the fish would push by moving in d.
func (r *FishRules) pushSet(d Dir) ([]*Model, bool) {
	m := r.model
	if d == DirNo || !m.alive || m.out || r.field == nil {
		return nil, false
	}

	var pushed []*Model
	seen := map[*Model]bool{m: true}
	queue := []*Model{m}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, c := range q.Cells() {
			target := c.Step(d)
			if r.field.IsFloor(target) {
				return nil, false
			}
			occ := r.field.Model(target)
			if occ == nil || seen[occ] {
				continue
			}
			if occ.IsWall() || (occ.IsFish() && occ.alive) || occ.weight > m.power {
				return nil, false
			}
			seen[occ] = true
			pushed = append(pushed, occ)
			queue = append(queue, occ)
		}
	}
	return pushed, true
}
