package core

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
)

// Volumes used for engine sound cues.
const (
	impactVolume = 50
	deadVolume   = 100
)

// Room owns the field, the models and the controls and advances them
// one round at a time.
type Room struct {
	field    *Field
	models   []*Model
	controls *Controls
	locker   *PhaseLocker
	phases   Phases

	planner Planner
	sound   Sound
	timer   Timer
	logger  *log.Logger

	impact    Weight
	fresh     bool
	phase     Phase
	startTick int
	closed    bool
}

// Option configures a Room.
type Option func(*Room)

// WithPlanner sets the planner interrupted by deaths, exits and blocked moves.
// The planner is borrowed and must outlive the room.
func WithPlanner(p Planner) Option {
	return func(r *Room) {
		if p != nil {
			r.planner = p
		}
	}
}

// WithSound sets the sound cue player.
func WithSound(s Sound) Option {
	return func(r *Room) {
		if s != nil {
			r.sound = s
		}
	}
}

// WithTimer sets the tick source used to measure elapsed cycles.
func WithTimer(t Timer) Option {
	return func(r *Room) {
		if t != nil {
			r.timer = t
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Room) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithLocker shares an external phase locker.
func WithLocker(l *PhaseLocker) Option {
	return func(r *Room) {
		if l != nil {
			r.locker = l
		}
	}
}

// WithPhases sets how many rounds moves, falls and exits lock.
func WithPhases(p Phases) Option {
	return func(r *Room) {
		r.phases = p
	}
}

// NewRoom creates an empty room of w x h cells.
func NewRoom(w, h int, opts ...Option) *Room {
	r := &Room{
		field:   NewField(w, h),
		locker:  NewPhaseLocker(),
		phases:  DefaultPhases(),
		planner: nopPlanner{},
		sound:   nopSound{},
		timer:   nopTimer{},
		logger:  log.New(io.Discard),
		fresh:   true,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.controls = NewControls(r.locker, r.phases.Move)
	r.startTick = r.timer.Tick()
	return r
}

// AddModel places a model into the room and returns its stable index.
// A non-nil unit makes the model drivable with the unit's move codes.
func (r *Room) AddModel(m *Model, u *Unit) (int, error) {
	if r.closed {
		return -1, &LogicError{Op: "add model", Err: ErrClosed}
	}
	if m.index >= 0 {
		return -1, &LogicError{Op: "add model", Err: fmt.Errorf("model already placed at index %d", m.index)}
	}

	b := m.rules.base()
	if err := b.attach(r.field); err != nil {
		b.detach()
		return -1, &LogicError{Op: "add model", Err: err}
	}
	if u != nil {
		u.model = m
		if err := r.controls.addUnit(u); err != nil {
			b.detach()
			u.model = nil
			return -1, &LogicError{Op: "add model", Err: err}
		}
	}

	m.index = len(r.models)
	r.models = append(r.models, m)
	return m.index, nil
}

// Model returns the model with the given index.
func (r *Room) Model(index int) (*Model, error) {
	if r.closed {
		return nil, &LogicError{Op: "model", Err: ErrClosed}
	}
	if index < 0 || index >= len(r.models) {
		return nil, &LogicError{Op: "model", Err: fmt.Errorf("%w: %d", ErrBadIndex, index)}
	}
	return r.models[index], nil
}

// Models returns all models in index order.
func (r *Room) Models() []*Model {
	models := make([]*Model, len(r.models))
	copy(models, r.models)
	return models
}

// ModelCount returns the number of models.
func (r *Room) ModelCount() int {
	return len(r.models)
}

// AskField returns the model occupying the cell, or nil.
func (r *Room) AskField(c Coord) *Model {
	if r.closed {
		return nil
	}
	return r.field.Model(c)
}

// NextRound runs one interactive round. When nothing falls or leaves,
// the input may drive the active unit. Returns true when the room is complete.
func (r *Room) NextRound(in InputSource) (bool, error) {
	falling, err := r.BeginFall(true)
	if err != nil {
		return false, err
	}
	if !falling {
		if r.controls.Driving(in) {
			r.fresh = false
		} else if r.controls.Blocked() {
			r.planner.InterruptPlan()
		}
	}
	return r.FinishRound(true), nil
}

// BeginFall runs the prepare, exit-check and gravity phases.
// Returns true when anything fell or left the room.
func (r *Room) BeginFall(interactive bool) (bool, error) {
	if r.closed {
		return false, &LogicError{Op: "begin fall", Err: ErrClosed}
	}
	r.fresh = true
	r.impact = WeightNone

	r.phase = PhasePreparing
	if err := r.prepareRound(interactive); err != nil {
		return false, err
	}

	r.phase = PhaseExitCheck
	falling := r.fallout(interactive)
	if !falling {
		r.phase = PhaseGravity
		falling = r.falldown(interactive)
		if interactive {
			r.playImpact()
		}
	}
	r.fresh = !falling
	return falling, nil
}

func (r *Room) prepareRound(interactive bool) error {
	if err := r.commitMoves(); err != nil {
		return err
	}

	interrupt := false
	for _, m := range r.models {
		if m.rules.CheckDeath() {
			r.logger.Debug("model died", "model", m.index, "name", m.name)
			if interactive {
				r.playDead(m)
			}
			interrupt = true
		}
	}
	for _, m := range r.models {
		m.rules.ChangeState()
	}

	if interrupt {
		r.planner.InterruptPlan()
		r.controls.CheckActive()
	}
	return nil
}

// commitMoves applies pending moves in passes until none is left. A pass
// commits every model whose target cells are free, so a pushed model
// vacates its cells before the pusher enters them whatever its shape.
func (r *Room) commitMoves() error {
	var pending, idle []*Model
	for _, m := range r.models {
		if m.rules.base().pending != DirNo {
			pending = append(pending, m)
		} else {
			idle = append(idle, m)
		}
	}
	// Models without a pending move still get their commit call.
	for _, m := range idle {
		m.rules.CommitPosition()
	}
	for len(pending) > 0 {
		blocked := pending[:0]
		for _, m := range pending {
			if !m.rules.CommitPosition() {
				blocked = append(blocked, m)
			}
		}
		if len(blocked) == len(pending) {
			m := blocked[0]
			return &LogicError{Op: "commit", Err: fmt.Errorf("%d pending moves deadlocked, model %d at %v", len(blocked), m.index, m.loc)}
		}
		pending = blocked
	}
	return nil
}

func (r *Room) fallout(interactive bool) bool {
	wentOut := false
	for _, m := range r.models {
		if m.rules.AttemptExit() > 0 {
			r.logger.Debug("model left the room", "model", m.index, "name", m.name)
			wentOut = true
		}
	}
	if wentOut {
		if interactive {
			r.locker.Ensure(r.phases.Exit)
		}
		r.planner.InterruptPlan()
		r.controls.CheckActive()
	}
	return wentOut
}

func (r *Room) falldown(interactive bool) bool {
	r.impact = WeightNone
	falling := false
	for _, m := range r.gravityOrder() {
		switch m.rules.AttemptFall() {
		case FallNow:
			falling = true
		case FallLast:
			// A landing without a drop this round is not motion.
			if m.rules.base().dropped {
				falling = true
			}
			if m.weight > r.impact {
				r.impact = m.weight
			}
		}
	}
	if falling && interactive {
		r.locker.Ensure(r.phases.Fall)
	}
	return falling
}

// gravityOrder returns models lowest first.
func (r *Room) gravityOrder() []*Model {
	order := make([]*Model, len(r.models))
	copy(order, r.models)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].bottom() > order[j].bottom()
	})
	return order
}

func (r *Room) playImpact() {
	switch r.impact {
	case WeightLight:
		r.sound.PlaySound(SoundImpactLight, impactVolume)
	case WeightHeavy:
		r.sound.PlaySound(SoundImpactHeavy, impactVolume)
	}
}

func (r *Room) playDead(m *Model) {
	switch m.power {
	case WeightLight:
		r.sound.PlaySound(SoundDeadSmall, deadVolume)
	case WeightHeavy:
		r.sound.PlaySound(SoundDeadBig, deadVolume)
	default:
		r.logger.Warn("dead model has no death sound", "model", m.index, "power", m.power)
	}
}

// MakeMove commits a recorded move while the round is fresh.
// Returns false when a move was already made this round.
func (r *Room) MakeMove(code rune) (bool, error) {
	if r.closed {
		return false, &LogicError{Op: "make move", Err: ErrClosed}
	}
	if !r.fresh {
		return false, nil
	}
	if !r.controls.MakeMove(code) {
		return false, &LoadError{Move: code, Err: ErrBadMove}
	}
	r.fresh = false
	return true, nil
}

// FinishRound runs the finishing phase.
// Returns true when every model has met its goal.
func (r *Room) FinishRound(interactive bool) bool {
	r.phase = PhaseFinishing
	if interactive {
		r.controls.LockPhases()
	}
	r.controls.finishRound()

	complete := true
	for _, m := range r.models {
		m.rules.FinishRound()
		if !m.IsSatisfy() {
			complete = false
		}
	}
	r.fresh = false
	r.phase = PhaseFresh
	return complete
}

// LoadMove replays one recorded move, running fall rounds until the move
// is committed. On error the room is left as it was before the call.
func (r *Room) LoadMove(code rune) (bool, error) {
	if r.closed {
		return false, &LogicError{Op: "load move", Err: ErrClosed}
	}
	snap := r.snapshot()
	limit := r.settleLimit()
	for i := 0; i < limit; i++ {
		falling, err := r.BeginFall(false)
		if err != nil {
			r.restore(snap)
			return false, err
		}
		if _, err := r.MakeMove(code); err != nil {
			r.restore(snap)
			return false, err
		}
		complete := r.FinishRound(false)
		if complete && falling {
			r.restore(snap)
			return false, &LoadError{Move: code, Err: ErrEarlyFinish}
		}
		if !falling {
			return complete, nil
		}
	}
	r.restore(snap)
	return false, &LoadError{Move: code, Err: ErrUnsettled}
}

// Settle runs non-interactive rounds without moves until nothing falls.
// Returns true when the room is complete afterwards.
func (r *Room) Settle() (bool, error) {
	if r.closed {
		return false, &LogicError{Op: "settle", Err: ErrClosed}
	}
	limit := r.settleLimit()
	for i := 0; i < limit; i++ {
		falling, err := r.BeginFall(false)
		if err != nil {
			return false, err
		}
		complete := r.FinishRound(false)
		if !falling {
			return complete, nil
		}
	}
	return false, &LogicError{Op: "settle", Err: ErrUnsettled}
}

// settleLimit bounds the fall rounds a single move can trigger.
func (r *Room) settleLimit() int {
	return (len(r.models) + 1) * (r.field.W() + r.field.H() + 2)
}

// IsSolvable returns false when any model is flagged wrong.
func (r *Room) IsSolvable() bool {
	for _, m := range r.models {
		if m.wrong {
			return false
		}
	}
	return true
}

// CannotMove returns true when no drivable unit has a legal move.
func (r *Room) CannotMove() bool {
	return r.controls.CannotMove()
}

// SwitchActive makes the next drivable unit active.
func (r *Room) SwitchActive() {
	r.controls.SwitchActive()
}

// Active returns the model of the active unit, or nil.
func (r *Room) Active() *Model {
	if u := r.controls.Active(); u != nil {
		return u.model
	}
	return nil
}

// Controls returns the room's control layer.
func (r *Room) Controls() *Controls { return r.controls }

// Locker returns the shared phase locker.
func (r *Room) Locker() *PhaseLocker { return r.locker }

// Moves returns the move log.
func (r *Room) Moves() string { return r.controls.Moves() }

// StepCount returns the number of committed moves.
func (r *Room) StepCount() int { return r.controls.StepCount() }

// LastImpact returns the impact severity of the latest gravity phase.
func (r *Room) LastImpact() Weight { return r.impact }

// Fresh returns true while a move may still be committed this round.
func (r *Room) Fresh() bool { return r.fresh }

// Phase returns the current round phase.
func (r *Room) Phase() Phase { return r.phase }

// W returns the room width in cells.
func (r *Room) W() int { return r.field.W() }

// H returns the room height in cells.
func (r *Room) H() int { return r.field.H() }

// Cycles returns the ticks elapsed since the room was created.
func (r *Room) Cycles() int {
	return r.timer.Tick() - r.startTick
}

// Close releases every model's cells, then the field.
func (r *Room) Close() {
	if r.closed {
		return
	}
	for _, m := range r.models {
		m.rules.base().detach()
	}
	r.field = NewField(0, 0)
	r.closed = true
}
