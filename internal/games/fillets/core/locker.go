package core

// PhaseLocker counts the rounds an animation still needs before new input.
// It is advisory: the engine never waits on it, the driving loop does.
type PhaseLocker struct {
	phases int
}

// NewPhaseLocker creates an unlocked locker.
func NewPhaseLocker() *PhaseLocker {
	return &PhaseLocker{}
}

// Ensure raises the counter to at least n.
func (l *PhaseLocker) Ensure(n int) {
	if n > l.phases {
		l.phases = n
	}
}

// Decrease counts down one elapsed round.
func (l *PhaseLocker) Decrease() {
	if l.phases > 0 {
		l.phases--
	}
}

// Locked returns the number of rounds still locked.
func (l *PhaseLocker) Locked() int {
	return l.phases
}

// Reset unlocks immediately.
func (l *PhaseLocker) Reset() {
	l.phases = 0
}

// Phases holds how many rounds each visible event locks.
type Phases struct {
	Move int
	Fall int
	Exit int
}

// DefaultPhases returns the lock lengths used when none are configured.
func DefaultPhases() Phases {
	return Phases{Move: 2, Fall: 1, Exit: 3}
}
