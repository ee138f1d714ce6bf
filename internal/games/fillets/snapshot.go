package fillets

// StateType represents the controller's current state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePlanning StateType = "planning"
	StateLocked   StateType = "locked"
	StateComplete StateType = "complete"
	StateLost     StateType = "lost"
	StatePaused   StateType = "paused"
)

// Snapshot captures the controller state for determinism testing.
type Snapshot struct {
	Tick        int
	Moves       string
	Cycles      int
	Active      int // Index of the active fish, -1 when none
	Locked      int
	Fingerprint string
	State       StateType
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, Active: -1, State: StatePlaying}
	if g.room == nil {
		return snap
	}

	snap.Moves = g.room.Moves()
	snap.Cycles = g.room.Cycles()
	snap.Locked = g.room.Locker().Locked()
	snap.Fingerprint = g.room.Fingerprint()
	if m := g.room.Active(); m != nil {
		snap.Active = m.Index()
	}

	switch {
	case g.paused:
		snap.State = StatePaused
	case g.complete:
		snap.State = StateComplete
	case g.lost:
		snap.State = StateLost
	case g.planner.IsPlanning() || len(g.demo) > 0:
		snap.State = StatePlanning
	case snap.Locked > 0:
		snap.State = StateLocked
	}
	return snap
}
