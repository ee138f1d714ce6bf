package core

// InputSource tells which movement directions are asserted this tick.
type InputSource interface {
	Asserted(d Dir) bool
}

// Planner runs scripted move sequences; physical events interrupt it.
type Planner interface {
	InterruptPlan()
}

// Sound plays named sound cues.
type Sound interface {
	PlaySound(name string, volume int)
}

// Timer reports the current tick.
type Timer interface {
	Tick() int
}

// NoInput asserts nothing.
type NoInput struct{}

func (NoInput) Asserted(Dir) bool { return false }

// Press asserts a single direction.
type Press Dir

func (p Press) Asserted(d Dir) bool { return d != DirNo && Dir(p) == d }

type nopPlanner struct{}

func (nopPlanner) InterruptPlan() {}

type nopSound struct{}

func (nopSound) PlaySound(string, int) {}

type nopTimer struct{}

func (nopTimer) Tick() int { return 0 }

// Sound cue names.
const (
	SoundImpactLight = "impact_light"
	SoundImpactHeavy = "impact_heavy"
	SoundDeadSmall   = "dead_small"
	SoundDeadBig     = "dead_big"
)
