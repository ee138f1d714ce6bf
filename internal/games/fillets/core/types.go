// Package core implements the round-resolution engine of the fillets puzzle.
// Models occupy cells of a Field, fall under gravity, push each other and
// leave the room; the Room advances all of them one discrete round at a time.
// This package is UI-agnostic and deterministic.
package core

// Dir represents a movement direction.
type Dir uint8

const (
	DirNo Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// MoveDirs lists the four movement directions in the order units bind codes.
var MoveDirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNo:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Fall is the outcome of a model's gravity check for one round.
type Fall uint8

const (
	FallNone Fall = iota // did not fall
	FallNow              // dropped and is still in mid-fall
	FallLast             // landed this round
)

// String returns the string representation of a fall result.
func (f Fall) String() string {
	switch f {
	case FallNone:
		return "none"
	case FallNow:
		return "now"
	case FallLast:
		return "last"
	default:
		return "unknown"
	}
}

// Phase is the state of the round state machine.
type Phase uint8

const (
	PhaseFresh Phase = iota
	PhasePreparing
	PhaseExitCheck
	PhaseGravity
	PhaseFinishing
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseFresh:
		return "fresh"
	case PhasePreparing:
		return "preparing"
	case PhaseExitCheck:
		return "exit-check"
	case PhaseGravity:
		return "gravity"
	case PhaseFinishing:
		return "finishing"
	default:
		return "unknown"
	}
}
