package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

type modelSnapshot struct {
	loc      Coord
	alive    bool
	out      bool
	wrong    bool
	state    State
	pending  Dir
	falling  bool
	dropped  bool
	lastFell bool
}

type roomSnapshot struct {
	models  []modelSnapshot
	active  int
	moves   []rune
	steps   int
	moved   bool
	blocked bool
	impact  Weight
	fresh   bool
	phase   Phase
	locked  int
}

func (r *Room) snapshot() roomSnapshot {
	snap := roomSnapshot{
		models:  make([]modelSnapshot, len(r.models)),
		active:  r.controls.active,
		moves:   append([]rune(nil), r.controls.moves...),
		steps:   r.controls.steps,
		moved:   r.controls.moved,
		blocked: r.controls.blocked,
		impact:  r.impact,
		fresh:   r.fresh,
		phase:   r.phase,
		locked:  r.locker.Locked(),
	}
	for i, m := range r.models {
		b := m.rules.base()
		snap.models[i] = modelSnapshot{
			loc:      m.loc,
			alive:    m.alive,
			out:      m.out,
			wrong:    m.wrong,
			state:    m.state,
			pending:  b.pending,
			falling:  b.falling,
			dropped:  b.dropped,
			lastFell: b.lastFell,
		}
	}
	return snap
}

func (r *Room) restore(snap roomSnapshot) {
	r.field.clear()
	for i, m := range r.models {
		s := snap.models[i]
		b := m.rules.base()
		m.loc = s.loc
		m.alive = s.alive
		m.out = s.out
		m.wrong = s.wrong
		m.state = s.state
		b.pending = s.pending
		b.falling = s.falling
		b.dropped = s.dropped
		b.lastFell = s.lastFell
	}
	for _, m := range r.models {
		if m.out {
			continue
		}
		if err := m.rules.base().occupy(); err != nil {
			panic(&LogicError{Op: "restore", Err: err})
		}
	}

	r.controls.active = snap.active
	r.controls.moves = snap.moves
	r.controls.steps = snap.steps
	r.controls.moved = snap.moved
	r.controls.blocked = snap.blocked
	r.impact = snap.impact
	r.fresh = snap.fresh
	r.phase = snap.phase
	r.locker.Reset()
	r.locker.Ensure(snap.locked)
}

// Fingerprint returns a digest of every model's position and flags.
// Two rooms built from the same level and fed the same moves share it.
func (r *Room) Fingerprint() string {
	h := sha256.New()
	buf := make([]byte, 8)
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf, uint64(int64(v)))
		h.Write(buf)
	}
	flag := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	for _, m := range r.models {
		put(m.index)
		put(m.loc.X)
		put(m.loc.Y)
		put(flag(m.alive))
		put(flag(m.out))
		put(flag(m.wrong))
	}
	return hex.EncodeToString(h.Sum(nil))
}
