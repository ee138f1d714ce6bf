// Package plan holds scripted move sequences for solution playback and demos.
package plan

import "strings"

// Planner is a queue of move codes fed to a room one per fresh round.
// Physical events in the room interrupt it, which drops the rest of the queue.
type Planner struct {
	queue       []rune
	interrupted int
}

// New creates an empty planner.
func New() *Planner {
	return &Planner{}
}

// Schedule appends move codes to the queue. Whitespace is ignored.
func (p *Planner) Schedule(codes string) {
	for _, r := range codes {
		if strings.ContainsRune(" \t\r\n", r) {
			continue
		}
		p.queue = append(p.queue, r)
	}
}

// Next pops the next move code.
func (p *Planner) Next() (rune, bool) {
	if len(p.queue) == 0 {
		return 0, false
	}
	r := p.queue[0]
	p.queue = p.queue[1:]
	return r, true
}

// Peek returns the next move code without removing it.
func (p *Planner) Peek() (rune, bool) {
	if len(p.queue) == 0 {
		return 0, false
	}
	return p.queue[0], true
}

// IsPlanning reports whether scripted moves are pending.
func (p *Planner) IsPlanning() bool {
	return len(p.queue) > 0
}

// Remaining returns the number of queued moves.
func (p *Planner) Remaining() int {
	return len(p.queue)
}

// InterruptPlan drops every queued move.
func (p *Planner) InterruptPlan() {
	if len(p.queue) > 0 {
		p.interrupted++
	}
	p.queue = p.queue[:0]
}

// Interrupts counts how many non-empty plans were cut short.
func (p *Planner) Interrupts() int {
	return p.interrupted
}
