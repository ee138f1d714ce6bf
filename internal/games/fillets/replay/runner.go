package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/levels"
)

// ErrNotSolved is returned by Verify when a move log leaves the room incomplete.
var ErrNotSolved = errors.New("moves do not solve the level")

// Result describes a finished replay.
type Result struct {
	Complete    bool
	Solvable    bool
	Steps       int
	Fingerprint string
}

// Run replays moves on a fresh room built from lvl and lets the room settle.
func Run(lvl *levels.Level, moves string, opts ...core.Option) (Result, error) {
	room, err := lvl.Build(opts...)
	if err != nil {
		return Result{}, err
	}
	defer room.Close()

	if err := Apply(room, moves); err != nil {
		return Result{}, err
	}
	complete, err := room.Settle()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Complete:    complete,
		Solvable:    room.IsSolvable(),
		Steps:       room.StepCount(),
		Fingerprint: room.Fingerprint(),
	}, nil
}

// Apply loads every move into room. The failing move's position is reported
// and the room is left as it was before that move.
func Apply(room *core.Room, moves string) error {
	i := 0
	for _, code := range moves {
		if _, err := room.LoadMove(code); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
		i++
	}
	return nil
}

// Verify checks that moves solve lvl.
func Verify(lvl *levels.Level, moves string) (Result, error) {
	res, err := Run(lvl, moves)
	if err != nil {
		return res, err
	}
	if !res.Complete {
		return res, fmt.Errorf("level %s: %w", lvl.ID, ErrNotSolved)
	}
	return res, nil
}
