package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// errActionComplete stops an AutoDeal ticker once its action has finished.
var errActionComplete = errors.New("game: action complete")

// Table serializes access to one Game so a transport can share it between
// goroutines. All reads and writes go through Do or Snapshot.
type Table struct {
	mu     sync.Mutex
	game   *Game
	clock  quartz.Clock
	logger *log.Logger
}

// NewTable wraps g. The table takes ownership; callers must not touch g directly.
func NewTable(g *Game) *Table {
	return &Table{
		game:   g,
		clock:  g.clock,
		logger: g.logger.WithPrefix("table"),
	}
}

// ID returns the game identifier.
func (t *Table) ID() string {
	return t.game.id
}

// Do runs fn with exclusive access to the game.
func (t *Table) Do(fn func(*Game) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.game)
}

// Snapshot returns a consistent copy of the game state.
func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Snapshot()
}

// AutoDeal starts kind and advances it one step every interval on the game's
// clock until it completes. Wait on the returned Waiter returns nil on
// completion, the step error if one fails, or the context error if ctx ends
// first. A cancelled deal is left in flight.
func (t *Table) AutoDeal(ctx context.Context, kind ActionKind, interval time.Duration) (quartz.Waiter, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidConfig, interval)
	}
	if err := t.Do(func(g *Game) error { return g.Start(kind) }); err != nil {
		return nil, err
	}
	t.logger.Info("Auto-dealing", "action", kind, "interval", interval)

	steps := 0
	w := t.clock.TickerFunc(ctx, interval, func() error {
		var done bool
		err := t.Do(func(g *Game) error {
			var err error
			done, err = g.Next(kind)
			return err
		})
		if err != nil {
			t.logger.Error("Auto-deal step failed", "action", kind, "error", err)
			return err
		}
		steps++
		if done {
			t.logger.Info("Auto-deal finished", "action", kind, "steps", steps)
			return errActionComplete
		}
		return nil
	}, "table", "autodeal")
	return completionWaiter{w}, nil
}

type completionWaiter struct {
	quartz.Waiter
}

func (w completionWaiter) Wait(tags ...string) error {
	err := w.Waiter.Wait(tags...)
	if errors.Is(err, errActionComplete) {
		return nil
	}
	return err
}
