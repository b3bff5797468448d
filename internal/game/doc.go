// Package game implements the table state machine for Texas Hold'em.
//
// The main type is Game, which owns the seats, button, blinds, deck and the
// registry of in-flight multi-step actions for one table.
//
// # Basic Usage
//
// Seat players and deal preflop one card at a time:
//
//	g, err := game.New(game.Config{Seats: 6})
//	_ = g.Seat(0, game.Player{Name: "alice", Stack: 1000})
//	_ = g.Seat(3, game.Player{Name: "bob", Stack: 1000})
//	_ = g.StartPreflop()
//	for {
//	    done, err := g.NextPreflop()
//	    if err != nil || done {
//	        break
//	    }
//	}
//
// # Actions
//
// Every step of a hand is an ActionKind. Start creates the action's progress
// record, Next advances it by one step, and the record is removed when the
// action completes; at most one record exists per kind. Only DealPreflop has a
// handler today. Later streets (blinds, betting, flop, turn, river, showdown,
// button move) are declared in Lifecycle and plug in as further handlers.
//
// # Deterministic Testing
//
// Inject a seeded RNG and a quartz mock clock:
//
//	g, _ := game.New(game.Config{Rand: randutil.New(42), Clock: quartz.NewMock(t)})
//
// # Concurrency
//
// Game does no locking. Table wraps a Game with a mutex for callers that share
// it between goroutines, and can drive an action on a clock.
package game
