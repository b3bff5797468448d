package game

import (
	"fmt"
)

// ActionKind names one multi-step action in the lifecycle of a hand.
type ActionKind string

const (
	PostBlinds  ActionKind = "post.blinds"
	DealPreflop ActionKind = "deal.preflop"
	BetPreflop  ActionKind = "bet.preflop"
	DealFlop    ActionKind = "deal.flop"
	BetFlop     ActionKind = "bet.flop"
	DealTurn    ActionKind = "deal.turn"
	BetTurn     ActionKind = "bet.turn"
	DealRiver   ActionKind = "deal.river"
	BetRiver    ActionKind = "bet.river"
	Showdown    ActionKind = "showdown"
	MoveButton  ActionKind = "button.move"
)

// Lifecycle is the order actions run in during one hand.
var Lifecycle = [...]ActionKind{
	PostBlinds,
	DealPreflop,
	BetPreflop,
	DealFlop,
	BetFlop,
	DealTurn,
	BetTurn,
	DealRiver,
	BetRiver,
	Showdown,
	MoveButton,
}

// ParseActionKind resolves a name such as "deal.preflop".
func ParseActionKind(s string) (ActionKind, error) {
	for _, k := range Lifecycle {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Implemented reports whether the action has a handler.
func (k ActionKind) Implemented() bool {
	_, ok := handlers[k]
	return ok
}

// Progress is the in-flight state of one action. The concrete type depends
// on the kind, e.g. *PreflopDeal for DealPreflop.
type Progress interface {
	Kind() ActionKind
	// NextSeat is the seat the action acts on next.
	NextSeat() int
	clone() Progress
}

type handler interface {
	start(g *Game) (Progress, error)
	// next advances p by one step and reports whether the action finished.
	next(g *Game, p Progress) (done bool, err error)
}

var handlers = map[ActionKind]handler{
	DealPreflop: preflopDealer{},
}

// Start begins an action. Only one instance of each kind may be in flight.
func (g *Game) Start(kind ActionKind) error {
	h, ok := handlers[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, kind)
	}
	if _, busy := g.actions[kind]; busy {
		return &InProgressError{Action: kind}
	}
	p, err := h.start(g)
	if err != nil {
		return fmt.Errorf("start %s: %w", kind, err)
	}
	g.actions[kind] = p
	g.logger.Debug("Action started", "action", kind, "next", p.NextSeat())
	return nil
}

// Next advances an in-flight action by one step. When the step completes the
// action its entry is removed and done is true.
func (g *Game) Next(kind ActionKind) (done bool, err error) {
	h, ok := handlers[kind]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownAction, kind)
	}
	p, ok := g.actions[kind]
	if !ok {
		return false, fmt.Errorf("%s: %w", kind, ErrActionNotStarted)
	}
	done, err = h.next(g, p)
	if err != nil {
		return false, fmt.Errorf("%s: %w", kind, err)
	}
	if done {
		delete(g.actions, kind)
		g.logger.Debug("Action complete", "action", kind)
	}
	return done, nil
}

// InProgress reports whether kind is currently in flight.
func (g *Game) InProgress(kind ActionKind) bool {
	_, ok := g.actions[kind]
	return ok
}

// Progress returns a copy of the in-flight state for kind.
func (g *Game) Progress(kind ActionKind) (Progress, bool) {
	p, ok := g.actions[kind]
	if !ok {
		return nil, false
	}
	return p.clone(), true
}

// Actions returns the kinds currently in flight, in lifecycle order.
func (g *Game) Actions() []ActionKind {
	var out []ActionKind
	for _, k := range Lifecycle {
		if _, ok := g.actions[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
