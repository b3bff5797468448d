package game

import (
	"time"

	"github.com/lox/holdem-rules/internal/seats"
)

// PreflopDeal tracks a round-robin deal of hole cards.
type PreflopDeal struct {
	Next      int       `json:"next"`
	Dealt     int       `json:"dealt"`
	StartedAt time.Time `json:"started_at"`
}

func (*PreflopDeal) Kind() ActionKind { return DealPreflop }

func (p *PreflopDeal) NextSeat() int { return p.Next }

func (p *PreflopDeal) clone() Progress {
	c := *p
	return &c
}

// preflopDealer deals one card per step, seat by seat to the left of the
// button, the way a dealer pitches cards around the table. The step that
// reaches a seat already holding two cards ends the deal without dealing.
type preflopDealer struct{}

func (preflopDealer) start(g *Game) (Progress, error) {
	first, ok := seats.NextFrom(g.seats, occupied, g.button)
	if !ok {
		return nil, ErrNoPlayers
	}
	return &PreflopDeal{Next: first, StartedAt: g.clock.Now("game", "preflop")}, nil
}

func (preflopDealer) next(g *Game, p Progress) (bool, error) {
	deal := p.(*PreflopDeal)

	seat := g.seats[deal.Next]
	if len(seat.Cards) >= HoleCards {
		return true, nil
	}

	remaining, dealt, err := g.deck.Deal(g.rng, 1)
	if err != nil {
		return false, err
	}
	g.deck = remaining
	seat.Cards = append(seat.Cards, dealt...)
	deal.Dealt++
	g.logger.Debug("Dealt card", "seat", deal.Next, "player", seat.Player, "card", dealt[0])

	if idx, ok := seats.NextFrom(g.seats, occupied, deal.Next); ok {
		deal.Next = idx
	}
	return false, nil
}

// StartPreflop begins dealing hole cards from the seat after the button.
func (g *Game) StartPreflop() error {
	return g.Start(DealPreflop)
}

// NextPreflop deals the next hole card. It returns true once every occupied
// seat holds two cards; that call deals nothing.
func (g *Game) NextPreflop() (bool, error) {
	return g.Next(DealPreflop)
}
