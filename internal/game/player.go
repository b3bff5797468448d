package game

import (
	"github.com/lox/holdem-rules/poker"
)

// Player is someone taking a seat.
type Player struct {
	Name  string `json:"name"`
	Stack int    `json:"stack"`
}

// Seat is an occupied seat. Empty seats are nil in Game and null in snapshots.
type Seat struct {
	Player string       `json:"player"`
	Cards  []poker.Card `json:"cards"`
	Stack  int          `json:"stack"`
	Folded bool         `json:"folded"`
}

// HoleCards is the number of cards each seat receives preflop.
const HoleCards = 2

func occupied(s *Seat) bool {
	return s != nil
}

func (s *Seat) clone() *Seat {
	if s == nil {
		return nil
	}
	c := *s
	c.Cards = append(make([]poker.Card, 0, HoleCards), s.Cards...)
	return &c
}
