package game

import (
	"encoding/json"
)

// Snapshot is the broadcastable view of a game. Empty seats are null.
type Snapshot struct {
	ID       string                  `json:"id"`
	Button   int                     `json:"button"`
	Blinds   Blinds                  `json:"blinds"`
	Seats    []*Seat                 `json:"seats"`
	Actions  map[ActionKind]Progress `json:"actions"`
	DeckSize int                     `json:"deck_size"`
}

// Snapshot copies the current state. The copy shares nothing with g.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ID:       g.id,
		Button:   g.button,
		Blinds:   g.blinds,
		Seats:    make([]*Seat, len(g.seats)),
		Actions:  make(map[ActionKind]Progress, len(g.actions)),
		DeckSize: g.deck.Len(),
	}
	for i, seat := range g.seats {
		s.Seats[i] = seat.clone()
	}
	for k, p := range g.actions {
		s.Actions[k] = p.clone()
	}
	return s
}

// Occupied counts the occupied seats.
func (s Snapshot) Occupied() int {
	n := 0
	for _, seat := range s.Seats {
		if seat != nil {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the snapshot; Progress values encode as their concrete type.
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}
