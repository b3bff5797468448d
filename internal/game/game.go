package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-rules/internal/gameid"
	"github.com/lox/holdem-rules/internal/randutil"
	"github.com/lox/holdem-rules/internal/seats"
	"github.com/lox/holdem-rules/poker"
)

const (
	// DefaultSeats is the table size used when Config.Seats is zero.
	DefaultSeats = 6
	// MaxSeats keeps two hole cards per seat plus a board within one deck.
	MaxSeats = 22
)

// Blinds are the forced bets for a hand.
type Blinds struct {
	Ante  int `json:"ante"`
	Small int `json:"small"`
	Big   int `json:"big"`
}

// DefaultBlinds is used when Config.Blinds is left zero.
var DefaultBlinds = Blinds{Ante: 5, Small: 25, Big: 50}

// Config configures a new Game. Zero values pick defaults.
type Config struct {
	ID     string
	Seats  int
	Button int
	Blinds Blinds
	Rand   poker.Source
	Clock  quartz.Clock
	Logger *log.Logger
}

// Game is one table: seats, button, blinds, the deck and the actions in
// flight. A Game is not safe for concurrent use; see Table.
type Game struct {
	id      string
	button  int
	blinds  Blinds
	seats   []*Seat
	deck    poker.Deck
	actions map[ActionKind]Progress

	rng    poker.Source
	clock  quartz.Clock
	logger *log.Logger
}

// New creates a game with every seat empty, a full deck and no actions.
func New(cfg Config) (*Game, error) {
	if cfg.Seats == 0 {
		cfg.Seats = DefaultSeats
	}
	if cfg.Blinds == (Blinds{}) {
		cfg.Blinds = DefaultBlinds
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Rand == nil {
		cfg.Rand = randutil.New(cfg.Clock.Now("game", "seed").UnixNano())
	}
	if cfg.ID == "" {
		cfg.ID = gameid.NewGenerator(nil, cfg.Clock).Generate()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	g := &Game{
		id:      cfg.ID,
		button:  cfg.Button,
		blinds:  cfg.Blinds,
		seats:   make([]*Seat, cfg.Seats),
		deck:    poker.NewDeck(),
		actions: make(map[ActionKind]Progress),
		rng:     cfg.Rand,
		clock:   cfg.Clock,
		logger:  cfg.Logger.WithPrefix("game").With("game_id", cfg.ID),
	}
	g.logger.Debug("Game created", "seats", cfg.Seats, "button", cfg.Button,
		"ante", cfg.Blinds.Ante, "small", cfg.Blinds.Small, "big", cfg.Blinds.Big)
	return g, nil
}

func validateConfig(cfg Config) error {
	if cfg.Seats < 1 || cfg.Seats > MaxSeats {
		return fmt.Errorf("%w: seats must be between 1 and %d, got %d", ErrInvalidConfig, MaxSeats, cfg.Seats)
	}
	if cfg.Button < 0 || cfg.Button >= cfg.Seats {
		return fmt.Errorf("%w: button %d outside %d seats", ErrInvalidConfig, cfg.Button, cfg.Seats)
	}
	b := cfg.Blinds
	if b.Ante < 0 || b.Small < 0 || b.Big < 0 {
		return fmt.Errorf("%w: blinds must not be negative", ErrInvalidConfig)
	}
	if b.Small > b.Big {
		return fmt.Errorf("%w: small blind %d exceeds big blind %d", ErrInvalidConfig, b.Small, b.Big)
	}
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Button returns the dealer button's seat index.
func (g *Game) Button() int { return g.button }

// Blinds returns the blind structure.
func (g *Game) Blinds() Blinds { return g.blinds }

// SeatCount returns the fixed number of seats.
func (g *Game) SeatCount() int { return len(g.seats) }

// Deck returns the cards not yet dealt.
func (g *Game) Deck() poker.Deck { return g.deck }

// SeatAt returns a copy of the seat at index; ok is false for an empty seat.
func (g *Game) SeatAt(index int) (Seat, bool, error) {
	if err := g.checkIndex(index); err != nil {
		return Seat{}, false, err
	}
	s := g.seats[index]
	if s == nil {
		return Seat{}, false, nil
	}
	return *s.clone(), true, nil
}

// Occupied returns the indexes of occupied seats in seat order.
func (g *Game) Occupied() []int {
	var out []int
	for i, s := range g.seats {
		if occupied(s) {
			out = append(out, i)
		}
	}
	return out
}

// NextOccupied returns the first occupied seat after ref, wrapping around.
func (g *Game) NextOccupied(ref int) (int, bool) {
	return seats.NextFrom(g.seats, occupied, ref)
}

// Seat puts player in the seat at index with no cards. Seats cannot change
// hands while an action is in flight.
func (g *Game) Seat(index int, player Player) error {
	if err := g.checkIndex(index); err != nil {
		return err
	}
	if g.seats[index] != nil {
		return fmt.Errorf("seat %d (%s): %w", index, g.seats[index].Player, ErrSeatOccupied)
	}
	if err := g.checkIdle(); err != nil {
		return err
	}
	g.seats[index] = &Seat{Player: player.Name, Stack: player.Stack}
	g.logger.Debug("Player seated", "seat", index, "player", player.Name, "stack", player.Stack)
	return nil
}

// Leave empties the seat at index.
func (g *Game) Leave(index int) error {
	if err := g.checkIndex(index); err != nil {
		return err
	}
	if g.seats[index] == nil {
		return fmt.Errorf("seat %d: %w", index, ErrSeatEmpty)
	}
	if err := g.checkIdle(); err != nil {
		return err
	}
	g.logger.Debug("Player left", "seat", index, "player", g.seats[index].Player)
	g.seats[index] = nil
	return nil
}

// ResetHand gathers the cards and shuffles a fresh deck for the next hand.
func (g *Game) ResetHand() error {
	if err := g.checkIdle(); err != nil {
		return err
	}
	for _, s := range g.seats {
		if s != nil {
			s.Cards = nil
			s.Folded = false
		}
	}
	g.deck = poker.NewDeck()
	return nil
}

// EvaluateSeat ranks the best five cards from a seat's hole cards and the board.
func (g *Game) EvaluateSeat(index int, board []poker.Card) (poker.HandRank, error) {
	if err := g.checkIndex(index); err != nil {
		return poker.HandRank{}, err
	}
	s := g.seats[index]
	if s == nil {
		return poker.HandRank{}, fmt.Errorf("seat %d: %w", index, ErrSeatEmpty)
	}
	cards := append(append([]poker.Card{}, s.Cards...), board...)
	rank, _, err := poker.Best(cards)
	if err != nil {
		return poker.HandRank{}, fmt.Errorf("seat %d: %w", index, err)
	}
	return rank, nil
}

func (g *Game) checkIndex(index int) error {
	if index < 0 || index >= len(g.seats) {
		return &RangeError{Index: index, Seats: len(g.seats)}
	}
	return nil
}

func (g *Game) checkIdle() error {
	if kinds := g.Actions(); len(kinds) > 0 {
		return &InProgressError{Action: kinds[0]}
	}
	return nil
}
