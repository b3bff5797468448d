package poker

import (
	"fmt"
	"strings"
)

// Suit is a card suit. The zero value is not a valid suit.
type Suit string

const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits lists every suit in a stable order.
var Suits = [...]Suit{Hearts, Clubs, Diamonds, Spades}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	switch s {
	case Hearts, Clubs, Diamonds, Spades:
		return true
	}
	return false
}

// Letter returns the single-letter notation (h, c, d, s).
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "h"
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank valued 2..14 with the ace high. The zero value means
// "no rank" and is omitted from JSON.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from two up to ace.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid reports whether r is a real card rank.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the rank name used on the wire: "ace", "2".."10", "jack", "queen", "king".
func (r Rank) String() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Short returns the compact notation used in card strings (A, K, Q, J, 10..2).
func (r Rank) Short() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return r.String()
}

// MarshalText encodes the rank by name.
func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: rank %d", ErrValidation, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText accepts rank names ("queen") and short forms ("Q", "10", "T").
func (r *Rank) UnmarshalText(b []byte) error {
	parsed, err := ParseRank(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRank parses a rank by name or short form, case-insensitively.
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "ace":
		return Ace, nil
	case "k", "king":
		return King, nil
	case "q", "queen":
		return Queen, nil
	case "j", "jack":
		return Jack, nil
	case "t", "10":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrValidation, s)
}

// ParseSuit parses a suit by name or letter.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hearts":
		return Hearts, nil
	case "c", "clubs":
		return Clubs, nil
	case "d", "diamonds":
		return Diamonds, nil
	case "s", "spades":
		return Spades, nil
	}
	return "", fmt.Errorf("%w: unknown suit %q", ErrValidation, s)
}

// Card is an immutable playing card.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard creates a card. It does not validate; use Validate for untrusted input.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Validate reports an ErrValidation error if the card is outside the rank/suit domain.
func (c Card) Validate() error {
	if !c.Rank.Valid() {
		return fmt.Errorf("%w: card has invalid rank %d", ErrValidation, int(c.Rank))
	}
	if !c.Suit.Valid() {
		return fmt.Errorf("%w: card has invalid suit %q", ErrValidation, string(c.Suit))
	}
	return nil
}

// String returns the short notation, e.g. "Ac" or "10h".
func (c Card) String() string {
	return c.Rank.Short() + c.Suit.Letter()
}

// Pretty returns the card with a suit symbol, e.g. "A♣".
func (c Card) Pretty() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// ParseCard parses short notation: a rank (A, K, Q, J, T, 10, 9..2) followed by a
// suit letter (h, c, d, s). Parsing is case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: invalid card %q", ErrValidation, s)
	}
	rank, err := ParseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("parse card %q: %w", s, err)
	}
	suit, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("parse card %q: %w", s, err)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses whitespace or comma separated cards, e.g. "Ac Kc,Qc".
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures; it panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards in short notation without separators, e.g. "AcKd".
func FormatCards(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
