package poker

import "fmt"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Source is the random source used for dealing. *math/rand/v2.Rand satisfies it;
// a seeded source (see internal/randutil) reproduces the same deals.
type Source interface {
	IntN(n int) int
}

// Deck is the pool of cards not yet dealt. Order carries no meaning: cards are
// drawn uniformly at random from whatever remains. Deck values are never
// modified by Deal; callers replace their deck with the returned remainder.
type Deck struct {
	cards []Card
}

// NewDeck returns all 52 rank and suit combinations, each exactly once.
func NewDeck() Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return Deck{cards: cards}
}

// Len returns the number of cards remaining.
func (d Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards.
func (d Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Contains reports whether the card is still in the deck.
func (d Deck) Contains(c Card) bool {
	for _, card := range d.cards {
		if card == c {
			return true
		}
	}
	return false
}

// Deal draws count cards one at a time, each chosen uniformly from the cards
// still remaining. dealt is in draw order. The receiver is left untouched.
func (d Deck) Deal(rng Source, count int) (remaining Deck, dealt []Card, err error) {
	if count < 0 {
		return d, nil, fmt.Errorf("%w: cannot deal %d cards", ErrValidation, count)
	}
	if count > len(d.cards) {
		return d, nil, fmt.Errorf("%w: requested %d, %d left", ErrEmptyDeck, count, len(d.cards))
	}
	if rng == nil {
		return d, nil, fmt.Errorf("%w: nil random source", ErrValidation)
	}

	pool := make([]Card, len(d.cards))
	copy(pool, d.cards)

	dealt = make([]Card, 0, count)
	for range count {
		last := len(pool) - 1
		i := rng.IntN(len(pool))
		dealt = append(dealt, pool[i])
		pool[i] = pool[last]
		pool = pool[:last]
	}

	return Deck{cards: pool}, dealt, nil
}

// Remove returns a deck without the given cards. Every card must be present,
// otherwise ErrValidation is returned.
func (d Deck) Remove(cards ...Card) (Deck, error) {
	pool := make([]Card, len(d.cards))
	copy(pool, d.cards)

	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return d, err
		}
		idx := -1
		for i, card := range pool {
			if card == c {
				idx = i
				break
			}
		}
		if idx < 0 {
			return d, fmt.Errorf("%w: %s is not in the deck", ErrValidation, c)
		}
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return Deck{cards: pool}, nil
}
