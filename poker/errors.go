package poker

import "errors"

var (
	// ErrEmptyDeck is returned when more cards are requested than remain in the deck.
	ErrEmptyDeck = errors.New("poker: not enough cards left in deck")

	// ErrValidation is wrapped by every error caused by malformed cards or hands.
	ErrValidation = errors.New("poker: validation failed")
)
