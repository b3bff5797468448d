package poker

import (
	"fmt"
	"strings"
)

// Category names a class of 5-card hand. The string values are part of the
// wire format consumed by hand-history recorders and clients.
type Category string

const (
	RoyalFlush    Category = "royal flush"
	StraightFlush Category = "straight flush"
	FourOfAKind   Category = "4 of a kind"
	FullHouse     Category = "full house"
	Flush         Category = "flush"
	Straight      Category = "straight"
	ThreeOfAKind  Category = "3 of a kind"
	TwoPair       Category = "2 pair"
	OnePair       Category = "1 pair"
	HighCard      Category = "high card"
)

// Categories lists every category from strongest to weakest.
var Categories = [...]Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// Strength orders categories: high card is 1, royal flush is 10, unknown is 0.
func (c Category) Strength() int {
	for i, cat := range Categories {
		if cat == c {
			return len(Categories) - i
		}
	}
	return 0
}

// HandRank is the result of classifying five cards: the category name plus the
// tie-break fields that category defines. Fields a category does not use are
// left zero and omitted from JSON.
type HandRank struct {
	Name    Category `json:"name"`
	From    Rank     `json:"from,omitempty"`
	To      Rank     `json:"to,omitempty"`
	Of      Rank     `json:"of,omitempty"`
	And     Rank     `json:"and,omitempty"`
	High    Rank     `json:"high,omitempty"`
	Kicker  Rank     `json:"kicker,omitempty"`
	Rank    Rank     `json:"rank,omitempty"`
	Kickers []Rank   `json:"kickers,omitempty"`

	// every rank that matters for ties, most significant first
	tiebreak []Rank
}

// String describes the hand, e.g. "full house, 10s over 3s".
func (h HandRank) String() string {
	switch h.Name {
	case RoyalFlush:
		return string(h.Name)
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s to %s", h.Name, h.From, h.To)
	case FourOfAKind:
		return fmt.Sprintf("%s, %s", h.Name, h.Of)
	case FullHouse:
		return fmt.Sprintf("%s, %s over %s", h.Name, h.Of, h.And)
	case Flush:
		return fmt.Sprintf("%s, %s high", h.Name, h.High)
	case ThreeOfAKind, OnePair:
		return fmt.Sprintf("%s, %s with %s", h.Name, h.Of, joinRanks(h.Kickers))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s with %s", h.Name, h.Of, h.And, h.Kicker)
	case HighCard:
		return fmt.Sprintf("%s, %s with %s", h.Name, h.Rank, joinRanks(h.Kickers))
	}
	return "unknown"
}

func joinRanks(ranks []Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// Compare orders two hands: negative when a loses to b, zero on a tie, positive
// when a wins. Hands decoded from JSON compare on their exported fields only.
func Compare(a, b HandRank) int {
	if d := a.Name.Strength() - b.Name.Strength(); d != 0 {
		return d
	}
	ka, kb := a.keys(), b.keys()
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if ka[i] != kb[i] {
			return int(ka[i]) - int(kb[i])
		}
	}
	return len(ka) - len(kb)
}

func (h HandRank) keys() []Rank {
	if h.tiebreak != nil {
		return h.tiebreak
	}
	switch h.Name {
	case StraightFlush, Straight:
		return []Rank{h.To}
	case FourOfAKind:
		return []Rank{h.Of}
	case FullHouse:
		return []Rank{h.Of, h.And}
	case Flush:
		return []Rank{h.High}
	case ThreeOfAKind, OnePair:
		return append([]Rank{h.Of}, h.Kickers...)
	case TwoPair:
		return []Rank{h.Of, h.And, h.Kicker}
	case HighCard:
		return append([]Rank{h.Rank}, h.Kickers...)
	}
	return nil
}
