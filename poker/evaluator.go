package poker

import (
	"fmt"
	"sort"
)

// HandSize is the number of cards Evaluate classifies.
const HandSize = 5

// Evaluate classifies exactly five cards. Categories are tested from royal flush
// down to high card and the first match wins.
func Evaluate(cards []Card) (HandRank, error) {
	if len(cards) != HandSize {
		return HandRank{}, fmt.Errorf("%w: need %d cards, got %d", ErrValidation, HandSize, len(cards))
	}
	if err := validateDistinct(cards); err != nil {
		return HandRank{}, err
	}
	return evaluate(cards), nil
}

// Best returns the strongest 5-card hand that can be made from 5 to 7 cards,
// together with the cards that form it.
func Best(cards []Card) (HandRank, []Card, error) {
	if len(cards) < HandSize || len(cards) > 7 {
		return HandRank{}, nil, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrValidation, len(cards))
	}
	if err := validateDistinct(cards); err != nil {
		return HandRank{}, nil, err
	}

	var (
		best     HandRank
		bestHand []Card
		combo    [HandSize]Card
	)
	n := len(cards)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						combo = [HandSize]Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						rank := evaluate(combo[:])
						if bestHand == nil || Compare(rank, best) > 0 {
							best = rank
							bestHand = append(bestHand[:0], combo[:]...)
						}
					}
				}
			}
		}
	}
	return best, bestHand, nil
}

func validateDistinct(cards []Card) error {
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate card %s", ErrValidation, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// group is a rank together with how many times it appears in the hand.
type group struct {
	rank  Rank
	count int
}

func evaluate(cards []Card) HandRank {
	counts := make(map[Rank]int, HandSize)
	flush := true
	for i, c := range cards {
		counts[c.Rank]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	// largest group first, higher rank first within equal counts
	groups := make([]group, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, group{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	ordered := make([]Rank, 0, HandSize)
	for _, g := range groups {
		for range g.count {
			ordered = append(ordered, g.rank)
		}
	}

	from, to, straight := straightRun(groups)

	switch {
	case flush && straight && from == Ten && to == Ace:
		return HandRank{Name: RoyalFlush, tiebreak: []Rank{Ace}}
	case flush && straight:
		return HandRank{Name: StraightFlush, From: from, To: to, tiebreak: []Rank{to}}
	case groups[0].count == 4:
		return HandRank{Name: FourOfAKind, Of: groups[0].rank, tiebreak: []Rank{groups[0].rank, groups[1].rank}}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Name: FullHouse, Of: groups[0].rank, And: groups[1].rank, tiebreak: []Rank{groups[0].rank, groups[1].rank}}
	case flush:
		return HandRank{Name: Flush, High: ordered[0], tiebreak: ordered}
	case straight:
		return HandRank{Name: Straight, From: from, To: to, tiebreak: []Rank{to}}
	case groups[0].count == 3:
		return HandRank{
			Name:     ThreeOfAKind,
			Of:       groups[0].rank,
			Kickers:  []Rank{groups[1].rank, groups[2].rank},
			tiebreak: []Rank{groups[0].rank, groups[1].rank, groups[2].rank},
		}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{
			Name:     TwoPair,
			Of:       groups[0].rank,
			And:      groups[1].rank,
			Kicker:   groups[2].rank,
			tiebreak: []Rank{groups[0].rank, groups[1].rank, groups[2].rank},
		}
	case groups[0].count == 2:
		return HandRank{
			Name:     OnePair,
			Of:       groups[0].rank,
			Kickers:  []Rank{groups[1].rank, groups[2].rank, groups[3].rank},
			tiebreak: []Rank{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank},
		}
	default:
		return HandRank{
			Name:     HighCard,
			Rank:     ordered[0],
			Kickers:  []Rank{ordered[1], ordered[2], ordered[3], ordered[4]},
			tiebreak: ordered,
		}
	}
}

// straightRun reports whether five distinct ranks form a run. The ace plays low
// only here: A-2-3-4-5 is reported as from=ace, to=5.
func straightRun(groups []group) (from, to Rank, ok bool) {
	if len(groups) != HandSize {
		return 0, 0, false
	}
	// groups are sorted high to low when all counts are 1
	high, low := groups[0].rank, groups[HandSize-1].rank
	if high-low == 4 {
		return low, high, true
	}
	if high == Ace && groups[1].rank == Five && low == Two {
		return Ace, Five, true
	}
	return 0, 0, false
}
