package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-rules/internal/randutil"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	t.Parallel()

	d := NewDeck()
	require.Equal(t, DeckSize, d.Len())

	seen := make(map[Card]bool)
	for _, c := range d.Cards() {
		require.NoError(t, c.Validate())
		require.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
	for _, s := range Suits {
		for _, r := range Ranks {
			assert.True(t, seen[NewCard(r, s)], "missing %s", NewCard(r, s))
		}
	}
}

func TestDealConservesCards(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		rng := randutil.New(seed)
		deck := NewDeck()
		var dealt []Card

		for _, n := range []int{2, 2, 2, 1, 3, 1, 1, 5, 0, 7} {
			var hand []Card
			var err error
			deck, hand, err = deck.Deal(rng, n)
			require.NoError(t, err)
			require.Len(t, hand, n)
			dealt = append(dealt, hand...)

			universe := make(map[Card]int)
			for _, c := range dealt {
				universe[c]++
			}
			for _, c := range deck.Cards() {
				universe[c]++
			}
			require.Len(t, universe, DeckSize, "seed %d", seed)
			for c, count := range universe {
				require.Equal(t, 1, count, "card %s seen %d times (seed %d)", c, count, seed)
			}
		}
	}
}

func TestDealDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	d := NewDeck()
	before := d.Cards()

	remaining, dealt, err := d.Deal(randutil.New(7), 10)
	require.NoError(t, err)
	assert.Len(t, dealt, 10)
	assert.Equal(t, 42, remaining.Len())
	assert.Equal(t, before, d.Cards())
	for _, c := range dealt {
		assert.False(t, remaining.Contains(c))
		assert.True(t, d.Contains(c))
	}
}

func TestDealIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	run := func(seed int64) []Card {
		rng := randutil.New(seed)
		deck := NewDeck()
		var out []Card
		for _, n := range []int{1, 2, 3, 5, 8} {
			var hand []Card
			var err error
			deck, hand, err = deck.Deal(rng, n)
			require.NoError(t, err)
			out = append(out, hand...)
		}
		return out
	}

	assert.Equal(t, run(42), run(42))
	assert.NotEqual(t, run(42), run(43))
}

func TestDealErrors(t *testing.T) {
	t.Parallel()

	rng := randutil.New(1)
	d := NewDeck()

	_, _, err := d.Deal(rng, DeckSize+1)
	require.ErrorIs(t, err, ErrEmptyDeck)

	rest, all, err := d.Deal(rng, DeckSize)
	require.NoError(t, err)
	assert.Len(t, all, DeckSize)
	assert.Zero(t, rest.Len())

	_, _, err = rest.Deal(rng, 1)
	require.ErrorIs(t, err, ErrEmptyDeck)

	_, _, err = d.Deal(rng, -1)
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = d.Deal(nil, 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeckRemove(t *testing.T) {
	t.Parallel()

	d := NewDeck()
	rest, err := d.Remove(MustParseCards("Ac Kd")...)
	require.NoError(t, err)
	assert.Equal(t, DeckSize-2, rest.Len())
	assert.False(t, rest.Contains(NewCard(Ace, Clubs)))
	assert.True(t, d.Contains(NewCard(Ace, Clubs)))

	_, err = rest.Remove(NewCard(Ace, Clubs))
	require.ErrorIs(t, err, ErrValidation)
}
