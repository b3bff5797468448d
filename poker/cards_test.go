package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank)
	assert.Equal(t, Spades, aceSpades.Suit)
	assert.Equal(t, "As", aceSpades.String())
	assert.Equal(t, "A♠", aceSpades.Pretty())

	assert.Equal(t, "2c", NewCard(Two, Clubs).String())
	assert.Equal(t, "10h", NewCard(Ten, Hearts).String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "As", want: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", want: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", want: NewCard(King, Diamonds)},
		{name: "ten with T notation", input: "Tc", want: NewCard(Ten, Clubs)},
		{name: "ten with digits", input: "10c", want: NewCard(Ten, Clubs)},
		{name: "lower case", input: "qs", want: NewCard(Queen, Spades)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "one", input: "1h", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "10hh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("Ac Kc,Qc  Jc\t10c")
	require.NoError(t, err)
	assert.Equal(t, "AcKcQcJc10c", FormatCards(cards))

	empty, err := ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseCards("Ac Zz")
	require.Error(t, err)

	assert.Panics(t, func() { MustParseCards("nope") })
}

func TestCardValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewCard(Queen, Hearts).Validate())
	require.ErrorIs(t, NewCard(Rank(1), Hearts).Validate(), ErrValidation)
	require.ErrorIs(t, NewCard(Rank(15), Hearts).Validate(), ErrValidation)
	require.ErrorIs(t, NewCard(Ace, Suit("stars")).Validate(), ErrValidation)
	require.ErrorIs(t, Card{}.Validate(), ErrValidation)
}

func TestCardJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewCard(Ace, Clubs))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rank":"ace","suit":"clubs"}`, string(b))

	b, err = json.Marshal(NewCard(Ten, Diamonds))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rank":"10","suit":"diamonds"}`, string(b))

	var c Card
	require.NoError(t, json.Unmarshal([]byte(`{"rank":"queen","suit":"spades"}`), &c))
	assert.Equal(t, NewCard(Queen, Spades), c)

	require.Error(t, json.Unmarshal([]byte(`{"rank":"eleven","suit":"spades"}`), &c))
}

func TestRankNames(t *testing.T) {
	t.Parallel()

	want := []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "jack", "queen", "king", "ace"}
	for i, r := range Ranks {
		assert.Equal(t, want[i], r.String())
		parsed, err := ParseRank(want[i])
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	assert.Equal(t, "?", Rank(0).String())
}
