package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-rules/internal/game"
	"github.com/lox/holdem-rules/poker"
)

func init() {
	disableColor()
}

func testEnv(t *testing.T) (*runEnv, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &runEnv{
		out:    &out,
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}, &out
}

func TestEvalCmd(t *testing.T) {
	env, out := testEnv(t)
	cmd := &EvalCmd{Cards: []string{"Jc", "Jh", "4d", "4h", "9s"}, JSON: true}
	require.NoError(t, cmd.Run(env))

	var res struct {
		Rank map[string]any `json:"rank"`
		Best []poker.Card   `json:"best"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, map[string]any{"name": "2 pair", "of": "jack", "and": "4", "kicker": "9"}, res.Rank)
	assert.Len(t, res.Best, 5)
}

func TestEvalCmdSevenCards(t *testing.T) {
	env, out := testEnv(t)
	cmd := &EvalCmd{Cards: []string{"Ah", "Kh", "Qh", "Jh", "10h", "2c", "3d"}}
	require.NoError(t, cmd.Run(env))
	assert.Contains(t, out.String(), "royal flush")
}

func TestEvalCmdErrors(t *testing.T) {
	env, _ := testEnv(t)
	assert.ErrorIs(t, (&EvalCmd{Cards: []string{"Ac", "Kc"}}).Run(env), poker.ErrValidation)
	assert.ErrorIs(t, (&EvalCmd{Cards: []string{"Ac", "Kc", "Qc", "Jc", "1x"}}).Run(env), poker.ErrValidation)
}

func TestDealCmd(t *testing.T) {
	env, out := testEnv(t)
	dir := t.TempDir()
	seed := int64(99)

	cmd := &DealCmd{
		Config:     filepath.Join(dir, "missing.hcl"),
		Seed:       &seed,
		Players:    []string{"alice", "bob", "carol"},
		Interval:   time.Millisecond,
		Board:      true,
		HistoryDir: filepath.Join(dir, "hands"),
		JSON:       true,
	}
	require.NoError(t, cmd.Run(env))

	var res dealResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, seed, res.Seed)
	assert.Empty(t, res.Game.Actions)
	assert.Equal(t, 3, res.Game.Occupied())
	assert.Equal(t, poker.DeckSize-6, res.Game.DeckSize)
	assert.Len(t, res.Board, 5)
	assert.Len(t, res.Ranks, 3)
	for _, seat := range res.Game.Seats[:3] {
		require.NotNil(t, seat)
		assert.Len(t, seat.Cards, game.HoleCards)
	}

	session := filepath.Join(dir, "hands", "game-"+res.Game.ID, "session.phhs")
	_, err := os.Stat(session)
	require.NoError(t, err)

	env, out = testEnv(t)
	require.NoError(t, (&HistoryCmd{File: session}).Run(env))
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), res.Game.ID+"-00001")
}

func TestDealCmdFromConfig(t *testing.T) {
	env, out := testEnv(t)
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 7

table "main" {
  seats         = 4
  button        = 1
  deal_interval = "1ms"

  player "alice" {
    seat = 1
  }
  player "bob" {
    seat = 3
  }
}
`), 0o644))

	require.NoError(t, (&DealCmd{Config: path, JSON: true}).Run(env))

	var res dealResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, int64(7), res.Seed)
	assert.Equal(t, 1, res.Game.Button)
	require.Len(t, res.Game.Seats, 4)
	assert.Nil(t, res.Game.Seats[0])
	assert.Equal(t, "alice", res.Game.Seats[1].Player)
	assert.Len(t, res.Game.Seats[3].Cards, 2)
}

func TestDealCmdNoPlayers(t *testing.T) {
	env, _ := testEnv(t)
	err := (&DealCmd{Config: filepath.Join(t.TempDir(), "none.hcl")}).Run(env)
	assert.ErrorContains(t, err, "no players")
}

func TestSimulate(t *testing.T) {
	a, err := simulate(t.Context(), 3, 2000, 5, 4)
	require.NoError(t, err)
	b, err := simulate(t.Context(), 3, 2000, 5, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed and workers give the same tally")

	sum := 0
	for _, n := range a {
		sum += n
	}
	assert.Equal(t, 2000, sum)
	highCard := a[len(poker.Categories)-1]
	assert.Greater(t, highCard, 800, "about half of five card hands are high card")
}

func TestSimulateCmd(t *testing.T) {
	env, out := testEnv(t)
	seed := int64(1)
	cmd := &SimulateCmd{Hands: 500, Cards: 7, Workers: 2, Seed: &seed, JSON: true}
	require.NoError(t, cmd.Run(env))

	var res simulateResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, 500, res.Hands)
	require.Len(t, res.Counts, len(poker.Categories))
	assert.Equal(t, poker.RoyalFlush, res.Counts[0].Category)

	assert.Error(t, (&SimulateCmd{Hands: 0, Cards: 5}).Run(env))
	assert.Error(t, (&SimulateCmd{Hands: 10, Cards: 4}).Run(env))
}

func TestDealtCards(t *testing.T) {
	assert.Equal(t, poker.MustParseCards("Ah 10d"), dealtCards("d dh p1 AhTd"))
	assert.Nil(t, dealtCards("p1 cbr 100"))
}

func TestDealCmdText(t *testing.T) {
	env, out := testEnv(t)
	seed := int64(5)
	cmd := &DealCmd{
		Config:   filepath.Join(t.TempDir(), "missing.hcl"),
		Seed:     &seed,
		Seats:    3,
		Players:  []string{"alice", "bob"},
		Interval: time.Millisecond,
	}
	require.NoError(t, cmd.Run(env))

	text := out.String()
	assert.Contains(t, text, "alice")
	assert.Contains(t, text, "bob")
	assert.Contains(t, text, "empty")
	assert.Contains(t, text, "seed 5")
}
