package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-rules/internal/randutil"
)

// TestGameOption configures test game creation
type TestGameOption func(*testGameBuilder)

type testGameBuilder struct {
	seed    int64
	config  Config
	players map[int]string
}

func WithSeed(seed int64) TestGameOption {
	return func(b *testGameBuilder) { b.seed = seed }
}

func WithSeats(n int) TestGameOption {
	return func(b *testGameBuilder) { b.config.Seats = n }
}

func WithButton(seat int) TestGameOption {
	return func(b *testGameBuilder) { b.config.Button = seat }
}

func WithClock(clock quartz.Clock) TestGameOption {
	return func(b *testGameBuilder) { b.config.Clock = clock }
}

// WithPlayerAt seats name at index with a 1000 chip stack.
func WithPlayerAt(index int, name string) TestGameOption {
	return func(b *testGameBuilder) { b.players[index] = name }
}

// NewTestGame creates a game for testing with a fixed seed and ID. It panics on
// bad options so tests stay short.
func NewTestGame(opts ...TestGameOption) *Game {
	builder := &testGameBuilder{
		seed: 42,
		config: Config{
			ID:     "test-game",
			Logger: log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
		},
		players: make(map[int]string),
	}
	for _, opt := range opts {
		opt(builder)
	}
	builder.config.Rand = randutil.New(builder.seed)

	g, err := New(builder.config)
	if err != nil {
		panic(err)
	}
	for index, name := range builder.players {
		if err := g.Seat(index, Player{Name: name, Stack: 1000}); err != nil {
			panic(err)
		}
	}
	return g
}
