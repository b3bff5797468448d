package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-rules/internal/game"
	"github.com/lox/holdem-rules/internal/randutil"
)

const sample = `
log_level   = "debug"
seed        = 42
history_dir = "hands"

table "main" {
  seats         = 9
  button        = 3
  deal_interval = "100ms"

  blinds {
    ante  = 1
    small = 10
    big   = 20
  }

  player "alice" {
    seat  = 0
    stack = 500
  }

  player "bob" {
    seat = 4
  }
}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, "hands", cfg.HistoryDir)

	tbl := cfg.Table
	assert.Equal(t, "main", tbl.Name)
	assert.Equal(t, 9, tbl.Seats)
	assert.Equal(t, 3, tbl.Button)
	assert.Equal(t, 100*time.Millisecond, tbl.Interval())
	assert.Equal(t, &BlindsConfig{Ante: 1, Small: 10, Big: 20}, tbl.Blinds)
	require.Len(t, tbl.Players, 2)
	assert.Equal(t, PlayerConfig{Name: "alice", Seat: 0, Stack: 500}, tbl.Players[0])
	assert.Equal(t, PlayerConfig{Name: "bob", Seat: 4, Stack: DefaultStack}, tbl.Players[1])
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse([]byte(``), "empty.hcl")
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, DefaultTableName, cfg.Table.Name)
	assert.Equal(t, game.DefaultSeats, cfg.Table.Seats)
	assert.Equal(t, DefaultDealInterval, cfg.Table.Interval())
	assert.Equal(t, game.DefaultBlinds.Big, cfg.Table.Blinds.Big)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(dir, "nope.hcl"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "table.hcl")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Table.Seats)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.hcl")
		require.NoError(t, os.WriteFile(path, []byte("table \"main\" {"), 0o644))
		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "failed to parse HCL file")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad log level", `log_level = "loud"`},
		{"too many seats", `table "main" { seats = 23 }`},
		{"button outside table", `table "main" {
  seats  = 2
  button = 2
}`},
		{"bad interval", `table "main" { deal_interval = "soon" }`},
		{"zero interval", `table "main" { deal_interval = "0s" }`},
		{"small above big", `table "main" {
blinds {
small = 50
big = 25
}
}`},
		{"player seat out of range", `table "main" {
player "alice" { seat = 6 }
}`},
		{"seat taken twice", `table "main" {
player "alice" { seat = 1 }
player "bob" { seat = 1 }
}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestUnknownAttribute(t *testing.T) {
	_, err := Parse([]byte(`colour = "red"`), "test.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestBuildGame(t *testing.T) {
	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	gc := cfg.Table.GameConfig()
	gc.Rand = randutil.New(*cfg.Seed)
	g, err := game.New(gc)
	require.NoError(t, err)
	require.NoError(t, cfg.Table.SeatPlayers(g))

	assert.Equal(t, 9, g.SeatCount())
	assert.Equal(t, 3, g.Button())
	assert.Equal(t, game.Blinds{Ante: 1, Small: 10, Big: 20}, g.Blinds())
	assert.Equal(t, []int{0, 4}, g.Occupied())

	seat, _, err := g.SeatAt(4)
	require.NoError(t, err)
	assert.Equal(t, "bob", seat.Player)
	assert.Equal(t, DefaultStack, seat.Stack)
}
