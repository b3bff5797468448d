// Package config loads table configuration from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-rules/internal/game"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config represents the complete configuration file
type Config struct {
	LogLevel   string       `hcl:"log_level,optional"`
	Seed       *int64       `hcl:"seed,optional"`
	HistoryDir string       `hcl:"history_dir,optional"`
	Table      *TableConfig `hcl:"table,block"`
}

// TableConfig defines the table a game is created with
type TableConfig struct {
	Name         string         `hcl:"name,label"`
	Seats        int            `hcl:"seats,optional"`
	Button       int            `hcl:"button,optional"`
	DealInterval string         `hcl:"deal_interval,optional"`
	Blinds       *BlindsConfig  `hcl:"blinds,block"`
	Players      []PlayerConfig `hcl:"player,block"`
}

// BlindsConfig holds the forced bets
type BlindsConfig struct {
	Ante  int `hcl:"ante,optional"`
	Small int `hcl:"small"`
	Big   int `hcl:"big"`
}

// PlayerConfig seats a named player
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Seat  int    `hcl:"seat"`
	Stack int    `hcl:"stack,optional"`
}

const (
	DefaultLogLevel     = "info"
	DefaultTableName    = "main"
	DefaultDealInterval = 250 * time.Millisecond
	DefaultStack        = 1000
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadFile loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadFile(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse loads configuration from HCL source. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Table == nil {
		c.Table = &TableConfig{Name: DefaultTableName}
	}
	t := c.Table
	if t.Seats == 0 {
		t.Seats = game.DefaultSeats
	}
	if t.DealInterval == "" {
		t.DealInterval = DefaultDealInterval.String()
	}
	if t.Blinds == nil {
		b := game.DefaultBlinds
		t.Blinds = &BlindsConfig{Ante: b.Ante, Small: b.Small, Big: b.Big}
	}
	for i := range t.Players {
		if t.Players[i].Stack == 0 {
			t.Players[i].Stack = DefaultStack
		}
	}
}

// Validate checks values that decoding alone cannot.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	t := c.Table
	if t.Seats < 1 || t.Seats > game.MaxSeats {
		return fmt.Errorf("%w: table %q: seats must be between 1 and %d, got %d", ErrInvalid, t.Name, game.MaxSeats, t.Seats)
	}
	if t.Button < 0 || t.Button >= t.Seats {
		return fmt.Errorf("%w: table %q: button %d outside %d seats", ErrInvalid, t.Name, t.Button, t.Seats)
	}
	if d, err := time.ParseDuration(t.DealInterval); err != nil || d <= 0 {
		return fmt.Errorf("%w: table %q: deal_interval %q", ErrInvalid, t.Name, t.DealInterval)
	}
	if b := t.Blinds; b.Ante < 0 || b.Small < 0 || b.Small > b.Big {
		return fmt.Errorf("%w: table %q: blinds %d/%d/%d", ErrInvalid, t.Name, b.Ante, b.Small, b.Big)
	}

	taken := make(map[int]string)
	for _, p := range t.Players {
		if p.Seat < 0 || p.Seat >= t.Seats {
			return fmt.Errorf("%w: player %q: seat %d outside %d seats", ErrInvalid, p.Name, p.Seat, t.Seats)
		}
		if other, ok := taken[p.Seat]; ok {
			return fmt.Errorf("%w: player %q: seat %d already taken by %q", ErrInvalid, p.Name, p.Seat, other)
		}
		if p.Stack < 0 {
			return fmt.Errorf("%w: player %q: negative stack", ErrInvalid, p.Name)
		}
		taken[p.Seat] = p.Name
	}
	return nil
}

// Interval returns the parsed deal interval.
func (t *TableConfig) Interval() time.Duration {
	d, err := time.ParseDuration(t.DealInterval)
	if err != nil {
		return DefaultDealInterval
	}
	return d
}

// GameConfig converts the table settings into a game.Config. ID, Rand, Clock
// and Logger are left for the caller.
func (t *TableConfig) GameConfig() game.Config {
	return game.Config{
		Seats:  t.Seats,
		Button: t.Button,
		Blinds: game.Blinds{Ante: t.Blinds.Ante, Small: t.Blinds.Small, Big: t.Blinds.Big},
	}
}

// SeatPlayers seats every configured player.
func (t *TableConfig) SeatPlayers(g *game.Game) error {
	for _, p := range t.Players {
		if err := g.Seat(p.Seat, game.Player{Name: p.Name, Stack: p.Stack}); err != nil {
			return fmt.Errorf("player %q: %w", p.Name, err)
		}
	}
	return nil
}
