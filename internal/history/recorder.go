// Package history records dealt hands as PHH session files.
package history

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-rules/internal/fileutil"
	"github.com/lox/holdem-rules/internal/game"
	"github.com/lox/holdem-rules/internal/phh"
	"github.com/lox/holdem-rules/internal/seats"
	"github.com/lox/holdem-rules/poker"
)

const defaultFilename = "session.phhs"

// ErrNoHand is returned when a snapshot has no dealt seats to record.
var ErrNoHand = errors.New("handhistory: no dealt seats in snapshot")

// Config configures a Recorder.
type Config struct {
	BaseDir string
	Table   string
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Recorder buffers hands for one game and appends them to
// <BaseDir>/game-<id>/session.phhs on Flush.
type Recorder struct {
	cfg    Config
	gameID string
	path   string
	logger *log.Logger

	mu      sync.Mutex
	buffer  []*phh.HandHistory
	section int
	hands   int
}

// NewRecorder creates a recorder for gameID. Numbering continues from an
// existing session file.
func NewRecorder(gameID string, cfg Config) (*Recorder, error) {
	if gameID == "" {
		return nil, fmt.Errorf("handhistory: game id is required")
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = "hands"
	}
	if cfg.Table == "" {
		cfg.Table = "main"
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	path := filepath.Join(cfg.BaseDir, "game-"+gameID, defaultFilename)
	last, err := lastSection(path)
	if err != nil {
		return nil, fmt.Errorf("handhistory: read %s: %w", path, err)
	}
	return &Recorder{
		cfg:     cfg,
		gameID:  gameID,
		path:    path,
		logger:  cfg.Logger.WithPrefix("history").With("game_id", gameID),
		section: last,
		hands:   last,
	}, nil
}

// Path returns the session file the recorder writes to.
func (r *Recorder) Path() string { return r.path }

// Pending returns the number of buffered hands.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffer)
}

// Record converts a dealt snapshot into a hand history and buffers it.
// Players are listed from the seat after the button, so the button acts last
// as PHH expects. ranks, keyed by seat index, is written to metadata.
func (r *Recorder) Record(snap game.Snapshot, ranks map[int]poker.HandRank) (*phh.HandHistory, error) {
	order := dealOrder(snap)
	if len(order) == 0 {
		return nil, ErrNoHand
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.hands++

	hand := &phh.HandHistory{
		Variant:           phh.Variant,
		Table:             r.cfg.Table,
		SeatCount:         len(snap.Seats),
		Antes:             make([]int, len(order)),
		BlindsOrStraddles: make([]int, len(order)),
		MinBet:            snap.Blinds.Big,
		HandID:            fmt.Sprintf("%s-%05d", r.gameID, r.hands),
	}
	for i, index := range order {
		seat := snap.Seats[index]
		hand.Seats = append(hand.Seats, index+1)
		hand.Players = append(hand.Players, seat.Player)
		hand.StartingStacks = append(hand.StartingStacks, seat.Stack)
		hand.Antes[i] = snap.Blinds.Ante
		hand.Actions = append(hand.Actions, phh.FormatDeal(i, seat.Cards))

		if rank, ok := ranks[index]; ok {
			if hand.Metadata == nil {
				hand.Metadata = make(map[string]any)
			}
			hand.Metadata[fmt.Sprintf("p%d", i+1)] = rank.String()
		}
	}
	blinds := []int{snap.Blinds.Small, snap.Blinds.Big}
	for i := range min(len(order), len(blinds)) {
		hand.BlindsOrStraddles[i] = blinds[i]
	}
	hand.SetTime(r.cfg.Clock.Now("history", "record"))

	r.buffer = append(r.buffer, hand)
	r.logger.Debug("Hand recorded", "hand", hand.HandID, "players", len(order))
	return hand, nil
}

// dealOrder lists dealt seats starting after the button.
func dealOrder(snap game.Snapshot) []int {
	dealt := func(s *game.Seat) bool { return s != nil && len(s.Cards) > 0 }
	first, ok := seats.NextFrom(snap.Seats, dealt, snap.Button)
	if !ok {
		return nil
	}
	order := []int{first}
	for next, _ := seats.NextFrom(snap.Seats, dealt, first); next != first; next, _ = seats.NextFrom(snap.Seats, dealt, next) {
		order = append(order, next)
	}
	return order
}

// Flush appends buffered hands to the session file and returns how many
// were written. On error the buffer is kept for the next attempt.
func (r *Recorder) Flush() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.buffer) == 0 {
		return 0, nil
	}
	var buf bytes.Buffer
	for i, hand := range r.buffer {
		if err := phh.WriteSection(&buf, r.section+i+1, hand); err != nil {
			return 0, fmt.Errorf("handhistory: encode %s: %w", hand.HandID, err)
		}
	}
	if err := fileutil.AppendFileAtomic(r.path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("handhistory: write %s: %w", r.path, err)
	}

	n := len(r.buffer)
	r.section += n
	r.buffer = r.buffer[:0]
	r.logger.Info("Hand history flushed", "hands", n, "path", r.path)
	return n, nil
}

func lastSection(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	defer file.Close()
	return phh.LastSection(file)
}
