package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/holdem-rules/internal/config"
	"github.com/lox/holdem-rules/internal/game"
	"github.com/lox/holdem-rules/internal/history"
	"github.com/lox/holdem-rules/internal/randutil"
	"github.com/lox/holdem-rules/poker"
)

const boardSize = 5

// DealCmd seats a table from config or flags and deals preflop on a timer.
type DealCmd struct {
	Config     string        `short:"c" help:"HCL table config" default:"holdem.hcl" type:"path"`
	Seed       *int64        `help:"RNG seed; defaults to the config seed, then the time"`
	Seats      int           `help:"Number of seats, overriding the config"`
	Players    []string      `short:"p" help:"Player names seated from seat 0, overriding the config"`
	Interval   time.Duration `help:"Delay between cards, overriding the config"`
	Board      bool          `help:"Also deal a five card board and rank every seat"`
	HistoryDir string        `help:"Directory for PHH hand histories, overriding the config"`
	JSON       bool          `help:"Print the result as JSON"`
}

type dealResult struct {
	Seed  int64                  `json:"seed"`
	Game  game.Snapshot          `json:"game"`
	Board []poker.Card           `json:"board,omitempty"`
	Ranks map[int]poker.HandRank `json:"ranks,omitempty"`
}

func (cmd *DealCmd) Run(env *runEnv) error {
	cfg, err := config.LoadFile(cmd.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setLevel(env.logger, cfg.LogLevel, env.debug)

	seedFlag := cmd.Seed
	if seedFlag == nil {
		seedFlag = cfg.Seed
	}
	seed := randutil.Seed(seedFlag, env.clock.Now())

	gc := cfg.Table.GameConfig()
	if cmd.Seats > 0 {
		gc.Seats = cmd.Seats
	}
	gc.Rand = randutil.New(seed)
	gc.Clock = env.clock
	gc.Logger = env.logger

	g, err := game.New(gc)
	if err != nil {
		return err
	}
	logger := env.logger.With("game_id", g.ID())
	logger.Info("Table ready", "seed", seed, "seats", g.SeatCount(), "button", g.Button())

	if err := cmd.seat(g, cfg.Table); err != nil {
		return err
	}

	interval := cmd.Interval
	if interval <= 0 {
		interval = cfg.Table.Interval()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table := game.NewTable(g)
	w, err := table.AutoDeal(ctx, game.DealPreflop, interval)
	if err != nil {
		return err
	}
	if err := w.Wait(); err != nil {
		return fmt.Errorf("deal: %w", err)
	}

	res := dealResult{Seed: seed}
	err = table.Do(func(g *game.Game) error {
		if !cmd.Board {
			return nil
		}
		var err error
		res.Board, res.Ranks, err = rankSeats(g, seed)
		return err
	})
	if err != nil {
		return err
	}
	res.Game = table.Snapshot()

	dir := cmd.HistoryDir
	if dir == "" {
		dir = cfg.HistoryDir
	}
	if dir != "" {
		if err := record(env, dir, cfg.Table.Name, res); err != nil {
			return err
		}
	}

	if cmd.JSON {
		enc := json.NewEncoder(env.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printDeal(env, res)
	return nil
}

func (cmd *DealCmd) seat(g *game.Game, tc *config.TableConfig) error {
	if len(cmd.Players) == 0 {
		if len(tc.Players) == 0 {
			return errors.New("no players: pass --players or configure player blocks")
		}
		return tc.SeatPlayers(g)
	}
	for i, name := range cmd.Players {
		if err := g.Seat(i, game.Player{Name: name, Stack: config.DefaultStack}); err != nil {
			return fmt.Errorf("player %q: %w", name, err)
		}
	}
	return nil
}

// rankSeats draws a board from the cards left in the game's deck and ranks
// every dealt seat against it.
func rankSeats(g *game.Game, seed int64) ([]poker.Card, map[int]poker.HandRank, error) {
	_, board, err := g.Deck().Deal(randutil.Split(seed, 1)[0], boardSize)
	if err != nil {
		return nil, nil, err
	}
	ranks := make(map[int]poker.HandRank)
	for _, index := range g.Occupied() {
		rank, err := g.EvaluateSeat(index, board)
		if err != nil {
			return nil, nil, err
		}
		ranks[index] = rank
	}
	return board, ranks, nil
}

func record(env *runEnv, dir, tableName string, res dealResult) error {
	rec, err := history.NewRecorder(res.Game.ID, history.Config{
		BaseDir: dir,
		Table:   tableName,
		Clock:   env.clock,
		Logger:  env.logger,
	})
	if err != nil {
		return err
	}
	if _, err := rec.Record(res.Game, res.Ranks); err != nil {
		return err
	}
	if _, err := rec.Flush(); err != nil {
		return err
	}
	env.logger.Info("Hand history written", "path", rec.Path())
	return nil
}

func printDeal(env *runEnv, res dealResult) {
	snap := res.Game
	fmt.Fprintln(env.out, titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Fprintf(env.out, "%s %s  %s %d  %s %d/%d/%d  %s %d\n",
		labelStyle.Render("game"), snap.ID,
		labelStyle.Render("button"), snap.Button,
		labelStyle.Render("blinds"), snap.Blinds.Ante, snap.Blinds.Small, snap.Blinds.Big,
		labelStyle.Render("seed"), res.Seed)

	for i, seat := range snap.Seats {
		if seat == nil {
			fmt.Fprintf(env.out, "  %2d  %s\n", i, emptyStyle.Render("empty"))
			continue
		}
		line := fmt.Sprintf("  %2d  %-12s %6d  %s  %-8s", i, seat.Player, seat.Stack,
			renderCards(seat.Cards), poker.CategorizeHoleCards(seat.Cards))
		if rank, ok := res.Ranks[i]; ok {
			line += "  " + labelStyle.Render(rank.String())
		}
		fmt.Fprintln(env.out, line)
	}
	if len(res.Board) > 0 {
		fmt.Fprintf(env.out, "%s %s\n", labelStyle.Render("board"), renderCards(res.Board))
	}
}
