package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lox/holdem-rules/poker"
)

// EvalCmd ranks a hand given on the command line.
type EvalCmd struct {
	Cards []string `arg:"" help:"Cards in short notation, e.g. Ac Kc Qc Jc 10c"`
	JSON  bool     `help:"Print the rank as JSON"`
}

type evalResult struct {
	Rank poker.HandRank `json:"rank"`
	Best []poker.Card   `json:"best"`
}

func (cmd *EvalCmd) Run(env *runEnv) error {
	cards, err := poker.ParseCards(strings.Join(cmd.Cards, " "))
	if err != nil {
		return err
	}

	var res evalResult
	if len(cards) == poker.HandSize {
		res.Rank, err = poker.Evaluate(cards)
		res.Best = cards
	} else {
		res.Rank, res.Best, err = poker.Best(cards)
	}
	if err != nil {
		return err
	}
	env.logger.Debug("Evaluated hand", "cards", poker.FormatCards(cards), "rank", res.Rank.Name)

	if cmd.JSON {
		enc := json.NewEncoder(env.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintln(env.out, titleStyle.Render(string(res.Rank.Name)))
	fmt.Fprintf(env.out, "%s %s\n", labelStyle.Render("hand:"), res.Rank)
	fmt.Fprintf(env.out, "%s %s\n", labelStyle.Render("best:"), renderCards(res.Best))
	return nil
}
