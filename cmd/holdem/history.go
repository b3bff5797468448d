package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/lox/holdem-rules/internal/phh"
	"github.com/lox/holdem-rules/poker"
)

// HistoryCmd prints the hands in a PHH session file.
type HistoryCmd struct {
	File  string `arg:"" name:"file" help:"Path to a session.phhs file" type:"existingfile"`
	Limit int    `help:"Maximum number of hands to show (0 = all)"`
	JSON  bool   `help:"Print the hands as JSON"`
}

func (cmd *HistoryCmd) Run(env *runEnv) error {
	f, err := os.Open(cmd.File)
	if err != nil {
		return err
	}
	defer f.Close()

	session, err := phh.DecodeSession(f)
	if err != nil {
		return err
	}
	if len(session) == 0 {
		return fmt.Errorf("no hands found in %s", cmd.File)
	}

	sections := make([]int, 0, len(session))
	for n := range session {
		sections = append(sections, n)
	}
	slices.Sort(sections)
	if cmd.Limit > 0 && cmd.Limit < len(sections) {
		sections = sections[:cmd.Limit]
	}

	if cmd.JSON {
		hands := make([]*phh.HandHistory, len(sections))
		for i, n := range sections {
			hands[i] = session[n]
		}
		enc := json.NewEncoder(env.out)
		enc.SetIndent("", "  ")
		return enc.Encode(hands)
	}

	for _, n := range sections {
		printHand(env, n, session[n])
	}
	return nil
}

func printHand(env *runEnv, n int, hand *phh.HandHistory) {
	fmt.Fprintf(env.out, "%s %s %s\n", titleStyle.Render(fmt.Sprintf("#%d", n)), hand.HandID,
		labelStyle.Render(fmt.Sprintf("%04d-%02d-%02d %s %s", hand.Year, hand.Month, hand.Day, hand.Time, hand.TimeZone)))
	for i, player := range hand.Players {
		var cards []poker.Card
		if i < len(hand.Actions) {
			cards = dealtCards(hand.Actions[i])
		}
		line := fmt.Sprintf("  p%d  %-12s %s", i+1, player, renderCards(cards))
		if rank, ok := hand.Metadata[fmt.Sprintf("p%d", i+1)]; ok {
			line += "  " + labelStyle.Render(fmt.Sprint(rank))
		}
		fmt.Fprintln(env.out, line)
	}
}

// dealtCards extracts the cards from a "d dh pN AhKh" action.
func dealtCards(action string) []poker.Card {
	fields := strings.Fields(action)
	if len(fields) != 4 || fields[0] != "d" || fields[1] != "dh" {
		return nil
	}
	raw := fields[3]
	var cards []poker.Card
	for i := 0; i+2 <= len(raw); i += 2 {
		c, err := poker.ParseCard(raw[i : i+2])
		if err != nil {
			return nil
		}
		cards = append(cards, c)
	}
	return cards
}
