package phh

import (
	"strings"

	"github.com/lox/holdem-rules/poker"
)

var rankMap = map[string]string{
	"a":  "A",
	"k":  "K",
	"q":  "Q",
	"j":  "J",
	"10": "T",
	"t":  "T",
	"9":  "9",
	"8":  "8",
	"7":  "7",
	"6":  "6",
	"5":  "5",
	"4":  "4",
	"3":  "3",
	"2":  "2",
}

// NormalizeCard converts engine notation (e.g. 10h) to PHH notation (Th).
// Unknown cards ("??") pass through.
func NormalizeCard(card string) string {
	card = strings.TrimSpace(card)
	if card == "" {
		return ""
	}
	lowered := strings.ToLower(card)
	if lowered == "??" || len(lowered) < 2 {
		return lowered
	}

	suit := lowered[len(lowered)-1:]
	rank, ok := rankMap[lowered[:len(lowered)-1]]
	if !ok {
		return "??"
	}
	return rank + suit
}

// FormatCards renders cards as one PHH card string, e.g. "AhTd".
func FormatCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(NormalizeCard(c.String()))
	}
	return b.String()
}
