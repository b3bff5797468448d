package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-rules/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E05252")).Bold(true)
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C5C5C")).Italic(true)
)

func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func renderCard(c poker.Card) string {
	if c.Suit.IsRed() {
		return redStyle.Render(c.Pretty())
	}
	return blackStyle.Render(c.Pretty())
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}
