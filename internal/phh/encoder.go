package phh

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem-rules/poker"
)

// ErrNilHand is returned when encoding a nil hand.
var ErrNilHand = errors.New("phh: hand history is nil")

// Encode writes the hand history to w in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return ErrNilHand
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one hand history from TOML.
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hand); err != nil {
		return nil, fmt.Errorf("phh: decode: %w", err)
	}
	return &hand, nil
}

// FormatDeal renders a hole-card deal to the PHH player at seat (0-based).
func FormatDeal(seat int, cards []poker.Card) string {
	return fmt.Sprintf("d dh p%d %s", seat+1, FormatCards(cards))
}

// WriteSection writes hand as table [n] of a .phhs session file. Nested
// tables such as metadata are written under the section.
func WriteSection(w io.Writer, n int, hand *HandHistory) error {
	if hand == nil {
		return ErrNilHand
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	if err := enc.Encode(map[string]*HandHistory{strconv.Itoa(n): hand}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DecodeSession reads every section of a .phhs session file, keyed by number.
func DecodeSession(r io.Reader) (map[int]*HandHistory, error) {
	var raw map[string]*HandHistory
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("phh: decode session: %w", err)
	}
	out := make(map[int]*HandHistory, len(raw))
	for key, hand := range raw {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("phh: section %q is not a number", key)
		}
		out[n] = hand
	}
	return out, nil
}

// LastSection returns the highest section number in a session file, or 0.
func LastSection(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	last := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) >= 3 && line[0] == '[' && line[len(line)-1] == ']' {
			if n, err := strconv.Atoi(line[1 : len(line)-1]); err == nil && n > last {
				last = n
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return last, nil
}
