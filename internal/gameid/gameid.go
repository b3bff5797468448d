// Package gameid generates time-ordered identifiers for game tables.
package gameid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford base32, as used by TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID.
const Length = 26

// RandSource is the randomness an ID draws from. Nil means crypto/rand.
type RandSource interface {
	IntN(n int) int
}

// Generator creates UUIDv7-shaped IDs: a millisecond timestamp followed by
// random bits, encoded so that IDs sort by creation time.
type Generator struct {
	rand  RandSource
	clock quartz.Clock
}

// NewGenerator returns a generator. A nil clock uses the real clock.
func NewGenerator(randSource RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{rand: randSource, clock: clock}
}

// Generate returns an ID using crypto/rand and the wall clock.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a new ID.
func (g *Generator) Generate() string {
	var id [16]byte

	ms := uint64(g.clock.Now("gameid").UnixMilli())
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	if g.rand != nil {
		for i := 6; i < len(id); i++ {
			id[i] = byte(g.rand.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("gameid: crypto/rand failed: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encode(id)
}

func encode(id [16]byte) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])

	out := make([]byte, Length)
	for i := range out {
		out[i] = alphabet[fiveBits(hi, lo, uint(125-5*i))]
	}
	return string(out)
}

// fiveBits returns bits [shift, shift+5) of the 128-bit value hi:lo.
func fiveBits(hi, lo uint64, shift uint) uint8 {
	var v uint64
	switch {
	case shift >= 64:
		v = hi >> (shift - 64)
	case shift == 0:
		v = lo
	default:
		v = lo>>shift | hi<<(64-shift)
	}
	return uint8(v & 0x1f)
}

// Validate checks that id could have been produced by Generate.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
