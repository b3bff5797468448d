package game

import (
	"errors"
	"fmt"
)

var (
	ErrSeatOutOfRange   = errors.New("game: seat index out of range")
	ErrSeatOccupied     = errors.New("game: seat is occupied")
	ErrSeatEmpty        = errors.New("game: seat is empty")
	ErrNoPlayers        = errors.New("game: no occupied seats")
	ErrActionInProgress = errors.New("game: action already in progress")
	ErrActionNotStarted = errors.New("game: action is not in progress")
	ErrUnknownAction    = errors.New("game: no handler for action")
	ErrInvalidConfig    = errors.New("game: invalid config")
)

// RangeError reports a seat index outside the table.
type RangeError struct {
	Index int
	Seats int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("game: seat %d out of range [0, %d)", e.Index, e.Seats)
}

// Is makes errors.Is(err, ErrSeatOutOfRange) hold.
func (e *RangeError) Is(target error) bool {
	return target == ErrSeatOutOfRange
}

// InProgressError reports a Start for an action that is already running.
type InProgressError struct {
	Action ActionKind
}

func (e *InProgressError) Error() string {
	return fmt.Sprintf("game: %s already in progress", e.Action)
}

// Is makes errors.Is(err, ErrActionInProgress) hold.
func (e *InProgressError) Is(target error) bool {
	return target == ErrActionInProgress
}
