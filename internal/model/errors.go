package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition   = errors.New("invalid position")
	ErrEmptyCell         = errors.New("cell is empty")
	ErrOccupiedCell      = errors.New("cell is occupied")
	ErrWrongOwner        = errors.New("piece belongs to the other player")
	ErrIllegalMove       = errors.New("piece cannot move there")
	ErrProtectedGuardian = errors.New("guardian is protected by an adjacent ally")
	ErrOccupiedBySelf    = errors.New("destination holds your own piece")
	ErrUnknownGameType   = errors.New("unknown game type")
	ErrUnknownColor      = errors.New("unknown color")
	ErrInvalidPromotion  = errors.New("invalid promotion choice")
	ErrUnsupportedPiece  = errors.New("unsupported piece")
)

// MoveError is returned for every rejected move. The board is left untouched.
type MoveError struct {
	From Position
	To   Position
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func rejectMove(from, to Position, err error) *MoveError {
	return &MoveError{From: from, To: to, Err: err}
}
