package model

import (
	"fmt"
	"strings"
)

// Position is a board cell. X is the column (file A..H), Y the row counted from the top,
// so row 0 is rank 8 and row 7 is rank 1.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ParsePosition reads algebraic notation such as "E2" (case-insensitive).
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	file := strings.ToLower(s[:1])[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return Position{X: int(file - 'a'), Y: 8 - int(rank-'0')}, nil
}

// MustParsePosition panics on malformed input. Intended for setup tables and tests.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("%c%d", 'A'+p.X, 8-p.Y)
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < 8 && p.Y >= 0 && p.Y < 8
}

func (p Position) offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
