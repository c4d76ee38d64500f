package model

import "fmt"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the row delta a piece of this color advances by. White starts at the bottom (row 7).
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// lastRow is the far rank used for promotions.
func (c Color) lastRow() int {
	if c == White {
		return 0
	}
	return 7
}

func ParseColor(s string) (Color, error) {
	switch Color(s) {
	case White, Black:
		return Color(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

type GameType string

const (
	GameChess         GameType = "chess"
	GameCheckers      GameType = "checkers"
	GameModifiedChess GameType = "modified_chess"
)

func ParseGameType(s string) (GameType, error) {
	switch GameType(s) {
	case GameChess, GameCheckers, GameModifiedChess:
		return GameType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGameType, s)
}
