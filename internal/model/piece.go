package model

import (
	"fmt"
	"strings"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"

	Checker     PieceType = "checker"
	CheckerKing PieceType = "checkerKing"

	LightRook   PieceType = "lightRook"
	ShortBishop PieceType = "shortBishop"
	Guardian    PieceType = "guardian"
)

var pieceLetters = map[PieceType]string{
	King:        "K",
	Queen:       "Q",
	Rook:        "R",
	Bishop:      "B",
	Knight:      "N",
	Pawn:        "P",
	Checker:     "C",
	CheckerKing: "K",
	LightRook:   "L",
	ShortBishop: "S",
	Guardian:    "G",
}

// PromotionChoices are the variants a chess pawn may become on the last rank.
var PromotionChoices = []PieceType{Queen, Rook, Bishop, Knight}

func (t PieceType) Valid() bool {
	_, ok := pieceLetters[t]
	return ok
}

func (t PieceType) getPieceNotation() string {
	if t == Pawn {
		return ""
	}
	return pieceLetters[t]
}

func (t PieceType) isPromotionChoice() bool {
	for _, c := range PromotionChoices {
		if c == t {
			return true
		}
	}
	return false
}

// ParsePromotion accepts a full name ("queen") or a letter ("Q", "n").
func ParsePromotion(s string) (PieceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q", "queen":
		return Queen, nil
	case "r", "rook":
		return Rook, nil
	case "b", "bishop":
		return Bishop, nil
	case "n", "knight":
		return Knight, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPromotion, s)
}

// Piece is a single game piece. Position is set when the board places or moves it.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`
}

func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

// Symbol is the display character: upper case for white, lower case for black.
func (p Piece) Symbol() string {
	letter := pieceLetters[p.Type]
	if p.Color == Black {
		return strings.ToLower(letter)
	}
	return letter
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Color, p.Type, p.Position)
}
