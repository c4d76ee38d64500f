package model

import "fmt"

// MoveRequest is what a session surface (console, HTTP, WebSocket) submits.
type MoveRequest struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

// LastMove is consulted by en passant and restored by undo.
type LastMove struct {
	From  Position `json:"from"`
	To    Position `json:"to"`
	Piece Piece    `json:"piece"`
}

// Ply describes one executed move.
type Ply struct {
	Piece         Piece     `json:"piece"`
	From          Position  `json:"from"`
	To            Position  `json:"to"`
	CapturedPiece *Piece    `json:"capturedPiece"`
	Promotion     PieceType `json:"promotion,omitempty"`
	Notation      string    `json:"notation"`
}

func (p Ply) getNotation() string {
	sep := "-"
	if p.CapturedPiece != nil {
		sep = "x"
	}
	notation := fmt.Sprintf("%s%s%s", p.From, sep, p.To)
	if p.Promotion != "" {
		notation += "=" + p.Promotion.getPieceNotation()
	}
	return notation
}
