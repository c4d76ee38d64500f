package model

import (
	"testing"
)

type placement struct {
	square string
	piece  Piece
}

func boardWith(t *testing.T, gameType GameType, pieces ...placement) *Board {
	t.Helper()
	b := NewBoard(gameType)
	for _, pl := range pieces {
		if err := b.PlaceFigure(pl.piece, pl.square); err != nil {
			t.Fatalf("place %s at %s: %v", pl.piece.Type, pl.square, err)
		}
	}
	return b
}

func at(square string, t PieceType, c Color) placement {
	return placement{square: square, piece: NewPiece(t, c)}
}

func TestPieceLegality(t *testing.T) {
	tests := []struct {
		name   string
		pieces []placement
		from   string
		to     string
		want   bool
	}{
		{"pawn single step", []placement{at("E2", Pawn, White)}, "E2", "E3", true},
		{"pawn double step from start", []placement{at("E2", Pawn, White)}, "E2", "E4", true},
		{"pawn double step off start", []placement{at("E3", Pawn, White)}, "E3", "E5", false},
		{"pawn double step blocked", []placement{at("E2", Pawn, White), at("E3", Knight, Black)}, "E2", "E4", false},
		{"pawn step blocked", []placement{at("E2", Pawn, White), at("E3", Knight, Black)}, "E2", "E3", false},
		{"pawn backwards", []placement{at("E4", Pawn, White)}, "E4", "E3", false},
		{"black pawn forward", []placement{at("D7", Pawn, Black)}, "D7", "D5", true},
		{"pawn diagonal capture", []placement{at("E4", Pawn, White), at("D5", Pawn, Black)}, "E4", "D5", true},
		{"pawn diagonal onto ally", []placement{at("E4", Pawn, White), at("D5", Pawn, White)}, "E4", "D5", false},
		{"pawn diagonal onto empty", []placement{at("E4", Pawn, White)}, "E4", "D5", false},
		{"rook along file", []placement{at("A1", Rook, White)}, "A1", "A8", true},
		{"rook blocked", []placement{at("A1", Rook, White), at("A4", Pawn, Black)}, "A1", "A8", false},
		{"rook onto blocker", []placement{at("A1", Rook, White), at("A4", Pawn, Black)}, "A1", "A4", true},
		{"rook diagonal", []placement{at("A1", Rook, White)}, "A1", "B2", false},
		{"bishop diagonal", []placement{at("C1", Bishop, White)}, "C1", "H6", true},
		{"bishop blocked", []placement{at("C1", Bishop, White), at("E3", Pawn, White)}, "C1", "H6", false},
		{"bishop straight", []placement{at("C1", Bishop, White)}, "C1", "C4", false},
		{"queen straight", []placement{at("D1", Queen, White)}, "D1", "D7", true},
		{"queen diagonal", []placement{at("D1", Queen, White)}, "D1", "H5", true},
		{"queen knight jump", []placement{at("D1", Queen, White)}, "D1", "E3", false},
		{"knight jump over pieces", []placement{at("G1", Knight, White), at("G2", Pawn, White), at("F2", Pawn, White)}, "G1", "F3", true},
		{"knight straight", []placement{at("G1", Knight, White)}, "G1", "G3", false},
		{"king adjacent", []placement{at("E1", King, White)}, "E1", "F2", true},
		{"king two squares", []placement{at("E1", King, White)}, "E1", "G1", false},
		{"guardian adjacent", []placement{at("B1", Guardian, White)}, "B1", "B2", true},
		{"guardian far", []placement{at("B1", Guardian, White)}, "B1", "B3", false},
		{"light rook two squares", []placement{at("A1", LightRook, White)}, "A1", "A3", true},
		{"light rook three squares", []placement{at("A1", LightRook, White)}, "A1", "A4", false},
		{"light rook blocked", []placement{at("A1", LightRook, White), at("A2", Pawn, White)}, "A1", "A3", false},
		{"short bishop two squares", []placement{at("C1", ShortBishop, White)}, "C1", "E3", true},
		{"short bishop three squares", []placement{at("C1", ShortBishop, White)}, "C1", "F4", false},
		{"short bishop blocked", []placement{at("C1", ShortBishop, White), at("D2", Pawn, White)}, "C1", "E3", false},
		{"checker step", []placement{at("D3", Checker, White)}, "D3", "C4", true},
		{"checker step backwards", []placement{at("D3", Checker, White)}, "D3", "C2", false},
		{"checker step onto piece", []placement{at("D3", Checker, White), at("C4", Checker, Black)}, "D3", "C4", false},
		{"checker jump", []placement{at("D3", Checker, White), at("C4", Checker, Black)}, "D3", "B5", true},
		{"checker jump over ally", []placement{at("D3", Checker, White), at("C4", Checker, White)}, "D3", "B5", false},
		{"checker jump over nothing", []placement{at("D3", Checker, White)}, "D3", "B5", false},
		{"black checker step", []placement{at("C6", Checker, Black)}, "C6", "D5", true},
		{"checker king long diagonal", []placement{at("A1", CheckerKing, White)}, "A1", "H8", true},
		{"checker king over one enemy", []placement{at("A1", CheckerKing, White), at("C3", Checker, Black)}, "A1", "F6", true},
		{"checker king over two enemies", []placement{at("A1", CheckerKing, White), at("C3", Checker, Black), at("E5", Checker, Black)}, "A1", "F6", false},
		{"checker king over ally", []placement{at("A1", CheckerKing, White), at("C3", Checker, White)}, "A1", "F6", false},
		{"checker king onto piece", []placement{at("A1", CheckerKing, White), at("C3", Checker, Black)}, "A1", "C3", false},
		{"checker king straight", []placement{at("A1", CheckerKing, White)}, "A1", "A5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, GameChess, tt.pieces...)
			pc, ok := b.Figure(MustParsePosition(tt.from))
			if !ok {
				t.Fatalf("no piece on %s", tt.from)
			}
			if got := pc.CanMove(MustParsePosition(tt.to), b); got != tt.want {
				t.Fatalf("%s %s -> %s: CanMove = %v, want %v", pc.Type, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestEvaluateNeverAllowsStandingStill(t *testing.T) {
	for pt := range pieceLetters {
		b := boardWith(t, GameChess, at("D4", pt, White))
		pc, _ := b.Figure(MustParsePosition("D4"))
		if pc.CanMove(MustParsePosition("D4"), b) {
			t.Errorf("%s may move onto its own square", pt)
		}
	}
}

func TestEvaluateReportsCaptures(t *testing.T) {
	b := boardWith(t, GameCheckers, at("A1", CheckerKing, White), at("C3", Checker, Black))
	pc, _ := b.Figure(MustParsePosition("A1"))

	effect := pc.Evaluate(MustParsePosition("E5"), b)
	if !effect.Legal {
		t.Fatalf("expected flight over C3 to be legal")
	}
	if len(effect.Captures) != 1 || effect.Captures[0] != MustParsePosition("C3") {
		t.Fatalf("captures = %v, want [C3]", effect.Captures)
	}

	effect = pc.Evaluate(MustParsePosition("B2"), b)
	if !effect.Legal || len(effect.Captures) != 0 {
		t.Fatalf("quiet step = %+v, want legal without captures", effect)
	}
	if _, ok := b.Figure(MustParsePosition("C3")); !ok {
		t.Fatalf("evaluation must not remove pieces")
	}
}
