package model

import "fmt"

var (
	chessBackRank         = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	modifiedChessBackRank = [8]PieceType{LightRook, Guardian, ShortBishop, Queen, King, ShortBishop, Guardian, LightRook}
)

// Setup places the starting position of the board's rule set.
func (b *Board) Setup() error {
	switch b.gameType {
	case GameChess:
		return b.setupBackRanks(chessBackRank)
	case GameModifiedChess:
		return b.setupBackRanks(modifiedChessBackRank)
	case GameCheckers:
		return b.setupCheckers()
	}
	return fmt.Errorf("%w: %q", ErrUnknownGameType, b.gameType)
}

// NewGameBoard returns a board already set up for gameType.
func NewGameBoard(gameType GameType) (*Board, error) {
	if _, err := ParseGameType(string(gameType)); err != nil {
		return nil, err
	}
	b := NewBoard(gameType)
	if err := b.Setup(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) setupBackRanks(order [8]PieceType) error {
	setup := func(color Color, backRow, pawnRow int) error {
		for x, pt := range order {
			if err := b.Place(NewPiece(pt, color), Position{X: x, Y: backRow}); err != nil {
				return err
			}
		}
		for x := 0; x < 8; x++ {
			if err := b.Place(NewPiece(Pawn, color), Position{X: x, Y: pawnRow}); err != nil {
				return err
			}
		}
		return nil
	}
	if err := setup(White, 7, 6); err != nil {
		return err
	}
	return setup(Black, 0, 1)
}

// Checkers use the dark squares of the three rows nearest each player.
func (b *Board) setupCheckers() error {
	for y := 0; y < 8; y++ {
		if y > 2 && y < 5 {
			continue
		}
		color := Black
		if y >= 5 {
			color = White
		}
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				continue
			}
			if err := b.Place(NewPiece(Checker, color), Position{X: x, Y: y}); err != nil {
				return err
			}
		}
	}
	return nil
}
