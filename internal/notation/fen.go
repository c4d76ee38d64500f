// Package notation converts standard-chess boards to and from FEN using notnil/chess.
package notation

import (
	"fmt"

	"github.com/benbeisheim/gridgames/internal/model"
	"github.com/notnil/chess"
)

var toChessType = map[model.PieceType]chess.PieceType{
	model.King:   chess.King,
	model.Queen:  chess.Queen,
	model.Rook:   chess.Rook,
	model.Bishop: chess.Bishop,
	model.Knight: chess.Knight,
	model.Pawn:   chess.Pawn,
}

var fromChessType = map[chess.PieceType]model.PieceType{
	chess.King:   model.King,
	chess.Queen:  model.Queen,
	chess.Rook:   model.Rook,
	chess.Bishop: model.Bishop,
	chess.Knight: model.Knight,
	chess.Pawn:   model.Pawn,
}

// LoadFEN builds a chess board from a full FEN record and returns it with the side to move.
// Castling rights, en passant target and clocks are parsed but not used by the engine.
func LoadFEN(fen string) (*model.Board, model.Color, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	pos := chess.NewGame(opt).Position()

	board := model.NewBoard(model.GameChess)
	for sq, pc := range pos.Board().SquareMap() {
		pt, ok := fromChessType[pc.Type()]
		if !ok {
			return nil, "", fmt.Errorf("%w: %v", model.ErrUnsupportedPiece, pc)
		}
		if err := board.Place(model.NewPiece(pt, fromChessColor(pc.Color())), squareToPosition(sq)); err != nil {
			return nil, "", err
		}
	}
	return board, fromChessColor(pos.Turn()), nil
}

// ExportFEN renders a full FEN record that LoadFEN accepts. Castling rights and the en passant
// target are not tracked and are written as "-"; the clocks restart at "0 1". Only standard
// chess pieces can be expressed.
func ExportFEN(board *model.Board, toMove model.Color) (string, error) {
	placement, err := exportPlacement(board)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s - - 0 1", placement, toChessColor(toMove).String()), nil
}

func exportPlacement(board *model.Board) (string, error) {
	squares := make(map[chess.Square]chess.Piece)
	for _, color := range []model.Color{model.White, model.Black} {
		for _, pc := range board.PlayerFigures(color) {
			pt, ok := toChessType[pc.Type]
			if !ok {
				return "", fmt.Errorf("%w: %s", model.ErrUnsupportedPiece, pc.Type)
			}
			squares[positionToSquare(pc.Position)] = chess.NewPiece(pt, toChessColor(pc.Color))
		}
	}
	return chess.NewBoard(squares).String(), nil
}

// notnil squares count from A1 = 0 upwards; rows count from rank 8 downwards.
func squareToPosition(sq chess.Square) model.Position {
	return model.Position{X: int(sq.File()), Y: 7 - int(sq.Rank())}
}

func positionToSquare(pos model.Position) chess.Square {
	return chess.Square((7-pos.Y)*8 + pos.X)
}

func fromChessColor(c chess.Color) model.Color {
	if c == chess.Black {
		return model.Black
	}
	return model.White
}

func toChessColor(c model.Color) chess.Color {
	if c == model.Black {
		return chess.Black
	}
	return chess.White
}
