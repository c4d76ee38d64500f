package model

import (
	"fmt"
	"sort"
)

const emptyCell = "."

// PromotionFunc picks the variant a chess pawn becomes on the last rank.
type PromotionFunc func(color Color) PieceType

// DefaultPromotion always picks a queen.
func DefaultPromotion(Color) PieceType {
	return Queen
}

// Board owns the pieces of one game. The piece map is the source of truth; grid mirrors it
// with display symbols and is kept in sync by set and clear.
type Board struct {
	gameType  GameType
	grid      [8][8]string
	pieces    map[Position]*Piece
	lastMove  *LastMove
	history   MoveHistory
	moveCount int
	promote   PromotionFunc
}

// NewBoard returns an empty board for the given rule set. Call Setup for the starting position.
func NewBoard(gameType GameType) *Board {
	b := &Board{
		gameType: gameType,
		pieces:   make(map[Position]*Piece),
		promote:  DefaultPromotion,
	}
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = emptyCell
		}
	}
	return b
}

func (b *Board) GameType() GameType {
	return b.gameType
}

// SetPromotion installs the promotion chooser. nil restores DefaultPromotion.
func (b *Board) SetPromotion(fn PromotionFunc) {
	if fn == nil {
		fn = DefaultPromotion
	}
	b.promote = fn
}

func (b *Board) MoveCount() int {
	return b.moveCount
}

func (b *Board) LastMove() *LastMove {
	if b.lastMove == nil {
		return nil
	}
	lm := *b.lastMove
	return &lm
}

// Grid returns the display grid, "." for empty cells.
func (b *Board) Grid() [8][8]string {
	return b.grid
}

// Place puts a piece on an empty cell.
func (b *Board) Place(p Piece, pos Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedPiece, p.Type)
	}
	if _, err := ParseColor(string(p.Color)); err != nil {
		return err
	}
	if !b.isEmpty(pos) {
		return fmt.Errorf("place at %s: %w", pos, ErrOccupiedCell)
	}
	p.Position = pos
	b.set(pos, &p)
	return nil
}

func (b *Board) PlaceFigure(p Piece, square string) error {
	pos, err := ParsePosition(square)
	if err != nil {
		return err
	}
	return b.Place(p, pos)
}

// Remove takes the piece off pos.
func (b *Board) Remove(pos Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}
	if b.isEmpty(pos) {
		return fmt.Errorf("remove at %s: %w", pos, ErrEmptyCell)
	}
	b.clear(pos)
	return nil
}

func (b *Board) RemoveFigure(square string) error {
	pos, err := ParsePosition(square)
	if err != nil {
		return err
	}
	return b.Remove(pos)
}

// Figure returns a copy of the piece on pos.
func (b *Board) Figure(pos Position) (Piece, bool) {
	pc := b.pieceAt(pos)
	if pc == nil {
		return Piece{}, false
	}
	return *pc, true
}

// GetFigure looks a square up by notation. A nil piece means the cell is empty.
func (b *Board) GetFigure(square string) (*Piece, error) {
	pos, err := ParsePosition(square)
	if err != nil {
		return nil, err
	}
	pc, ok := b.Figure(pos)
	if !ok {
		return nil, nil
	}
	return &pc, nil
}

// PlayerFigures lists the pieces of one color ordered by row then column.
func (b *Board) PlayerFigures(color Color) []Piece {
	var out []Piece
	for _, pc := range b.pieces {
		if pc.Color == color {
			out = append(out, *pc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return positionLess(out[i].Position, out[j].Position)
	})
	return out
}

// MoveFigure is Move with algebraic squares.
func (b *Board) MoveFigure(from, to string, player Color) (Ply, error) {
	fromPos, err := ParsePosition(from)
	if err != nil {
		return Ply{}, err
	}
	toPos, err := ParsePosition(to)
	if err != nil {
		return Ply{}, err
	}
	return b.Move(fromPos, toPos, player)
}

// Move validates and executes a move for player. A rejected move returns a *MoveError and
// leaves the board, history and move counter untouched.
func (b *Board) Move(from, to Position, player Color) (Ply, error) {
	if !from.InBounds() || !to.InBounds() {
		return Ply{}, rejectMove(from, to, ErrInvalidPosition)
	}
	piece := b.pieceAt(from)
	if piece == nil {
		return Ply{}, rejectMove(from, to, ErrEmptyCell)
	}
	if piece.Color != player {
		return Ply{}, rejectMove(from, to, ErrWrongOwner)
	}
	effect := piece.Evaluate(to, b)
	if !effect.Legal {
		return Ply{}, rejectMove(from, to, ErrIllegalMove)
	}
	target := b.pieceAt(to)
	if target != nil && target.Color != piece.Color && target.Type == Guardian && b.guardianProtected(to) {
		return Ply{}, rejectMove(from, to, ErrProtectedGuardian)
	}
	// Slider and step rules are geometric only, so a friendly destination is caught here.
	if target != nil && target.Color == piece.Color {
		return Ply{}, rejectMove(from, to, ErrOccupiedBySelf)
	}

	snap := b.snapshot()
	prevLastMove := b.lastMove
	ply := Ply{Piece: *piece, From: from, To: to}

	for _, sq := range effect.Captures {
		if victim := b.pieceAt(sq); victim != nil {
			if ply.CapturedPiece == nil {
				captured := *victim
				ply.CapturedPiece = &captured
			}
			b.clear(sq)
		}
	}
	if target != nil {
		captured := *target
		ply.CapturedPiece = &captured
		b.clear(to)
	}

	b.clear(from)
	piece.Position = to
	b.set(to, piece)

	b.lastMove = &LastMove{From: from, To: to, Piece: *piece}
	ply.Promotion = b.applyPromotion(piece)
	ply.Notation = ply.getNotation()

	b.history.push(HistoryEntry{
		Ply:          ply,
		Player:       player,
		prevLastMove: prevLastMove,
		snapshot:     snap,
	})
	b.moveCount++
	return ply, nil
}

// applyPromotion replaces a piece that reached its last row, when the rule set asks for it.
func (b *Board) applyPromotion(pc *Piece) PieceType {
	if pc.Position.Y != pc.Color.lastRow() {
		return ""
	}
	var next PieceType
	switch {
	case b.gameType == GameChess && pc.Type == Pawn:
		next = b.promote(pc.Color)
		if !next.isPromotionChoice() {
			next = Queen
		}
	case b.gameType == GameCheckers && pc.Type == Checker:
		next = CheckerKing
	case b.gameType == GameModifiedChess && pc.Type == LightRook:
		next = Rook
	default:
		return ""
	}
	pc.Type = next
	b.set(pc.Position, pc)
	return next
}

// guardianProtected reports whether the guardian on pos has an ally on a neighboring cell.
func (b *Board) guardianProtected(pos Position) bool {
	guardian := b.pieceAt(pos)
	if guardian == nil {
		return false
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if ally := b.pieceAt(pos.offset(dx, dy)); ally != nil && ally.Color == guardian.Color {
				return true
			}
		}
	}
	return false
}

// ThreatenedPositions lists squares of player's pieces that some opposing piece may currently
// move onto.
func (b *Board) ThreatenedPositions(player Color) []Position {
	var out []Position
	for pos, pc := range b.pieces {
		if pc.Color == player && b.isUnderThreat(pos, player.Opponent()) {
			out = append(out, pos)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return positionLess(out[i], out[j])
	})
	return out
}

// KingInCheck reports whether player's chess king is among the threatened pieces.
func (b *Board) KingInCheck(player Color) bool {
	for pos, pc := range b.pieces {
		if pc.Color == player && pc.Type == King && b.isUnderThreat(pos, player.Opponent()) {
			return true
		}
	}
	return false
}

func (b *Board) isUnderThreat(pos Position, attacker Color) bool {
	for _, pc := range b.pieces {
		if pc.Color == attacker && pc.CanMove(pos, b) {
			return true
		}
	}
	return false
}

func (b *Board) enPassantVictim(p Piece, dest Position) (Position, bool) {
	lm := b.lastMove
	if lm == nil || lm.Piece.Type != Pawn || lm.Piece.Color == p.Color {
		return Position{}, false
	}
	if abs(lm.To.Y-lm.From.Y) != 2 || lm.To.Y != p.Position.Y || lm.To.X != dest.X {
		return Position{}, false
	}
	victim := b.pieceAt(lm.To)
	if victim == nil || victim.Type != Pawn || victim.Color == p.Color {
		return Position{}, false
	}
	return lm.To, true
}

// pathClear reports whether every cell strictly between from and to is empty. from and to
// must share a row, column or diagonal.
func (b *Board) pathClear(from, to Position) bool {
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)
	for cur := from.offset(sx, sy); cur != to; cur = cur.offset(sx, sy) {
		if !b.isEmpty(cur) {
			return false
		}
	}
	return true
}

func (b *Board) pieceAt(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	return b.pieces[pos]
}

func (b *Board) isEmpty(pos Position) bool {
	return b.grid[pos.Y][pos.X] == emptyCell
}

func (b *Board) set(pos Position, pc *Piece) {
	b.pieces[pos] = pc
	b.grid[pos.Y][pos.X] = pc.Symbol()
}

func (b *Board) clear(pos Position) {
	delete(b.pieces, pos)
	b.grid[pos.Y][pos.X] = emptyCell
}

func positionLess(a, b Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
