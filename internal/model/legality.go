package model

// MoveEffect is the outcome of evaluating a move. Captures lists squares other than the
// destination whose occupants the move removes (en passant, checker jumps, checker king captures).
type MoveEffect struct {
	Legal    bool
	Captures []Position
}

var illegal = MoveEffect{}

func legal(captures ...Position) MoveEffect {
	return MoveEffect{Legal: true, Captures: captures}
}

// CanMove reports whether the piece may move from its current square to dest.
func (p Piece) CanMove(dest Position, b *Board) bool {
	return p.Evaluate(dest, b).Legal
}

// Evaluate applies the piece's movement rule against the current board. It never mutates
// the board. Destination ownership is left to the board except where a rule depends on it.
func (p Piece) Evaluate(dest Position, b *Board) MoveEffect {
	if !dest.InBounds() || !p.Position.InBounds() || dest == p.Position {
		return illegal
	}
	switch p.Type {
	case Pawn:
		return p.evaluatePawn(dest, b)
	case Rook:
		return boolEffect(p.orthogonal(dest) && b.pathClear(p.Position, dest))
	case Bishop:
		return boolEffect(p.diagonal(dest) && b.pathClear(p.Position, dest))
	case Queen:
		return boolEffect((p.orthogonal(dest) || p.diagonal(dest)) && b.pathClear(p.Position, dest))
	case Knight:
		dx, dy := p.delta(dest)
		return boolEffect((dx == 2 && dy == 1) || (dx == 1 && dy == 2))
	case King, Guardian:
		return boolEffect(p.distance(dest) == 1)
	case LightRook:
		return boolEffect(p.orthogonal(dest) && p.distance(dest) <= 2 && b.pathClear(p.Position, dest))
	case ShortBishop:
		return boolEffect(p.diagonal(dest) && p.distance(dest) <= 2 && b.pathClear(p.Position, dest))
	case Checker:
		return p.evaluateChecker(dest, b)
	case CheckerKing:
		return p.evaluateCheckerKing(dest, b)
	default:
		return illegal
	}
}

func (p Piece) evaluatePawn(dest Position, b *Board) MoveEffect {
	dir := p.Color.forward()
	startRow := 6
	if p.Color == Black {
		startRow = 1
	}
	dx := dest.X - p.Position.X
	dy := dest.Y - p.Position.Y

	if dx == 0 && dy == dir && b.isEmpty(dest) {
		return legal()
	}
	if dx == 0 && dy == 2*dir && p.Position.Y == startRow &&
		b.isEmpty(dest) && b.isEmpty(p.Position.offset(0, dir)) {
		return legal()
	}
	if abs(dx) == 1 && dy == dir {
		if target := b.pieceAt(dest); target != nil {
			return boolEffect(target.Color != p.Color)
		}
		if victim, ok := b.enPassantVictim(p, dest); ok {
			return legal(victim)
		}
	}
	return illegal
}

func (p Piece) evaluateChecker(dest Position, b *Board) MoveEffect {
	dir := p.Color.forward()
	dx := dest.X - p.Position.X
	dy := dest.Y - p.Position.Y

	if dy == dir && abs(dx) == 1 && b.isEmpty(dest) {
		return legal()
	}
	if dy == 2*dir && abs(dx) == 2 && b.isEmpty(dest) {
		mid := p.Position.offset(dx/2, dir)
		if jumped := b.pieceAt(mid); jumped != nil && jumped.Color != p.Color {
			return legal(mid)
		}
	}
	return illegal
}

// A checker king flies along a diagonal and may jump exactly one enemy piece on the way.
func (p Piece) evaluateCheckerKing(dest Position, b *Board) MoveEffect {
	if !p.diagonal(dest) || !b.isEmpty(dest) {
		return illegal
	}
	sx, sy := sign(dest.X-p.Position.X), sign(dest.Y-p.Position.Y)
	var captures []Position
	for cur := p.Position.offset(sx, sy); cur != dest; cur = cur.offset(sx, sy) {
		occupant := b.pieceAt(cur)
		if occupant == nil {
			continue
		}
		if occupant.Color == p.Color || len(captures) > 0 {
			return illegal
		}
		captures = append(captures, cur)
	}
	return legal(captures...)
}

func boolEffect(ok bool) MoveEffect {
	if ok {
		return legal()
	}
	return illegal
}

func (p Piece) delta(dest Position) (int, int) {
	return abs(dest.X - p.Position.X), abs(dest.Y - p.Position.Y)
}

// distance is the Chebyshev distance to dest.
func (p Piece) distance(dest Position) int {
	dx, dy := p.delta(dest)
	return max(dx, dy)
}

func (p Piece) orthogonal(dest Position) bool {
	dx, dy := p.delta(dest)
	return (dx == 0) != (dy == 0)
}

func (p Piece) diagonal(dest Position) bool {
	dx, dy := p.delta(dest)
	return dx == dy && dx != 0
}
