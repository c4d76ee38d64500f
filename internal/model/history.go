package model

// HistoryEntry pairs an executed ply with the state needed to take it back exactly.
type HistoryEntry struct {
	Ply
	Player Color `json:"player"`

	prevLastMove *LastMove
	snapshot     boardSnapshot
}

// MoveHistory is an append-only stack of executed moves.
type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) push(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

func (h *MoveHistory) pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	idx := len(h.entries) - 1
	e := h.entries[idx]
	h.entries[idx] = HistoryEntry{}
	h.entries = h.entries[:idx]
	return e, true
}

func (h *MoveHistory) Len() int {
	return len(h.entries)
}

// Entries returns the executed moves oldest first.
func (h *MoveHistory) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// boardSnapshot is a deep copy of the grid and the piece map.
type boardSnapshot struct {
	grid   [8][8]string
	pieces map[Position]Piece
}

func (b *Board) snapshot() boardSnapshot {
	s := boardSnapshot{
		grid:   b.grid,
		pieces: make(map[Position]Piece, len(b.pieces)),
	}
	for pos, pc := range b.pieces {
		s.pieces[pos] = *pc
	}
	return s
}

func (b *Board) restore(s boardSnapshot) {
	b.grid = s.grid
	b.pieces = make(map[Position]*Piece, len(s.pieces))
	for pos, pc := range s.pieces {
		restored := pc
		b.pieces[pos] = &restored
	}
}

// Undo takes back the most recent move and reports who made it. ok is false when there is
// nothing to undo.
func (b *Board) Undo() (player Color, ok bool) {
	entry, ok := b.history.pop()
	if !ok {
		return "", false
	}
	b.restore(entry.snapshot)
	b.lastMove = entry.prevLastMove
	b.moveCount--
	return entry.Player, true
}

func (b *Board) History() []HistoryEntry {
	return b.history.Entries()
}
