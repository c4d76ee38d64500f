package model

import (
	"errors"
	"testing"
)

func newTestGame(t *testing.T, gameType GameType) *Game {
	t.Helper()
	g, err := NewGame("test", gameType)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestGameTurnOrder(t *testing.T) {
	g := newTestGame(t, GameChess)
	if g.ToMove() != White {
		t.Fatalf("white should move first")
	}

	if _, err := g.MakeMove(MoveRequest{From: "E7", To: "E5"}); !errors.Is(err, ErrWrongOwner) {
		t.Fatalf("black moved out of turn: %v", err)
	}
	if _, err := g.MakeMove(MoveRequest{From: "E2", To: "E4"}); err != nil {
		t.Fatalf("white move: %v", err)
	}
	if g.ToMove() != Black {
		t.Fatalf("turn did not pass to black")
	}
	if _, err := g.MakeMove(MoveRequest{From: "D2", To: "D4"}); !errors.Is(err, ErrWrongOwner) {
		t.Fatalf("white moved twice: %v", err)
	}
	if g.ToMove() != Black {
		t.Fatalf("a rejected move must not change the turn")
	}
}

func TestGameUndoRestoresTurn(t *testing.T) {
	g := newTestGame(t, GameChess)
	if _, ok := g.Undo(); ok {
		t.Fatalf("nothing to undo yet")
	}
	for _, mv := range []MoveRequest{{From: "E2", To: "E4"}, {From: "E7", To: "E5"}} {
		if _, err := g.MakeMove(mv); err != nil {
			t.Fatalf("%s-%s: %v", mv.From, mv.To, err)
		}
	}

	player, ok := g.Undo()
	if !ok || player != Black {
		t.Fatalf("undo = %v, %v", player, ok)
	}
	if g.ToMove() != Black {
		t.Fatalf("black should be to move again")
	}
	state := g.GetState()
	if state.MoveCount != 1 || len(state.MoveHistory) != 1 {
		t.Fatalf("state = %d moves, %d history", state.MoveCount, len(state.MoveHistory))
	}
	if state.MoveHistory[0].Notation != "E2-E4" || state.MoveHistory[0].Player != White {
		t.Fatalf("history entry = %+v", state.MoveHistory[0])
	}
}

func TestGameRequestPromotion(t *testing.T) {
	b := boardWith(t, GameChess, at("B7", Pawn, White), at("A8", Rook, Black), at("H1", King, White))
	g := NewGameWithBoard("promo", b, White)
	g.SetPromotion(func(Color) PieceType {
		t.Fatalf("the request choice should win over the chooser")
		return Queen
	})

	ply, err := g.MakeMove(MoveRequest{From: "B7", To: "A8", Promotion: Knight})
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if ply.Promotion != Knight || ply.Notation != "B7xA8=N" {
		t.Fatalf("ply = %+v", ply)
	}
	pc, err := g.Figure("A8")
	if err != nil || pc == nil || pc.Type != Knight {
		t.Fatalf("A8 = %+v, %v", pc, err)
	}

	// The chooser is restored once the move is done.
	g.SetPromotion(nil)
	if err := g.Inspect(func(b *Board, _ Color) error {
		if got := b.promote(White); got != Queen {
			t.Fatalf("chooser = %q", got)
		}
		return nil
	}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
}

func TestGameRejectsInvalidPromotion(t *testing.T) {
	b := boardWith(t, GameChess, at("E7", Pawn, White))
	g := NewGameWithBoard("promo", b, White)
	before := g.GetState()

	_, err := g.MakeMove(MoveRequest{From: "E7", To: "E8", Promotion: King})
	if !errors.Is(err, ErrInvalidPromotion) {
		t.Fatalf("expected ErrInvalidPromotion, got %v", err)
	}
	var moveErr *MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("expected *MoveError, got %T", err)
	}
	after := g.GetState()
	if after.Board != before.Board || after.MoveCount != 0 || after.ToMove != White {
		t.Fatalf("rejected promotion changed the game")
	}
}

func TestGameStateReportsCheck(t *testing.T) {
	b := boardWith(t, GameChess, at("E1", King, White), at("D8", Rook, Black), at("A8", King, Black))
	g := NewGameWithBoard("check", b, Black)

	if _, err := g.MakeMove(MoveRequest{From: "d8", To: "e8"}); err != nil {
		t.Fatalf("move: %v", err)
	}
	state := g.GetState()
	if !state.IsCheck || state.ToMove != White {
		t.Fatalf("state = check %v, to move %s", state.IsCheck, state.ToMove)
	}
	if len(state.Threatened) != 1 || state.Threatened[0] != MustParsePosition("E1") {
		t.Fatalf("threatened = %v", state.Threatened)
	}
	if state.LastMove == nil || state.LastMove.To != MustParsePosition("E8") {
		t.Fatalf("last move = %+v", state.LastMove)
	}

	threats, inCheck := g.Threats(Black)
	if inCheck || len(threats) != 0 {
		t.Fatalf("black threats = %v, %v", threats, inCheck)
	}
}

func TestNewGameUnknownType(t *testing.T) {
	if _, err := NewGame("x", "go"); !errors.Is(err, ErrUnknownGameType) {
		t.Fatalf("expected ErrUnknownGameType, got %v", err)
	}
}

func TestGameStateVersion(t *testing.T) {
	g := newTestGame(t, GameChess)
	if v := g.GetState().Version; v != 0 {
		t.Fatalf("fresh game version = %d", v)
	}
	if _, err := g.MakeMove(MoveRequest{From: "E2", To: "E4"}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if _, err := g.MakeMove(MoveRequest{From: "E2", To: "E4"}); err == nil {
		t.Fatalf("expected a rejected move")
	}
	if v := g.GetState().Version; v != 1 {
		t.Fatalf("version after one move and one rejection = %d", v)
	}
	g.Undo()
	if v := g.GetState().Version; v != 2 {
		t.Fatalf("undo must advance the version, got %d", v)
	}
	if _, ok := g.Undo(); ok {
		t.Fatalf("nothing left to undo")
	}
	if v := g.GetState().Version; v != 2 {
		t.Fatalf("an empty undo changed the version to %d", v)
	}
}

func TestBroadcastDropsStaleStates(t *testing.T) {
	gc := NewGameConnections()
	steps := []struct {
		version uint64
		want    bool
	}{
		{1, true},
		{3, true},
		{2, false},
		{3, true},
		{1, false},
		{4, true},
	}
	for _, s := range steps {
		if got := gc.advance(s.version); got != s.want {
			t.Fatalf("advance(%d) = %v after %d", s.version, got, gc.sent)
		}
	}
	if gc.sent != 4 {
		t.Fatalf("sent = %d", gc.sent)
	}
}

func TestBroadcastKeepsNewestState(t *testing.T) {
	g := NewGameWithBoard("order", NewBoard(GameChess), White)
	g.broadcastState(GameState{Version: 5})
	g.broadcastState(GameState{Version: 4})
	if g.connections.sent != 5 {
		t.Fatalf("an older state overtook a newer one: sent = %d", g.connections.sent)
	}
}
