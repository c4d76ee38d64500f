package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/benbeisheim/gridgames/internal/model"
	"github.com/benbeisheim/gridgames/internal/service"
	"github.com/benbeisheim/gridgames/internal/ws"
)

func wsMessage(t *testing.T, typ ws.MessageType, payload any) ws.Message {
	t.Helper()
	msg := ws.Message{Type: typ}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		msg.Payload = raw
	}
	return msg
}

func TestHandleMessage(t *testing.T) {
	gameService := service.NewGameService(service.NewGameManager())
	gameID, err := gameService.CreateGame("chess", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	wsc := NewWebSocketController(gameService)

	tests := []struct {
		name      string
		msg       ws.Message
		wantErr   error
		anyErr    bool
		moveCount int
		toMove    model.Color
	}{
		{"move", wsMessage(t, ws.MessageTypeMove, model.MoveRequest{From: "E2", To: "E4"}), nil, false, 1, model.Black},
		{"out of turn", wsMessage(t, ws.MessageTypeMove, model.MoveRequest{From: "D2", To: "D4"}), model.ErrWrongOwner, true, 1, model.Black},
		{"malformed move", ws.Message{Type: ws.MessageTypeMove, Payload: json.RawMessage(`{"from":`)}, nil, true, 1, model.Black},
		{"bad square", wsMessage(t, ws.MessageTypeMove, model.MoveRequest{From: "E9", To: "E5"}), model.ErrInvalidPosition, true, 1, model.Black},
		{"undo", wsMessage(t, ws.MessageTypeUndo, nil), nil, false, 0, model.White},
		{"nothing to undo", wsMessage(t, ws.MessageTypeUndo, nil), nil, true, 0, model.White},
		{"unknown type", wsMessage(t, "resign", nil), nil, true, 0, model.White},
		{"state is not a request", wsMessage(t, ws.MessageTypeGameState, nil), nil, true, 0, model.White},
	}
	for _, tt := range tests {
		err := wsc.handleMessage(gameID, tt.msg)
		switch {
		case tt.wantErr != nil && !errors.Is(err, tt.wantErr):
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.wantErr, err)
		case tt.anyErr && err == nil:
			t.Fatalf("%s: expected an error", tt.name)
		case !tt.anyErr && err != nil:
			t.Fatalf("%s: %v", tt.name, err)
		}

		state, err := gameService.GetGameState(gameID)
		if err != nil {
			t.Fatalf("%s: state: %v", tt.name, err)
		}
		if state.MoveCount != tt.moveCount || state.ToMove != tt.toMove {
			t.Fatalf("%s: state = %d moves, %s to move", tt.name, state.MoveCount, state.ToMove)
		}
	}
}

func TestHandleMessageUnknownGame(t *testing.T) {
	wsc := NewWebSocketController(service.NewGameService(service.NewGameManager()))
	if err := wsc.handleMessage("missing", wsMessage(t, ws.MessageTypeMove, model.MoveRequest{From: "E2", To: "E4"})); !errors.Is(err, service.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if err := wsc.handleMessage("missing", wsMessage(t, ws.MessageTypeUndo, nil)); !errors.Is(err, service.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}
