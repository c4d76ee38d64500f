package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/benbeisheim/gridgames/internal/model"
	"github.com/benbeisheim/gridgames/internal/service"
	"github.com/benbeisheim/gridgames/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	connID := uuid.New().String()

	if err := wsc.gameService.RegisterConnection(gameID, connID, c); err != nil {
		log.Printf("Failed to register connection: %v", err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, connID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			wsc.gameService.SendError(gameID, connID, "malformed message")
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			log.Printf("handle error: %v", err)
			wsc.gameService.SendError(gameID, connID, err.Error())
		}
	}
}

// Handle different types of incoming messages. Successful moves and undos are broadcast
// by the game itself.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, move)
		return err
	case ws.MessageTypeUndo:
		if _, ok, err := wsc.gameService.HandleUndo(gameID); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("nothing to undo")
		}
		return nil
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
