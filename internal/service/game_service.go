package service

import (
	"fmt"
	"log"

	"github.com/benbeisheim/gridgames/internal/model"
	"github.com/benbeisheim/gridgames/internal/notation"
	"github.com/benbeisheim/gridgames/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a session. fen is optional and only accepted for chess.
func (gs *GameService) CreateGame(gameType, fen string) (string, error) {
	gt, err := model.ParseGameType(gameType)
	if err != nil {
		return "", err
	}
	gameID := uuid.New().String()

	var game *model.Game
	if fen != "" {
		if gt != model.GameChess {
			return "", fmt.Errorf("%w: only %s games start from a fen", notation.ErrInvalidFEN, model.GameChess)
		}
		board, toMove, err := notation.LoadFEN(fen)
		if err != nil {
			return "", err
		}
		game = model.NewGameWithBoard(gameID, board, toMove)
	} else {
		game, err = model.NewGame(gameID, gt)
		if err != nil {
			return "", err
		}
	}

	if err := gs.gameManager.AddGame(game); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.GameIDs()
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.RemoveGame(gameID)
}

func (gs *GameService) GameExists(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// ExportFEN renders a chess session as a FEN record that CreateGame accepts.
func (gs *GameService) ExportFEN(gameID string) (string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	var fen string
	err = game.Inspect(func(board *model.Board, toMove model.Color) error {
		var err error
		fen, err = notation.ExportFEN(board, toMove)
		return err
	})
	return fen, err
}

func (gs *GameService) ToMove(gameID string) (model.Color, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.ToMove(), nil
}

func (gs *GameService) HandleMove(gameID string, move model.MoveRequest) (model.Ply, error) {
	ply, err := gs.gameManager.MakeMove(gameID, move)
	if err != nil {
		return model.Ply{}, err
	}
	log.Printf("game %s: %s", gameID, ply.Notation)
	return ply, nil
}

func (gs *GameService) HandleUndo(gameID string) (model.Color, bool, error) {
	return gs.gameManager.Undo(gameID)
}

func (gs *GameService) Threats(gameID string, color model.Color) ([]model.Position, bool, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, false, err
	}
	threatened, inCheck := game.Threats(color)
	return threatened, inCheck, nil
}

func (gs *GameService) RegisterConnection(gameID string, connID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, connID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, connID string) {
	gs.gameManager.UnregisterConnection(gameID, connID)
}

func (gs *GameService) SendError(gameID, connID, msg string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	if err := game.Send(connID, ws.NewError(msg)); err != nil {
		log.Printf("game %s: send error to %s: %v", gameID, connID, err)
	}
}
