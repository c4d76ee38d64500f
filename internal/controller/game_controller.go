package controller

import (
	"errors"

	"github.com/benbeisheim/gridgames/internal/model"
	"github.com/benbeisheim/gridgames/internal/notation"
	"github.com/benbeisheim/gridgames/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	GameType string `json:"gameType"`
	FEN      string `json:"fen"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.GameType == "" {
		req.GameType = string(model.GameChess)
	}

	gameID, err := gc.gameService.CreateGame(req.GameType, req.FEN)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	ply, err := gc.gameService.HandleMove(gameID, move)
	if err != nil {
		return errorResponse(c, err)
	}
	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"ply":   ply,
		"state": state,
	})
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	player, ok, err := gc.gameService.HandleUndo(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	if !ok {
		return c.JSON(fiber.Map{
			"message": "nothing to undo",
			"state":   state,
		})
	}
	return c.JSON(fiber.Map{
		"message": "move undone",
		"player":  player,
		"state":   state,
	})
}

func (gc *GameController) GetThreats(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	var color model.Color
	var err error
	if q := c.Query("color"); q != "" {
		color, err = model.ParseColor(q)
	} else {
		color, err = gc.gameService.ToMove(gameID)
	}
	if err != nil {
		return errorResponse(c, err)
	}

	threatened, inCheck, err := gc.gameService.Threats(gameID, color)
	if err != nil {
		return errorResponse(c, err)
	}
	squares := make([]string, 0, len(threatened))
	for _, pos := range threatened {
		squares = append(squares, pos.String())
	}
	return c.JSON(fiber.Map{
		"color":       color,
		"threatened":  squares,
		"kingInCheck": inCheck,
	})
}

func (gc *GameController) GetFEN(c *fiber.Ctx) error {
	fen, err := gc.gameService.ExportFEN(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"fen": fen,
	})
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	var moveErr *model.MoveError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	// Checked before MoveError: a bad promotion choice is a request error.
	case errors.Is(err, model.ErrInvalidPosition),
		errors.Is(err, model.ErrUnknownGameType),
		errors.Is(err, model.ErrUnknownColor),
		errors.Is(err, model.ErrInvalidPromotion),
		errors.Is(err, model.ErrUnsupportedPiece),
		errors.Is(err, notation.ErrInvalidFEN):
		return fiber.StatusBadRequest
	case errors.As(err, &moveErr):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
