package controller

import (
	"github.com/benbeisheim/gridgames/internal/middleware"
	"github.com/benbeisheim/gridgames/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Register mounts the REST and WebSocket routes on app.
func Register(app *fiber.App, gameService *service.GameService) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)
	ensureGame := middleware.EnsureGame(gameService.GameExists)

	app.Get("/ws/game/:gameId", ensureGame, middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api")
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/", gameController.ListGames)
	gameRoutes.Get("/:gameId", ensureGame, gameController.GetGameState)
	gameRoutes.Delete("/:gameId", ensureGame, gameController.DeleteGame)
	gameRoutes.Post("/:gameId/move", ensureGame, gameController.MakeMove)
	gameRoutes.Post("/:gameId/undo", ensureGame, gameController.Undo)
	gameRoutes.Get("/:gameId/threats", ensureGame, gameController.GetThreats)
	gameRoutes.Get("/:gameId/fen", ensureGame, gameController.GetFEN)
}
