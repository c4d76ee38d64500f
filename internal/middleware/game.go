package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// GameLookup reports whether a game id is registered.
type GameLookup func(gameID string) bool

// EnsureGame rejects requests whose :gameId does not name a live game.
func EnsureGame(exists GameLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}
		if !exists(gameID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "game not found",
			})
		}
		c.Locals("gameID", gameID)
		return c.Next()
	}
}
