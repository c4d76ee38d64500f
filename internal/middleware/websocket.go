package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade admits only upgrade requests for a game already resolved by EnsureGame.
// The game id is copied into wsGameID so the connection handler can read it after the upgrade.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		gameID, ok := c.Locals("gameID").(string)
		if !ok || gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}
		c.Locals("wsGameID", gameID)
		return c.Next()
	}
}
