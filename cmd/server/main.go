package main

import (
	"flag"
	"log"
	"os"

	"github.com/benbeisheim/gridgames/internal/controller"
	"github.com/benbeisheim/gridgames/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	addr := flag.String("addr", getenv("GRIDGAMES_ADDR", ":3000"), "listen address")
	origins := flag.String("origins", getenv("GRIDGAMES_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	flag.Parse()

	app := fiber.New(fiber.Config{
		AppName: "gridgames",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: *origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)
	controller.Register(app, gameService)

	log.Printf("listening on %s", *addr)
	log.Fatal(app.Listen(*addr))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
