package main

import (
	"flag"
	"log"
	"os"

	"github.com/benbeisheim/gridgames/internal/console"
	"github.com/benbeisheim/gridgames/internal/model"
)

func main() {
	game := flag.String("game", getenv("GRIDGAMES_GAME", ""), "chess, modified_chess or checkers (empty shows a menu)")
	fen := flag.String("fen", "", "starting position for chess")
	plain := flag.Bool("plain", false, "disable colored output")
	flag.Parse()

	opts := console.Options{FEN: *fen, Plain: *plain}
	if *game != "" {
		gt, err := model.ParseGameType(*game)
		if err != nil {
			log.Fatalf("game: %v", err)
		}
		opts.GameType = gt
	}

	if err := console.NewSession(os.Stdin, os.Stdout, opts).Run(); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
