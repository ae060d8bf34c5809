package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"starfield/game"
)

func main() {
	config := game.DefaultConfig()
	g, err := game.NewGame(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)
	// One update per displayed frame, like a display-synchronized callback.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
