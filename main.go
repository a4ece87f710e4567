package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"retroracer/pkg/config"
	"retroracer/pkg/game"
)

func main() {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
