package main

import (
	"flag"
	"log"

	"github.com/calder-hay/nightwatch/internal/guard"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Int64("seed", 42, "RNG seed for the demo scene")
	flag.Parse()

	ebiten.SetWindowTitle("Nightwatch")
	ebiten.SetWindowSize(1280, 720)
	if err := ebiten.RunGame(guard.NewApp(*seed)); err != nil {
		log.Fatal(err)
	}
}
