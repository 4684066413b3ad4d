package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml tuning file (watched for changes)")
	debug := flag.Bool("debug", false, "show the state/hp overlay")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("grotto")

	if err := ebiten.RunGame(NewGame(*configPath, *debug)); err != nil {
		log.Fatal(err)
	}
}
