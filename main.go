package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

func main() {
	debug := flag.Bool("debug", false, "start with the debug overlay and gizmos visible")
	fovSpec := flag.String("fov-spec", "zoom_fov.yaml", "fov zoom spec in config/ (disk copy overrides the embedded default)")
	orthoSpec := flag.String("ortho-spec", "zoom_ortho.yaml", "ortho zoom spec in config/")
	flag.Parse()

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("followzoom")

	game, err := NewGame(*fovSpec, *orthoSpec, *debug, clipboardOK)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
