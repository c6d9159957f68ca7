// Command plotpad-ebiten runs the plotting surface in an ebiten window.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/roffe/plotpad/pkg/controller"
	"github.com/roffe/plotpad/pkg/functions"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/redraw"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	fnName := flag.String("func", "half", "function to draw")
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	flag.Parse()

	g := newGame(controller.New(graph.New(), redraw.New(nil), controller.WithOnPointAdded(
		func(c *controller.Controller, p graph.Point) {
			log.Printf("added %s, %d points", p, c.Model().Len())
		},
	)))

	fn, err := functions.Lookup(*fnName, functions.SizeFunc(g.Size))
	if err != nil {
		log.Fatal(err)
	}
	g.ctrl.Model().SetFunc(fn)

	ebiten.SetWindowTitle("plotpad")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
