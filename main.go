package main

import (
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/roffe/plotpad/pkg/debug"
	"github.com/roffe/plotpad/pkg/theme"
	"github.com/roffe/plotpad/pkg/windows"
)

var debugLog bool

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
	flag.BoolVar(&debugLog, "debug", false, "write "+debug.DefaultFile)
}

func main() {
	flag.Parse()

	a := app.NewWithID("com.roffe.plotpad")
	a.Settings().SetTheme(&theme.PlotTheme{})

	if debugLog {
		if err := debug.Enable(debug.DefaultFile); err != nil {
			log.Printf("debug log: %v", err)
		}
	}

	mw := windows.NewMainWindow(a)
	mw.SetMaster()
	mw.Resize(fyne.NewSize(1024, 768))
	mw.SetContent(mw.Layout())
	mw.ShowAndRun()
}
