package windows

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"
	"github.com/roffe/plotpad/pkg/controller"
	"github.com/roffe/plotpad/pkg/debug"
	"github.com/roffe/plotpad/pkg/eventbus"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/redraw"
	"github.com/roffe/plotpad/pkg/settings"
	"github.com/roffe/plotpad/pkg/sound"
	"github.com/roffe/plotpad/pkg/widgets/graphwidget"
	settingsview "github.com/roffe/plotpad/pkg/widgets/settings"
)

type MainWindow struct {
	fyne.Window
	app      fyne.App
	settings *settings.Settings
	bus      *eventbus.Controller

	model *graph.Model
	ctrl  *controller.Controller
	graph *graphwidget.Graph

	selects    *mainWindowSelects
	buttons    *mainWindowButtons
	statusText *widget.Label
	hoverText  *widget.Label
	legend     []*graphwidget.LegendEntry

	cancelSubs []func()
}

type mainWindowSelects struct {
	functionLookup *xwidget.CompletionEntry
	radiusEntry    *widget.Entry
}

type mainWindowButtons struct {
	clearBtn     *widget.Button
	copyBtn      *widget.Button
	copyImageBtn *widget.Button
	exportBtn    *widget.Button
	settingsBtn  *widget.Button
}

func NewMainWindow(app fyne.App) *MainWindow {
	mw := &MainWindow{
		Window:     app.NewWindow("plotpad"),
		app:        app,
		settings:   settings.New(app.Preferences()),
		bus:        eventbus.New(eventbus.DefaultConfig),
		selects:    &mainWindowSelects{},
		buttons:    &mainWindowButtons{},
		statusText: widget.NewLabel("Tap the surface to add points"),
		hoverText:  widget.NewLabel(""),
	}

	if mw.settings.DebugLog() {
		mw.setDebugLog(true)
	}

	mw.model = graph.New()
	mw.settings.Apply(mw.model)
	mw.ctrl = controller.New(mw.model, redraw.New(nil),
		controller.WithOnPointAdded(mw.onPointAdded),
	)
	mw.graph = graphwidget.New(mw.ctrl,
		graphwidget.WithMinSize(fyne.NewSize(640, 420)),
		graphwidget.WithAntialias(mw.settings.Antialias()),
		graphwidget.WithLineWidth(mw.settings.LineWidth()),
		graphwidget.WithOnColorChange(mw.onColorChange),
		graphwidget.OnHover(mw.onHover),
	)

	mw.legend = []*graphwidget.LegendEntry{
		graphwidget.NewLegendEntry(mw.graph, graphwidget.TargetPoints),
		graphwidget.NewLegendEntry(mw.graph, graphwidget.TargetCurve),
	}

	mw.createSelects()
	mw.createButtons()
	mw.subscribe()
	mw.setFunction(mw.settings.Function())

	mw.SetOnClosed(mw.close)
	return mw
}

func (mw *MainWindow) Layout() fyne.CanvasObject {
	status := container.NewBorder(
		nil,
		nil,
		container.NewHBox(mw.legend[0], mw.legend[1]),
		mw.hoverText,
		mw.statusText,
	)
	return container.NewBorder(
		mw.newToolbar(),
		status,
		nil,
		nil,
		mw.graph,
	)
}

// onPointAdded runs for taps only. It is the single source of point.added
// events on the bus.
func (mw *MainWindow) onPointAdded(c *controller.Controller, p graph.Point) {
	if err := mw.bus.Publish(eventbus.TopicPointAdded, p, c.Model().Len()); err != nil {
		log.Println(err)
	}
	if mw.settings.ClickSound() {
		sound.Click()
	}
}

func (mw *MainWindow) onColorChange(t graphwidget.Target, c color.Color) {
	switch t {
	case graphwidget.TargetCurve:
		mw.settings.SetCurveColor(c)
	default:
		mw.settings.SetPointColor(c)
	}
	for _, l := range mw.legend {
		l.Refresh()
	}
}

func (mw *MainWindow) onHover(p graph.Point, inside bool) {
	if err := mw.bus.PublishHover(p, inside); err != nil {
		debug.Log(err.Error())
	}
}

func (mw *MainWindow) setDebugLog(enabled bool) {
	if !enabled {
		debug.Close()
		return
	}
	if err := debug.Enable(debug.DefaultFile); err != nil {
		log.Printf("debug log: %v", err)
	}
}

func (mw *MainWindow) close() {
	for _, cancel := range mw.cancelSubs {
		cancel()
	}
	mw.bus.Close()
	debug.Close()
}

func (mw *MainWindow) showSettings() {
	sw := settingsview.New(&settingsview.Config{
		Settings:    mw.settings,
		OnAntialias: mw.graph.SetAntialias,
		OnLineWidth: mw.graph.SetLineWidth,
		OnDebugLog:  mw.setDebugLog,
	})
	d := newDialog("Settings", sw, mw.Window)
	d.Resize(fyne.NewSize(420, 260))
	d.Show()
}
