package windows

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"
	"github.com/roffe/plotpad/pkg/debug"
	"github.com/roffe/plotpad/pkg/eventbus"
	"github.com/roffe/plotpad/pkg/functions"
	settingsview "github.com/roffe/plotpad/pkg/widgets/settings"
)

func newDialog(title string, content fyne.CanvasObject, parent fyne.Window) dialog.Dialog {
	return dialog.NewCustom(title, "Close", content, parent)
}

func (mw *MainWindow) createSelects() {
	mw.selects.functionLookup = mw.newFunctionTypeahead()
	mw.selects.radiusEntry = mw.newRadiusEntry()
}

func (mw *MainWindow) newFunctionTypeahead() *xwidget.CompletionEntry {
	names := functions.Names()
	lookup := xwidget.NewCompletionEntry(names)
	lookup.PlaceHolder = "Function"

	lookup.OnChanged = func(s string) {
		var results []string
		for _, name := range names {
			if strings.HasPrefix(name, strings.ToLower(s)) {
				results = append(results, name)
			}
		}
		if len(results) == 0 || (len(results) == 1 && results[0] == s) {
			lookup.HideCompletion()
			if len(results) == 1 {
				mw.setFunction(s)
			}
			return
		}
		lookup.SetOptions(results)
		lookup.ShowCompletion()
	}
	lookup.OnSubmitted = func(s string) {
		mw.setFunction(strings.TrimSpace(s))
	}
	return lookup
}

// setFunction installs the named function on the model. The function reads
// the graph size on every evaluation so it follows window resizes.
func (mw *MainWindow) setFunction(name string) {
	fn, err := functions.Lookup(name, functions.SizeFunc(func() (int, int) {
		s := mw.graph.Size()
		return int(s.Width), int(s.Height)
	}))
	if err != nil {
		mw.statusText.SetText(err.Error())
		return
	}
	if name == "" {
		name = functions.None
	}
	mw.model.SetFunc(fn)
	mw.settings.SetFunction(name)
	if mw.selects.functionLookup != nil && mw.selects.functionLookup.Text != name {
		mw.selects.functionLookup.SetText(name)
	}
	debug.Log("function " + name)
}

func (mw *MainWindow) newRadiusEntry() *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(mw.model.Radius(), 'f', -1, 64))
	e.Validator = func(s string) error {
		_, err := settingsview.PositiveFloatValidator(s)
		return err
	}
	e.OnSubmitted = func(s string) {
		mw.setRadius(s)
	}
	return e
}

func (mw *MainWindow) setRadius(s string) {
	r, err := settingsview.PositiveFloatValidator(s)
	if err != nil {
		mw.statusText.SetText("radius: " + err.Error())
		return
	}
	if err := mw.model.SetRadius(r); err != nil {
		mw.statusText.SetText(err.Error())
		return
	}
	if err := mw.settings.SetRadius(r); err != nil {
		log.Println(err)
	}
}

func (mw *MainWindow) subscribe() {
	mw.cancelSubs = append(mw.cancelSubs,
		mw.bus.SubscribeFunc(eventbus.TopicPointAdded, func(ev eventbus.Event) {
			mw.statusText.SetText(fmt.Sprintf("Added %s, %d points", ev.Point, ev.Count))
			debug.Log(fmt.Sprintf("tap %s", ev.Point))
		}),
		mw.bus.SubscribeFunc(eventbus.TopicCleared, func(eventbus.Event) {
			mw.statusText.SetText("Cleared")
			debug.Log("cleared")
		}),
		mw.bus.SubscribeFunc(eventbus.TopicHover, func(ev eventbus.Event) {
			if !ev.Inside {
				mw.hoverText.SetText("")
				return
			}
			mw.hoverText.SetText(ev.Point.String())
		}),
	)
}
