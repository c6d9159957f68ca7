package windows

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/plotpad/pkg/debug"
	"github.com/roffe/plotpad/pkg/eventbus"
	"github.com/roffe/plotpad/pkg/export"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/render"
	"github.com/skratchdot/open-golang/open"
	sdialog "github.com/sqweek/dialog"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func initClipboard() error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	return clipboardErr
}

func (mw *MainWindow) createButtons() {
	mw.buttons.clearBtn = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), mw.clearPoints)
	mw.buttons.copyBtn = widget.NewButtonWithIcon("Copy points", theme.ContentCopyIcon(), mw.copyPoints)
	mw.buttons.copyImageBtn = widget.NewButtonWithIcon("", theme.MediaPhotoIcon(), mw.copyImage)
	mw.buttons.exportBtn = widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), mw.exportDialog)
	mw.buttons.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), mw.showSettings)
}

func (mw *MainWindow) clearPoints() {
	mw.model.ClearPoints()
	if err := mw.bus.Publish(eventbus.TopicCleared, graph.Point{}, 0); err != nil {
		log.Println(err)
	}
}

func (mw *MainWindow) copyPoints() {
	csv := export.CSV(mw.model.Points())
	if err := initClipboard(); err != nil {
		// fall back to the window clipboard, text only
		mw.Clipboard().SetContent(csv)
	} else {
		clipboard.Write(clipboard.FmtText, []byte(csv))
	}
	mw.statusText.SetText(fmt.Sprintf("Copied %d points", mw.model.Len()))
}

func (mw *MainWindow) copyImage() {
	if err := initClipboard(); err != nil {
		dialog.ShowError(fmt.Errorf("clipboard: %w", err), mw)
		return
	}
	var buf bytes.Buffer
	if err := export.Write(mw.snapshot(), "png", &buf, mw.exportOptions()); err != nil {
		dialog.ShowError(err, mw)
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	mw.statusText.SetText("Copied image")
}

func (mw *MainWindow) snapshot() *render.Recording {
	s := mw.graph.Size()
	return export.Render(mw.model, int(s.Width), int(s.Height), mw.exportOptions())
}

func (mw *MainWindow) exportOptions() export.Options {
	opts := export.DefaultOptions
	opts.LineWidth = mw.settings.LineWidth()
	return opts
}

func (mw *MainWindow) exportDialog() {
	filename, err := sdialog.File().
		Filter("PNG image", "png").
		Filter("SVG image", "svg").
		Filter("PDF document", "pdf").
		SetStartDir(mw.settings.LastExportDir()).
		Title("Export graph").
		Save()
	if err != nil {
		if errors.Is(err, sdialog.ErrCancelled) {
			return
		}
		dialog.ShowError(err, mw)
		return
	}
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := mw.exportTo(filename); err != nil {
		dialog.ShowError(err, mw)
		return
	}
	dialog.ShowConfirm("Export done", "Open "+filepath.Base(filename)+"?", func(ok bool) {
		if !ok {
			return
		}
		if err := open.Run(filename); err != nil {
			log.Printf("open %s: %v", filename, err)
		}
	}, mw)
}

func (mw *MainWindow) exportTo(filenames ...string) error {
	if err := export.Files(context.Background(), mw.snapshot(), mw.exportOptions(), filenames...); err != nil {
		return err
	}
	if len(filenames) > 0 {
		mw.settings.SetLastExportDir(filepath.Dir(filenames[0]))
	}
	mw.statusText.SetText(fmt.Sprintf("Exported %d file(s)", len(filenames)))
	debug.Log(fmt.Sprintf("export %v", filenames))
	return nil
}
