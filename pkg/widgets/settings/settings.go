package settings

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/plotpad/pkg/settings"
)

type SetText interface {
	SetText(string)
}

// Config holds the hooks called when a setting changes.
type Config struct {
	Settings *settings.Settings

	OnAntialias func(bool)
	OnLineWidth func(float64)
	OnDebugLog  func(bool)
}

type Widget struct {
	widget.BaseWidget

	cfg *Config

	clickSound     *widget.Check
	debugLog       *widget.Check
	antialias      *widget.Check
	lineWidth      *widget.Slider
	lineWidthValue *widget.Label
	exportDir      *widget.Label

	container *fyne.Container
}

func New(cfg *Config) *Widget {
	sw := &Widget{
		cfg: cfg,
	}
	sw.ExtendBaseWidget(sw)

	sw.clickSound = sw.newClickSound()
	sw.debugLog = sw.newDebugLog()
	sw.antialias = sw.newAntialias()
	sw.lineWidthValue = widget.NewLabel("")
	sw.lineWidth = sw.newLineWidthSlider()

	sw.exportDir = widget.NewLabel("")
	sw.exportDir.Truncation = fyne.TextTruncateEllipsis

	sw.container = container.NewVBox(
		container.NewBorder(nil, nil, widget.NewIcon(theme.VolumeUpIcon()), nil, sw.clickSound),
		container.NewBorder(nil, nil, widget.NewIcon(theme.DocumentIcon()), nil, sw.debugLog),
		container.NewBorder(nil, nil, widget.NewIcon(theme.ColorPaletteIcon()), nil, sw.antialias),
		container.NewBorder(nil, nil, widget.NewLabel("Line width"), sw.lineWidthValue, sw.lineWidth),
		container.NewBorder(nil, nil,
			widget.NewLabel("Export folder"),
			widget.NewButtonWithIcon("", theme.FolderOpenIcon(), sw.browseExportDir),
			sw.exportDir,
		),
	)

	sw.loadPreferences()
	return sw
}

func (sw *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sw.container)
}
