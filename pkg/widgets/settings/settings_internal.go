package settings

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/widget"
)

func (sw *Widget) newClickSound() *widget.Check {
	return widget.NewCheck("Click when a point is added", func(b bool) {
		sw.cfg.Settings.SetClickSound(b)
	})
}

func (sw *Widget) newDebugLog() *widget.Check {
	return widget.NewCheck("Write debug log", func(b bool) {
		sw.cfg.Settings.SetDebugLog(b)
		if sw.cfg.OnDebugLog != nil {
			sw.cfg.OnDebugLog(b)
		}
	})
}

func (sw *Widget) newAntialias() *widget.Check {
	return widget.NewCheck("Antialiased drawing (uncheck if you have a slow pc)", func(b bool) {
		sw.cfg.Settings.SetAntialias(b)
		if sw.cfg.OnAntialias != nil {
			sw.cfg.OnAntialias(b)
		}
	})
}

func (sw *Widget) newLineWidthSlider() *widget.Slider {
	slider := widget.NewSlider(0.5, 5)
	slider.Step = 0.5
	slider.OnChanged = func(f float64) {
		sw.lineWidthValue.SetText(strconv.FormatFloat(f, 'f', 1, 64))
	}
	slider.OnChangeEnded = func(f float64) {
		sw.cfg.Settings.SetLineWidth(f)
		if sw.cfg.OnLineWidth != nil {
			sw.cfg.OnLineWidth(f)
		}
	}
	return slider
}

func (sw *Widget) browseExportDir() {
	dir, err := selectFolder()
	if err != nil {
		log.Printf("select folder: %v", err)
		return
	}
	sw.cfg.Settings.SetLastExportDir(dir)
	sw.exportDir.SetText(dir)
}

func (sw *Widget) loadPreferences() {
	s := sw.cfg.Settings
	sw.clickSound.SetChecked(s.ClickSound())
	sw.debugLog.SetChecked(s.DebugLog())
	sw.antialias.SetChecked(s.Antialias())
	sw.lineWidth.SetValue(s.LineWidth())
	sw.lineWidthValue.SetText(strconv.FormatFloat(s.LineWidth(), 'f', 1, 64))
	loadText(sw.exportDir, s.LastExportDir(), "(current directory)")
}

func loadText(obj SetText, value, fallback string) {
	if value == "" {
		value = fallback
	}
	obj.SetText(value)
}

// PositiveFloatValidator parses s, accepting a comma as decimal separator.
func PositiveFloatValidator(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	s = strings.TrimSuffix(s, ".")

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("invalid number")
	}
	if val <= 0 {
		return 0, errors.New("must be positive")
	}
	return val, nil
}
