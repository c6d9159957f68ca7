package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xlayout "github.com/roffe/plotpad/pkg/layout"
)

func (mw *MainWindow) newToolbar() *fyne.Container {
	return container.NewBorder(
		nil,
		nil,
		container.NewHBox(
			widget.NewLabel("y ="),
			xlayout.NewFixedWidth(140, mw.selects.functionLookup),
			widget.NewLabel("Radius"),
			xlayout.NewFixedWidth(70, mw.selects.radiusEntry),
			widget.NewSeparator(),
			mw.buttons.clearBtn,
		),
		container.NewHBox(
			mw.buttons.copyBtn,
			mw.buttons.copyImageBtn,
			mw.buttons.exportBtn,
			mw.buttons.settingsBtn,
		),
	)
}
