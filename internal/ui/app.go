package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"StickerPad/internal/config"
	"StickerPad/internal/pad"
)

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Sticker Sketchpad")
	myWindow.Resize(fyne.NewSize(640, 480))

	board := NewBoardWidget(pad.New(cfg, nil))
	status := widget.NewLabel("Ready")
	toolbar := NewToolbar(board, myWindow, status)

	content := container.NewBorder(toolbar.Content(), status, nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
