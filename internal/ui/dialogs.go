package ui

import (
	"image/color"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// fyneDialogs implements the controller's dialog and notifier interfaces on
// top of fyne's standard dialogs.
type fyneDialogs struct {
	win    fyne.Window
	status func(string)
}

func (d *fyneDialogs) PickColor(done func(color.Color, bool)) {
	picker := dialog.NewColorPicker("Pick a Color", "Stroke color", func(c color.Color) {
		done(c, true)
	}, d.win)
	picker.Advanced = true
	picker.Show()
}

func (d *fyneDialogs) PickSavePath(done func(string, bool)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			d.Error(err)
			return
		}
		if writer == nil {
			done("", false)
			return
		}
		path := writer.URI().Path()
		// The dialog creates an empty file; the exporter writes its own.
		if err := writer.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[EXPORT] Could not remove placeholder %s: %v", path, err)
		}
		done(path, true)
	}, d.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf"}))
	fd.SetFileName("drawing.png")
	fd.Show()
}

func (d *fyneDialogs) Info(title, message string) {
	if d.status != nil {
		d.status(message)
	}
	dialog.ShowInformation(title, message, d.win)
}

func (d *fyneDialogs) Error(err error) {
	if d.status != nil {
		d.status("Export failed")
	}
	dialog.ShowError(err, d.win)
}
