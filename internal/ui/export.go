package ui

import (
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// export asks for a destination and writes the drawing there.
func (t *Toolbar) export(format string) {
	p := t.board.Pad()
	write := p.ExportPNG
	if format == "pdf" {
		write = p.ExportPDF
	}
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		if w == nil {
			return // cancelled
		}
		if err := saveTo(w, write); err != nil {
			log.Printf("[UI] export %s: %v", format, err)
			dialog.ShowError(err, t.window)
			return
		}
		t.status.SetText(fmt.Sprintf("Exported %s", w.URI().Name()))
	}, t.window)
	d.SetFileName("sketchpad." + format)
	d.Show()
}

func saveTo(w fyne.URIWriteCloser, write func(io.Writer) error) error {
	if err := write(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.URI().Name(), err)
	}
	return nil
}
