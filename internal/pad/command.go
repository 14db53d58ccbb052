package pad

import (
	"errors"
	"fmt"

	"StickerPad/internal/state"
)

// Command is one input event in wire form, as sent by the browser page and
// read from render scripts.
type Command struct {
	Type  string  `json:"type"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Tool  string  `json:"tool,omitempty"`
	Glyph string  `json:"glyph,omitempty"`
}

// Command types that do not touch the drawing and are left to the caller.
const (
	CmdExport    = "export"
	CmdExportPDF = "export_pdf"
)

var ErrUnknownCommand = errors.New("unknown command")

// ParseTool maps a tool name to its kind.
func ParseTool(name string) (state.ToolKind, bool) {
	for _, k := range []state.ToolKind{state.ToolThin, state.ToolThick, state.ToolSticker} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Apply runs one command against the pad.
func (p *Pad) Apply(c Command) error {
	at := state.Point{X: c.X, Y: c.Y}
	switch c.Type {
	case "down":
		p.PointerDown(at)
	case "move":
		p.PointerMove(at)
	case "up":
		p.PointerUp()
	case "leave":
		p.PointerLeave()
	case "tool":
		kind, ok := ParseTool(c.Tool)
		if !ok {
			return fmt.Errorf("tool %q: %w", c.Tool, ErrUnknownCommand)
		}
		p.SelectTool(kind, c.Glyph)
	case "sticker":
		p.AddStickerGlyph(c.Glyph)
	case "undo":
		p.Undo()
	case "redo":
		p.Redo()
	case "clear":
		p.Clear()
	default:
		return fmt.Errorf("%q: %w", c.Type, ErrUnknownCommand)
	}
	return nil
}
