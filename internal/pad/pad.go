// Package pad turns raw pointer and button input into drawing commands.
// Front ends own one Pad each and call it from a single goroutine.
package pad

import (
	"io"
	"math/rand"

	"StickerPad/internal/config"
	"StickerPad/internal/export"
	"StickerPad/internal/state"
)

type Pad struct {
	session *state.Session
	tools   *state.Toolbox
	cfg     config.Config

	pointer state.Point
	inside  bool

	dirty     bool
	onChanged func()
}

// New builds a pad from cfg. rng drives marker colours; nil uses the clock.
func New(cfg config.Config, rng *rand.Rand) *Pad {
	p := &Pad{
		session: state.NewSession(),
		tools:   state.NewToolbox(cfg.ThinWidth, cfg.ThickWidth, cfg.Stickers, rng),
		cfg:     cfg,
	}
	p.session.OnChanged = func() { p.dirty = true }
	return p
}

// OnChanged registers the callback run once after each input that changed
// what Render draws.
func (p *Pad) OnChanged(fn func()) { p.onChanged = fn }

// do runs one input and notifies once if the session changed along the way,
// however many mutations the input made.
func (p *Pad) do(fn func()) {
	p.dirty = false
	fn()
	if p.dirty && p.onChanged != nil {
		p.onChanged()
	}
	p.dirty = false
}

func (p *Pad) Session() *state.Session { return p.session }
func (p *Pad) Tools() *state.Toolbox   { return p.tools }

// Size is the logical canvas size in pixels.
func (p *Pad) Size() int { return p.cfg.CanvasSize }

func (p *Pad) refreshPreview() {
	if !p.inside {
		p.session.SetPreview(nil)
		return
	}
	p.session.SetPreview(state.PreviewFor(p.tools.Kind(), p.pointer, p.tools.Params()))
}

func (p *Pad) PointerDown(at state.Point) {
	p.do(func() {
		p.pointer, p.inside = at, true
		p.session.StartMark(p.tools.Kind(), at, p.tools.Params())
		p.refreshPreview()
	})
}

func (p *Pad) PointerMove(at state.Point) {
	p.do(func() {
		p.pointer, p.inside = at, true
		p.session.ExtendActive(at)
		p.refreshPreview()
	})
}

func (p *Pad) PointerUp() {
	p.do(p.session.FinishMark)
}

// PointerLeave ends any mark in progress and hides the preview.
func (p *Pad) PointerLeave() {
	p.do(func() {
		p.inside = false
		p.session.FinishMark()
		p.refreshPreview()
	})
}

// SelectTool switches tools; glyph is only used by the sticker tool.
func (p *Pad) SelectTool(kind state.ToolKind, glyph string) {
	p.do(func() {
		p.tools.Select(kind, glyph)
		p.refreshPreview()
	})
}

// AddStickerGlyph offers a new sticker, ignoring blank text.
func (p *Pad) AddStickerGlyph(glyph string) bool {
	return p.tools.AddGlyph(glyph)
}

func (p *Pad) Undo() (ok bool) {
	p.do(func() { ok = p.session.Undo() })
	return ok
}

func (p *Pad) Redo() (ok bool) {
	p.do(func() { ok = p.session.Redo() })
	return ok
}

func (p *Pad) Clear() { p.do(p.session.Clear) }

// Render draws the marks and the tool preview onto s.
func (p *Pad) Render(s state.Surface) { p.session.Render(s) }

// ExportPNG writes the drawing, without the preview, at export.Scale times
// the canvas size.
func (p *Pad) ExportPNG(w io.Writer) error {
	return export.PNG(w, p.session.Marks(), p.cfg.CanvasSize, export.Scale)
}

func (p *Pad) ExportPDF(w io.Writer) error {
	return export.PDF(w, p.session.Marks(), p.cfg.CanvasSize)
}
