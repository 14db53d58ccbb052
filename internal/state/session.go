package state

import "log"

// Session owns the drawing: the committed marks in z-order, the redo
// history and the mark currently being drawn.
//
// A Session is not safe for concurrent use. All commands and renders must
// come from the one goroutine that owns it.
type Session struct {
	marks   []Mark
	redo    []Mark
	active  int // index into marks, -1 when idle
	preview Preview

	// OnChanged is called synchronously after every change that affects
	// what Render draws.
	OnChanged func()
}

func NewSession() *Session {
	return &Session{active: -1}
}

func (s *Session) changed() {
	if s.OnChanged != nil {
		s.OnChanged()
	}
}

// StartMark begins a new mark at p and drops the redo history.
// A mark still in progress is finished first.
func (s *Session) StartMark(kind ToolKind, p Point, params ToolParams) Mark {
	m := NewMark(kind, p, params)
	s.marks = append(s.marks, m)
	s.active = len(s.marks) - 1
	s.redo = nil
	log.Printf("[SESSION] %s mark %s started at (%.0f, %.0f)", kind, m.ID(), p.X, p.Y)
	s.changed()
	return m
}

// ExtendActive feeds p to the mark being drawn. It reports false when idle.
func (s *Session) ExtendActive(p Point) bool {
	if s.active < 0 {
		return false
	}
	s.marks[s.active].Extend(p)
	s.changed()
	return true
}

// FinishMark freezes the active mark. The drawing itself does not change.
func (s *Session) FinishMark() {
	s.active = -1
}

// Undo moves the newest mark onto the redo history.
// It reports false, without notifying, when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.marks) == 0 {
		return false
	}
	s.active = -1
	last := len(s.marks) - 1
	m := s.marks[last]
	s.marks[last] = nil
	s.marks = s.marks[:last]
	s.redo = append(s.redo, m)
	log.Printf("[SESSION] undo %s (%d marks, %d redo)", m.ID(), len(s.marks), len(s.redo))
	s.changed()
	return true
}

// Redo puts the most recently undone mark back on top of the drawing.
// It reports false, without notifying, when the redo history is empty.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	s.active = -1
	last := len(s.redo) - 1
	m := s.redo[last]
	s.redo[last] = nil
	s.redo = s.redo[:last]
	s.marks = append(s.marks, m)
	log.Printf("[SESSION] redo %s (%d marks, %d redo)", m.ID(), len(s.marks), len(s.redo))
	s.changed()
	return true
}

// Clear drops every mark and the redo history.
func (s *Session) Clear() {
	s.marks = nil
	s.redo = nil
	s.active = -1
	log.Println("[SESSION] cleared")
	s.changed()
}

// SetPreview replaces the tool preview; nil removes it.
func (s *Session) SetPreview(p Preview) {
	if p == nil && s.preview == nil {
		return
	}
	s.preview = p
	s.changed()
}

func (s *Session) Preview() Preview { return s.preview }

// Drawing reports whether a mark is being drawn.
func (s *Session) Drawing() bool { return s.active >= 0 }

// Active returns the mark being drawn, if any.
func (s *Session) Active() (Mark, bool) {
	if s.active < 0 {
		return nil, false
	}
	return s.marks[s.active], true
}

// Marks returns the committed marks in render order.
func (s *Session) Marks() []Mark {
	out := make([]Mark, len(s.marks))
	copy(out, s.marks)
	return out
}

// RedoDepth returns the number of marks that Redo can restore.
func (s *Session) RedoDepth() int { return len(s.redo) }

// Render draws the marks in order and then the preview.
func (s *Session) Render(surf Surface) {
	RenderMarks(surf, s.marks)
	if s.preview != nil {
		s.preview.Render(surf)
	}
}

// RenderMarks draws marks in order onto surf.
func RenderMarks(surf Surface, marks []Mark) {
	for _, m := range marks {
		m.Render(surf)
	}
}
