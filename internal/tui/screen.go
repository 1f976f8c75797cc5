package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen wraps the tcell screen behind the small surface the run loop
// needs.
type Screen struct {
	tc tcell.Screen
}

// NewScreen allocates and initializes a terminal screen.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.SetCursorStyle(tcell.CursorStyleSteadyBar)
	return &Screen{tc: tc}, nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// Poll blocks for the next terminal event.
func (s *Screen) Poll() tcell.Event {
	return s.tc.PollEvent()
}

// Post queues an event behind any pending input, best effort.
func (s *Screen) Post(ev tcell.Event) {
	_ = s.tc.PostEvent(ev)
}

// Sync forces a full repaint, used after a resize.
func (s *Screen) Sync() {
	s.tc.Sync()
}

// Draw paints one frame and shows it.
func (s *Screen) Draw(f Frame) {
	width, height := s.tc.Size()
	s.tc.Clear()

	for y, row := range f.Rows {
		drawText(s.tc, 0, y, width, row, tcell.StyleDefault)
	}
	if f.Bottom != "" && height > 0 {
		drawText(s.tc, 0, height-1, width, f.Bottom, tcell.StyleDefault.Reverse(true))
	}

	if f.Overlay != nil {
		drawOverlay(s.tc, width, height, f.Overlay)
	}

	if f.CursorRow >= 0 {
		s.tc.ShowCursor(f.CursorCol, f.CursorRow)
	} else {
		s.tc.HideCursor()
	}

	s.tc.Show()
}

func drawText(tc tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > maxX {
			break
		}
		tc.SetContent(x, y, r, nil, style)
		x += w
	}
}

// drawOverlay centers the lines in a cleared box with a one-cell margin.
func drawOverlay(tc tcell.Screen, width, height int, lines []string) {
	boxW := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > boxW {
			boxW = w
		}
	}
	boxW += 4
	boxH := len(lines) + 2
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}
	left := (width - boxW) / 2
	top := (height - boxH) / 2

	style := tcell.StyleDefault.Reverse(true)
	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			tc.SetContent(x, y, ' ', nil, style)
		}
	}
	for i, line := range lines {
		drawText(tc, left+2, top+1+i, left+boxW, line, style)
	}
}
