package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sudokatie/hollow/internal/app"
	"github.com/sudokatie/hollow/internal/input/key"
	"github.com/sudokatie/hollow/internal/session"
)

// tickEvery is how often the run loop wakes the session for time-based
// housekeeping when no keys arrive.
const tickEvery = 500 * time.Millisecond

// Run drives the session against a live terminal until it asks to quit.
func Run(sess *session.Session, view *View, log *app.Logger) error {
	screen, err := NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(tickEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				screen.Post(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	for {
		width, height := screen.Size()
		sess.SetViewportRows(height - 1)
		screen.Draw(view.Frame(sess, width, height))

		switch ev := screen.Poll().(type) {
		case *tcell.EventKey:
			kev := translateKey(ev)
			if kev.Key != key.KeyNone {
				sess.HandleKey(kev)
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			sess.Tick()
		case *tcell.EventError:
			log.Error("terminal: %v", ev)
			return nil
		}

		sess.Tick()
		if sess.ShouldQuit() {
			return nil
		}
	}
}
