package session

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sudokatie/hollow/internal/app"
	"github.com/sudokatie/hollow/internal/config"
	"github.com/sudokatie/hollow/internal/editor"
	"github.com/sudokatie/hollow/internal/engine/rope"
	"github.com/sudokatie/hollow/internal/input"
	"github.com/sudokatie/hollow/internal/input/key"
	"github.com/sudokatie/hollow/internal/search"
)

// Store is the persistence collaborator. The session only calls it between
// fully-applied edits.
type Store interface {
	// Load returns the document content, empty for a new document.
	Load() (string, error)

	// Save persists the full document.
	Save(content string) error

	// Backup snapshots the originally loaded content, at most once.
	Backup() error
}

// Overlay identifies the modal overlay covering the writing area, if any.
type Overlay int

const (
	// OverlayNone shows the plain writing area.
	OverlayNone Overlay = iota

	// OverlayHelp shows the key binding reference.
	OverlayHelp

	// OverlayQuitConfirm asks about unsaved changes before quitting.
	OverlayQuitConfirm
)

// savedIndicatorFor is how long the "Saved" marker stays in the status
// line after a successful save.
const savedIndicatorFor = 2 * time.Second

// Session is the single owner of all editing state. It is not safe for
// concurrent use; the driving loop applies one key event at a time.
type Session struct {
	ed     *editor.Editor
	search *search.Engine
	disp   *input.Dispatcher
	store  Store
	cfg    config.Config
	log    *app.Logger

	mode        input.Mode
	state       input.State
	overlay     Overlay
	searchInput []rune

	showStatus    bool
	statusShownAt time.Time
	spellcheck    bool

	shouldQuit bool

	now          func() time.Time
	startedAt    time.Time
	initialWords int
	lastSave     time.Time
	savedAt      time.Time
}

// New loads the document from the store and returns a ready session in
// Write mode.
func New(store Store, cfg config.Config, log *app.Logger) (*Session, error) {
	if log == nil {
		log = app.NullLogger
	}
	content, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	disp := input.NewDispatcher()
	if cfg.PageRows > 0 {
		disp.PageRows = cfg.PageRows
	}

	s := &Session{
		ed:         editor.New(),
		search:     search.New(),
		disp:       disp,
		store:      store,
		cfg:        cfg,
		log:        log,
		mode:       input.ModeWrite,
		showStatus: cfg.ShowStatus,
		now:        time.Now,
	}
	s.ed.Load(content)
	s.initialWords = s.ed.WordCount()
	s.startedAt = s.now()
	s.lastSave = s.now()

	log.Debug("session started: %d lines, %d words", s.ed.LineCount(), s.initialWords)
	return s, nil
}

// HandleKey routes one key event through the dispatcher and applies the
// resulting action. The quit-confirm overlay captures keys directly.
func (s *Session) HandleKey(ev key.Event) {
	if s.overlay == OverlayQuitConfirm {
		s.handleQuitConfirm(ev)
		return
	}
	s.Apply(s.disp.Handle(ev, s.mode, &s.state))
}

func (s *Session) handleQuitConfirm(ev key.Event) {
	switch {
	case ev.Key == key.KeyRune && (ev.Rune == 'y' || ev.Rune == 'Y'):
		if err := s.save(); err != nil {
			s.log.Error("save on quit failed: %v", err)
		}
		s.shouldQuit = true
	case ev.Key == key.KeyRune && (ev.Rune == 'n' || ev.Rune == 'N'):
		s.shouldQuit = true
	case ev.Key == key.KeyRune && (ev.Rune == 'c' || ev.Rune == 'C'), ev.IsEscape():
		s.overlay = OverlayNone
	}
}

// Apply performs one action against the session state.
func (s *Session) Apply(a input.Action) {
	switch a.Kind {
	case input.ActionNone:

	case input.ActionQuit:
		s.tryQuit()
	case input.ActionSave:
		if err := s.save(); err != nil {
			s.log.Error("save failed: %v", err)
		}

	case input.ActionInsertChar:
		s.backupBeforeEdit()
		s.ed.InsertChar(a.Rune)
	case input.ActionInsertNewline:
		s.backupBeforeEdit()
		s.ed.InsertNewline()
	case input.ActionDeleteBackward:
		s.backupBeforeEdit()
		s.ed.DeleteBackward()
	case input.ActionDeleteForward:
		s.backupBeforeEdit()
		s.ed.DeleteForward()
	case input.ActionDeleteLine:
		s.backupBeforeEdit()
		s.ed.DeleteLine()
	case input.ActionPaste:
		s.backupBeforeEdit()
		s.ed.Paste()

	case input.ActionMove:
		s.ed.Move(a.Dir, a.Unit)
	case input.ActionMovePage:
		s.ed.MovePage(a.Dir, a.Rows)
	case input.ActionCopyLine:
		s.ed.CopyLine()

	case input.ActionUndo:
		s.ed.Undo()
	case input.ActionRedo:
		s.ed.Redo()

	case input.ActionEnterNavigate:
		s.mode = input.ModeNavigate
		s.state.Clear()
	case input.ActionEnterWrite:
		s.mode = input.ModeWrite
		s.state.Clear()
	case input.ActionEnterWriteWithChar:
		s.mode = input.ModeWrite
		s.state.Clear()
		s.backupBeforeEdit()
		s.ed.InsertChar(a.Rune)

	case input.ActionToggleStatus:
		s.showStatus = !s.showStatus
		if s.showStatus {
			s.statusShownAt = s.now()
		}
	case input.ActionToggleSpellCheck:
		s.spellcheck = !s.spellcheck
	case input.ActionShowHelp:
		s.overlay = OverlayHelp
	case input.ActionHideOverlay:
		s.overlay = OverlayNone

	case input.ActionStartSearch:
		s.mode = input.ModeSearch
		s.searchInput = nil
	case input.ActionSubmitSearch:
		s.search.SetQuery(string(s.searchInput))
		s.mode = input.ModeNavigate
		s.jumpToNextMatch()
	case input.ActionCancelSearch:
		s.mode = input.ModeNavigate
		s.searchInput = nil
		s.search.Clear()
	case input.ActionSearchNext:
		if s.search.IsActive() {
			s.jumpToNextMatch()
		}
	case input.ActionSearchPrev:
		if s.search.IsActive() {
			s.jumpToPrevMatch()
		}
	case input.ActionSearchInput:
		s.searchInput = append(s.searchInput, a.Rune)
	case input.ActionSearchBackspace:
		if len(s.searchInput) > 0 {
			s.searchInput = s.searchInput[:len(s.searchInput)-1]
		}
	}
}

func (s *Session) tryQuit() {
	if s.ed.IsModified() {
		s.overlay = OverlayQuitConfirm
		return
	}
	s.shouldQuit = true
}

func (s *Session) save() error {
	if err := s.store.Save(s.ed.Content()); err != nil {
		return err
	}
	s.ed.MarkSaved()
	s.lastSave = s.now()
	s.savedAt = s.now()
	s.log.Debug("saved %d words", s.ed.WordCount())
	return nil
}

// backupBeforeEdit snapshots the file before the first edit of the
// session. Failure is logged, never blocks the edit.
func (s *Session) backupBeforeEdit() {
	if err := s.store.Backup(); err != nil {
		s.log.Warn("backup failed: %v", err)
	}
}

func (s *Session) jumpToNextMatch() {
	m, ok := s.search.FindNext(s.ed.Content(), s.ed.CursorChar()+1)
	if ok {
		s.jumpToChar(m.Start)
	}
}

func (s *Session) jumpToPrevMatch() {
	m, ok := s.search.FindPrev(s.ed.Content(), s.ed.CursorChar())
	if ok {
		s.jumpToChar(m.Start)
	}
}

// jumpToChar places the cursor at a document-wide character offset by
// driving ordinary movement primitives, so sticky-column state behaves as
// if the user navigated there.
func (s *Session) jumpToChar(pos rope.CharOffset) {
	r := rope.FromString(s.ed.Content())
	if pos > r.CharLen() {
		pos = r.CharLen()
	}
	line, byteCol := r.CharToPoint(pos)
	colChars := utf8.RuneCountInString(r.LineText(line)[:byteCol])

	s.ed.Move(editor.Up, editor.UnitDocument)
	for i := 0; i < line; i++ {
		s.ed.Move(editor.Down, editor.UnitChar)
	}
	s.ed.Move(editor.Left, editor.UnitLine)
	for i := 0; i < colChars; i++ {
		s.ed.Move(editor.Right, editor.UnitChar)
	}
}

// SetViewportRows tells the dispatcher the visible text height so page
// movement covers one screenful. Non-positive values are ignored.
func (s *Session) SetViewportRows(rows int) {
	if rows > 0 {
		s.disp.PageRows = rows
	}
}

// Tick runs the time-based housekeeping: auto-save, the saved indicator,
// and the status-line timeout. The driving loop calls it once per poll.
func (s *Session) Tick() {
	if s.cfg.AutoSaveSeconds > 0 && s.ed.IsModified() &&
		s.now().Sub(s.lastSave) >= s.cfg.AutoSaveInterval() {
		if err := s.save(); err != nil {
			s.log.Error("auto-save failed: %v", err)
		}
	}

	if !s.savedAt.IsZero() && s.now().Sub(s.savedAt) >= savedIndicatorFor {
		s.savedAt = time.Time{}
	}

	if s.showStatus && !s.statusShownAt.IsZero() && s.cfg.StatusTimeout > 0 {
		timeout := time.Duration(s.cfg.StatusTimeout) * time.Second
		if s.now().Sub(s.statusShownAt) >= timeout {
			s.showStatus = false
			s.statusShownAt = time.Time{}
		}
	}
}

// Editor exposes the editor for rendering reads.
func (s *Session) Editor() *editor.Editor {
	return s.ed
}

// Search exposes the search engine for rendering reads.
func (s *Session) Search() *search.Engine {
	return s.search
}

// Mode returns the active editing mode.
func (s *Session) Mode() input.Mode {
	return s.mode
}

// Overlay returns the active overlay.
func (s *Session) Overlay() Overlay {
	return s.overlay
}

// ShouldQuit reports whether the driving loop should exit.
func (s *Session) ShouldQuit() bool {
	return s.shouldQuit
}

// SearchInput returns the query as typed so far.
func (s *Session) SearchInput() string {
	return string(s.searchInput)
}

// ShowStatus reports whether the status line is visible.
func (s *Session) ShowStatus() bool {
	return s.showStatus
}

// SpellCheck reports whether spell checking is toggled on.
func (s *Session) SpellCheck() bool {
	return s.spellcheck
}

// SavedRecently reports whether a save happened within the indicator
// window.
func (s *Session) SavedRecently() bool {
	return !s.savedAt.IsZero()
}

// WordsWritten returns the words added since the session started, never
// negative.
func (s *Session) WordsWritten() int {
	written := s.ed.WordCount() - s.initialWords
	if written < 0 {
		return 0
	}
	return written
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.startedAt)
}

// ElapsedString formats the session duration as H:MM:SS.
func (s *Session) ElapsedString() string {
	total := int(s.Elapsed().Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
