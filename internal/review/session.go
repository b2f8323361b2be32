package review

import (
	"path/filepath"
	"sort"
	"time"

	"cull/internal/errors"
	"cull/internal/script"
	"cull/pkg/types"
)

// Tab identifies which view the session is showing.
type Tab int

const (
	// TabMain is the review view
	TabMain Tab = iota
	// TabScript is the script preview
	TabScript
)

// scrollFloor keeps a few lines visible when scrolled past the end of
// the script preview.
const scrollFloor = 3

// Session is the full state of one review run. It owns the action log
// and layers the interactive state on top: rename input, the active
// tab, scroll offsets for the script preview, and the last save time.
type Session struct {
	images   []string
	log      *Log
	bindings map[rune]string
	output   string

	tab         Tab
	scrollX     int
	scrollY     int
	input       []rune
	inputIdx    int
	inputActive bool
	lastSave    time.Time
}

// New builds a session over the discovered images. createDirs are the
// missing binding targets in encounter order; they are seeded into the
// log as MkDir actions so the emitted script provisions them before any
// move runs.
func New(images []string, bindings map[rune]string, createDirs []string, output string) *Session {
	seed := make([]types.Action, 0, len(createDirs))
	for _, dir := range createDirs {
		seed = append(seed, types.NewMkDir(dir))
	}
	return &Session{
		images:   images,
		log:      NewLog(len(images), seed...),
		bindings: bindings,
		output:   output,
	}
}

// Current returns the image under review, or false when every image has
// been decided.
func (s *Session) Current() (string, bool) {
	if s.log.Done() {
		return "", false
	}
	return s.images[s.log.Cursor()], true
}

// Done reports whether the review is complete.
func (s *Session) Done() bool {
	return s.log.Done()
}

// Progress returns how many images have been decided and the total.
func (s *Session) Progress() (reviewed, total int) {
	return s.log.Cursor(), len(s.images)
}

// Skip leaves the current image in place and moves on.
func (s *Session) Skip() {
	if path, ok := s.Current(); ok {
		s.log.Push(types.NewSkip(path))
	}
}

// Delete marks the current image for removal and moves on.
func (s *Session) Delete() {
	if path, ok := s.Current(); ok {
		s.log.Push(types.NewDelete(path))
	}
}

// MoveTo files the current image under the directory bound to key.
// A pending rename is folded into the destination, so the script moves
// the file to its new name in one step.
func (s *Session) MoveTo(key rune) error {
	dir, ok := s.bindings[key]
	if !ok {
		return errors.Newf("no destination bound to %q", string(key))
	}
	path, ok := s.Current()
	if !ok {
		return nil
	}
	dest := dir
	if name, renamed := s.PendingRename(); renamed {
		dest = filepath.Join(dir, name)
	}
	s.log.Push(types.NewMove(path, dest))
	return nil
}

// Undo takes back the most recent decision. Seeded MkDir entries are
// permanent; undoing past them only rewinds the cursor across the
// previous stepped action.
func (s *Session) Undo() {
	s.log.Pop()
	s.clampScroll()
}

// PendingRename returns the rename recorded for the image under review,
// if any. A rename is pending exactly while it sits at the log tail:
// the next stepped action consumes it, and undoing that action exposes
// it again.
func (s *Session) PendingRename() (string, bool) {
	if tail, ok := s.log.Tail(); ok && tail.Kind == types.Rename {
		return tail.Name, true
	}
	return "", false
}

// Actions returns the logged actions in order.
func (s *Session) Actions() []types.Action {
	return s.log.Actions()
}

// Bindings returns the active key bindings.
func (s *Session) Bindings() map[rune]string {
	return s.bindings
}

// BindingList returns the bindings sorted by key for stable display.
func (s *Session) BindingList() []types.Binding {
	list := make([]types.Binding, 0, len(s.bindings))
	for k, target := range s.bindings {
		list = append(list, types.Binding{Key: k, Target: target})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list
}

// Output returns the script path saves write to.
func (s *Session) Output() string {
	return s.output
}

// LastSave returns when the script was last written, zero if never.
func (s *Session) LastSave() time.Time {
	return s.lastSave
}

// SaveScript writes the shell script for the current log and records
// the save time. A failed write leaves the timestamp untouched.
func (s *Session) SaveScript() error {
	if err := script.Write(s.output, s.log.Actions()); err != nil {
		return err
	}
	s.lastSave = time.Now()
	return nil
}

// BeginRename opens the rename input seeded with the current image's
// base name, with the edit cursor at the end.
func (s *Session) BeginRename() {
	path, ok := s.Current()
	if !ok {
		return
	}
	s.input = []rune(filepath.Base(path))
	s.inputIdx = len(s.input)
	s.inputActive = true
}

// CommitRename records the edited name as a pending rename. An empty or
// unchanged name cancels instead of logging an inert action.
func (s *Session) CommitRename() {
	if !s.inputActive {
		return
	}
	name := string(s.input)
	s.inputActive = false
	s.input = nil
	s.inputIdx = 0

	if name == "" {
		return
	}
	path, ok := s.Current()
	if !ok || name == filepath.Base(path) {
		return
	}
	s.log.Push(types.NewRename(name))
}

// CancelRename closes the rename input without recording anything.
func (s *Session) CancelRename() {
	s.inputActive = false
	s.input = nil
	s.inputIdx = 0
}

// InputActive reports whether the rename input is capturing keys.
func (s *Session) InputActive() bool {
	return s.inputActive
}

// Input returns the rename buffer contents.
func (s *Session) Input() string {
	return string(s.input)
}

// InputIndex returns the edit cursor position within the rename buffer.
func (s *Session) InputIndex() int {
	return s.inputIdx
}

// InsertRune inserts r at the edit cursor.
func (s *Session) InsertRune(r rune) {
	if !s.inputActive {
		return
	}
	s.input = append(s.input[:s.inputIdx], append([]rune{r}, s.input[s.inputIdx:]...)...)
	s.inputIdx++
}

// Backspace removes the rune before the edit cursor.
func (s *Session) Backspace() {
	if !s.inputActive || s.inputIdx == 0 {
		return
	}
	s.input = append(s.input[:s.inputIdx-1], s.input[s.inputIdx:]...)
	s.inputIdx--
}

// DeleteRune removes the rune at the edit cursor.
func (s *Session) DeleteRune() {
	if !s.inputActive || s.inputIdx >= len(s.input) {
		return
	}
	s.input = append(s.input[:s.inputIdx], s.input[s.inputIdx+1:]...)
}

// CursorLeft moves the edit cursor one rune left.
func (s *Session) CursorLeft() {
	if s.inputIdx > 0 {
		s.inputIdx--
	}
}

// CursorRight moves the edit cursor one rune right.
func (s *Session) CursorRight() {
	if s.inputIdx < len(s.input) {
		s.inputIdx++
	}
}

// CursorHome moves the edit cursor to the start of the buffer.
func (s *Session) CursorHome() {
	s.inputIdx = 0
}

// CursorEnd moves the edit cursor past the last rune.
func (s *Session) CursorEnd() {
	s.inputIdx = len(s.input)
}

// Tab returns the active view.
func (s *Session) Tab() Tab {
	return s.tab
}

// NextTab cycles to the other view and resets the preview scroll.
func (s *Session) NextTab() {
	if s.tab == TabMain {
		s.tab = TabScript
	} else {
		s.tab = TabMain
	}
	s.scrollX = 0
	s.scrollY = 0
}

// ScrollOffset returns the script preview offsets (columns, lines).
func (s *Session) ScrollOffset() (x, y int) {
	return s.scrollX, s.scrollY
}

// ScrollUp moves the script preview up one line.
func (s *Session) ScrollUp() {
	if s.scrollY > 0 {
		s.scrollY--
	}
}

// ScrollDown moves the script preview down one line, stopping a few
// lines past the last action.
func (s *Session) ScrollDown() {
	if s.scrollY < s.log.Len()+scrollFloor {
		s.scrollY++
	}
}

// ScrollLeft moves the script preview left one column.
func (s *Session) ScrollLeft() {
	if s.scrollX > 0 {
		s.scrollX--
	}
}

// ScrollRight moves the script preview right one column. There is no
// right-hand bound; long paths scroll as far as they need.
func (s *Session) ScrollRight() {
	s.scrollX++
}

func (s *Session) clampScroll() {
	if max := s.log.Len() + scrollFloor; s.scrollY > max {
		s.scrollY = max
	}
}
