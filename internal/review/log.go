// Package review holds the state of one interactive sorting session: the
// ordered image list, the log of decisions taken so far, and the
// secondary state the views render (rename buffer, tabs, scrolling).
// Nothing in this package touches the filesystem; decisions only become
// real when the emitted script is run.
package review

import "cull/pkg/types"

// Log is the ordered record of decisions plus the cursor tracking which
// image is under review. The cursor always equals the sum of QueueStep
// over the logged actions; both mutators maintain that incrementally.
type Log struct {
	actions []types.Action
	cursor  int
	total   int
}

// NewLog creates a log over total images. Seed actions are appended
// before review starts, bypassing the completion gate in Push: seeded
// directory provisioning must survive even an empty image list.
func NewLog(total int, seed ...types.Action) *Log {
	l := &Log{total: total}
	for _, a := range seed {
		l.actions = append(l.actions, a)
		l.cursor += a.QueueStep()
	}
	return l
}

// Push appends a decision and advances the cursor by its step. Once the
// cursor has reached the image count the review is complete and further
// pushes are ignored.
func (l *Log) Push(a types.Action) {
	if l.cursor == l.total {
		return
	}
	l.actions = append(l.actions, a)
	l.cursor += a.QueueStep()
}

// Pop undoes the latest decision. The tail is removed only if it is
// poppable, but the cursor rewinds by the tail's step either way:
// a retained MkDir steps 0, so the cursor stays consistent while the
// entry stays in the log. Popping an empty log is a no-op.
func (l *Log) Pop() {
	if len(l.actions) == 0 {
		return
	}
	tail := l.actions[len(l.actions)-1]
	if tail.Poppable() {
		l.actions = l.actions[:len(l.actions)-1]
	}
	l.cursor -= tail.QueueStep()
}

// Actions returns the logged actions in order. Callers must not mutate
// the returned slice.
func (l *Log) Actions() []types.Action {
	return l.actions
}

// Tail returns the most recent action, if any.
func (l *Log) Tail() (types.Action, bool) {
	if len(l.actions) == 0 {
		return types.Action{}, false
	}
	return l.actions[len(l.actions)-1], true
}

// Cursor returns the index of the image awaiting a decision.
func (l *Log) Cursor() int {
	return l.cursor
}

// Len returns the number of logged actions.
func (l *Log) Len() int {
	return len(l.actions)
}

// Done reports whether every image has been decided.
func (l *Log) Done() bool {
	return l.cursor == l.total
}
