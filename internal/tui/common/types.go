package common

import (
	"time"

	"cull/internal/review"
	"cull/pkg/types"
)

// SessionReader defines the interface that views use to read review state
type SessionReader interface {
	Current() (string, bool)
	Done() bool
	Progress() (reviewed, total int)
	BindingList() []types.Binding
	Actions() []types.Action
	PendingRename() (string, bool)
	Input() string
	InputIndex() int
	InputActive() bool
	ActiveTab() review.Tab
	ScrollOffset() (x, y int)
	LastSave() time.Time
	Output() string
	ShowHelp() bool
	StatusView() string
	ViewSize() (width, height int)
}
