package types

import "fmt"

// ActionKind enumerates the review decisions that can be logged
type ActionKind int

const (
	// Skip leaves the image where it is
	Skip ActionKind = iota
	// Move files the image into a bound destination directory
	Move
	// Rename records a new base name for the image under review
	Rename
	// MkDir provisions a missing destination directory
	MkDir
	// Delete removes the image
	Delete
)

// String returns the lowercase verb used in views and logs.
func (k ActionKind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Move:
		return "move"
	case Rename:
		return "rename"
	case MkDir:
		return "mkdir"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("actionkind(%d)", int(k))
	}
}

// Action is one logged review decision. Which payload fields are set
// depends on the kind: Skip and Delete carry Path, Move carries Path and
// Dest, Rename carries Name, MkDir carries Dest.
type Action struct {
	Kind ActionKind
	Path string // source image path
	Dest string // destination (directory for MkDir, full target for Move)
	Name string // replacement base name for Rename
}

// NewSkip records leaving path untouched.
func NewSkip(path string) Action {
	return Action{Kind: Skip, Path: path}
}

// NewMove records filing path at dest. dest is the bound directory, or
// directory/newname when a rename was pending for the image.
func NewMove(path, dest string) Action {
	return Action{Kind: Move, Path: path, Dest: dest}
}

// NewRename records that the image under review should be filed under
// name. It does not advance past the image; a following Move consumes it.
func NewRename(name string) Action {
	return Action{Kind: Rename, Name: name}
}

// NewMkDir records that dir must exist before any move into it runs.
func NewMkDir(dir string) Action {
	return Action{Kind: MkDir, Dest: dir}
}

// NewDelete records removing path.
func NewDelete(path string) Action {
	return Action{Kind: Delete, Path: path}
}

// QueueStep reports how far the action advances the review cursor:
// 1 for decisions that finish an image (Skip, Move, Delete), 0 for
// actions that stay on it (Rename, MkDir).
func (a Action) QueueStep() int {
	switch a.Kind {
	case Skip, Move, Delete:
		return 1
	default:
		return 0
	}
}

// Poppable reports whether undo may remove the action from the log.
// Directory provisioning is permanent: a later move may depend on it.
func (a Action) Poppable() bool {
	return a.Kind != MkDir
}
