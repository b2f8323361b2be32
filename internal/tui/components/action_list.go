package components

import (
	"fmt"
	"strings"

	"cull/internal/tui/styles"
	"cull/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// verbStyles colors each decision kind in the log tail.
var verbStyles = map[types.ActionKind]lipgloss.Style{
	types.Skip:   styles.Theme.Detail,
	types.Move:   styles.Theme.Path,
	types.Rename: styles.Theme.Pending,
	types.MkDir:  styles.Theme.Help,
	types.Delete: styles.Theme.Error,
}

// ActionList renders the tail of the decision log.
type ActionList struct {
	actions []types.Action
	limit   int
}

// NewActionList creates a list showing at most limit entries.
func NewActionList(limit int) *ActionList {
	return &ActionList{limit: limit}
}

func (al *ActionList) SetActions(actions []types.Action) {
	al.actions = actions
}

func (al *ActionList) View() string {
	if len(al.actions) == 0 {
		return styles.Theme.Detail.Render("no decisions yet")
	}

	start := 0
	if len(al.actions) > al.limit {
		start = len(al.actions) - al.limit
	}

	var s strings.Builder
	if start > 0 {
		s.WriteString(styles.Theme.Detail.Render(fmt.Sprintf("(%d earlier)", start)))
		s.WriteString("\n")
	}
	for _, a := range al.actions[start:] {
		verb := verbStyles[a.Kind].Render(fmt.Sprintf("%-6s", a.Kind.String()))
		s.WriteString(fmt.Sprintf("%s %s\n", verb, describe(a)))
	}
	return strings.TrimRight(s.String(), "\n")
}

func describe(a types.Action) string {
	switch a.Kind {
	case types.Move:
		return fmt.Sprintf("%s -> %s", a.Path, a.Dest)
	case types.Rename:
		return "-> " + a.Name
	case types.MkDir:
		return a.Dest
	default:
		return a.Path
	}
}
