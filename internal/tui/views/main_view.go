package views

import (
	"fmt"
	"os"
	"strings"

	"cull/internal/review"
	"cull/internal/tui/common"
	"cull/internal/tui/components"
	"cull/internal/tui/styles"

	"github.com/dustin/go-humanize"
)

// recentActions is how many log entries the review view shows.
const recentActions = 6

func RenderMainView(m common.SessionReader) string {
	var sb strings.Builder

	sb.WriteString(renderBanner())
	sb.WriteString(RenderTabs(m) + "\n\n")

	reviewed, total := m.Progress()
	sb.WriteString(styles.Theme.Detail.Render(fmt.Sprintf("%d/%d reviewed", reviewed, total)) + "\n\n")

	if m.Done() {
		sb.WriteString(renderDone(m))
	} else {
		sb.WriteString(renderCurrent(m))
	}

	sb.WriteString("\n\n" + renderBindings(m))
	sb.WriteString("\n\n" + renderLog(m))

	if m.InputActive() {
		sb.WriteString("\n\n" + renderInput(m))
	}

	if status := m.StatusView(); status != "" {
		sb.WriteString("\n\n" + status)
	}

	if m.ShowHelp() {
		sb.WriteString("\n" + RenderHelp())
	}
	sb.WriteString("\n" + RenderKeyCommands())

	return styles.Theme.App.Render(sb.String())
}

// RenderTabs shows the two views with the active one highlighted.
func RenderTabs(m common.SessionReader) string {
	main := styles.Theme.TabIdle.Render("review")
	preview := styles.Theme.TabIdle.Render("script")
	if m.ActiveTab() == review.TabScript {
		preview = styles.Theme.TabActive.Render("script")
	} else {
		main = styles.Theme.TabActive.Render("review")
	}
	return main + styles.Theme.Detail.Render(" | ") + preview
}

func renderCurrent(m common.SessionReader) string {
	current, ok := m.Current()
	if !ok {
		return ""
	}

	var s strings.Builder
	s.WriteString(styles.Theme.Path.Render(current))
	if info, err := os.Stat(current); err == nil {
		s.WriteString(styles.Theme.Detail.Render("  " + humanize.Bytes(uint64(info.Size()))))
	}
	if name, ok := m.PendingRename(); ok {
		s.WriteString("\n" + styles.Theme.Pending.Render("will be filed as "+name))
	}
	return s.String()
}

func renderDone(m common.SessionReader) string {
	var s strings.Builder
	s.WriteString(styles.Theme.Done.Render("Review complete.") + "\n")
	if m.LastSave().IsZero() {
		s.WriteString(styles.Theme.Detail.Render("Press w to write " + m.Output()))
	} else {
		s.WriteString(styles.Theme.Detail.Render(fmt.Sprintf("Saved %s at %s, run it to apply",
			m.Output(), m.LastSave().Format("15:04:05"))))
	}
	return s.String()
}

func renderBindings(m common.SessionReader) string {
	list := m.BindingList()
	if len(list) == 0 {
		return styles.Theme.Detail.Render("no destinations bound")
	}

	var s strings.Builder
	s.WriteString(styles.Theme.Detail.Render("destinations:") + "\n")
	for _, b := range list {
		s.WriteString(fmt.Sprintf("  %s %s\n",
			styles.Theme.Key.Render("["+string(b.Key)+"]"),
			b.Target))
	}
	return strings.TrimRight(s.String(), "\n")
}

func renderLog(m common.SessionReader) string {
	list := components.NewActionList(recentActions)
	list.SetActions(m.Actions())
	return list.View()
}

// renderInput draws the rename buffer with a block cursor at the edit
// position.
func renderInput(m common.SessionReader) string {
	runes := []rune(m.Input())
	idx := m.InputIndex()

	var s strings.Builder
	s.WriteString(styles.Theme.Detail.Render("new name: "))
	s.WriteString(string(runes[:idx]))
	if idx < len(runes) {
		s.WriteString(styles.Theme.Key.Render(string(runes[idx])))
		s.WriteString(string(runes[idx+1:]))
	} else {
		s.WriteString(styles.Theme.Key.Render("█"))
	}
	return s.String()
}

func RenderKeyCommands() string {
	return styles.Theme.Help.Render(`
[Space] Skip  [d] Delete  [r] Rename  [u] Undo  [w] Write script  [Tab] View  [q] Quit  [?] Help
`)
}

func RenderHelp() string {
	return styles.Theme.Help.Render(`
Press a destination key to move the image there. Rename first (r) to
file it under a new name; the rename rides along with the next move.
Nothing touches the disk until you run the written script yourself.
`)
}

func renderBanner() string {
	return styles.Theme.Banner.Render(`
	::'######::'##::::'##:'##:::::::'##:::::::
	:'##... ##: ##:::: ##: ##::::::: ##:::::::
	: ##:::..:: ##:::: ##: ##::::::: ##:::::::
	: ##::::::: ##:::: ##: ##::::::: ##:::::::
	: ##::: ##: ##:::: ##: ##::::::: ##:::::::
	:. ######::. #######:: ########: ########:
	::......::::.......:::........::........::
	`)
}
