package views

import (
	"fmt"
	"strings"

	"cull/internal/script"
	"cull/internal/tui/common"
	"cull/internal/tui/styles"
)

// RenderScriptView shows the exact script a save would write, scrolled
// by the session's offsets.
func RenderScriptView(m common.SessionReader) string {
	var sb strings.Builder

	sb.WriteString(renderBanner())
	sb.WriteString(RenderTabs(m) + "\n\n")

	x, y := m.ScrollOffset()
	body := sliceScript(script.Render(m.Actions()), x, y, bodyHeight(m))
	sb.WriteString(styles.ScriptStyle.Render(body))

	sb.WriteString("\n" + renderSaveState(m))
	if status := m.StatusView(); status != "" {
		sb.WriteString("\n\n" + status)
	}
	sb.WriteString("\n" + styles.Theme.Help.Render(`
[↑↓←→/hjkl] Scroll  [w] Write script  [Tab] View  [q] Quit
`))

	return styles.Theme.App.Render(sb.String())
}

// sliceScript applies the vertical and horizontal offsets line by line.
// Scrolling past the end leaves an empty pane rather than clamping here;
// the session already bounds the offsets.
func sliceScript(text string, x, y, height int) string {
	lines := strings.Split(text, "\n")
	if y < len(lines) {
		lines = lines[y:]
	} else {
		lines = nil
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		runes := []rune(line)
		if x < len(runes) {
			lines[i] = string(runes[x:])
		} else {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

// bodyHeight leaves room for the banner, tabs, and footer.
func bodyHeight(m common.SessionReader) int {
	_, h := m.ViewSize()
	if h == 0 {
		return 0
	}
	h -= 16
	if h < 3 {
		return 3
	}
	return h
}

func renderSaveState(m common.SessionReader) string {
	if m.LastSave().IsZero() {
		return styles.Theme.Detail.Render(fmt.Sprintf("%s not written yet", m.Output()))
	}
	return styles.Theme.Detail.Render(fmt.Sprintf("%s written at %s",
		m.Output(), m.LastSave().Format("15:04:05")))
}
