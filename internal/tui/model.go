package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cull/internal/log"
	"cull/internal/review"
	"cull/internal/tui/components"
	"cull/internal/tui/messages"
	"cull/internal/tui/views"
	"cull/pkg/types"
)

// statusTTL is how long transient status bar text stays on screen.
const statusTTL = 3 * time.Second

// Model drives the interactive review. All review state lives in the
// session; the model layers key dispatch, window size, the help toggle
// and the status bar on top.
type Model struct {
	session   *review.Session
	keys      types.KeyMap
	statusBar *components.StatusBar
	showHelp  bool
	width     int
	height    int
}

func New(session *review.Session) *Model {
	return &Model{
		session:   session,
		keys:      types.DefaultKeyMap(),
		statusBar: components.NewStatusBar(),
	}
}

// Run starts the review UI and blocks until the user quits.
func Run(session *review.Session) error {
	p := tea.NewProgram(New(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case messages.ClearStatusMsg:
		m.statusBar.Clear()
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.session.Tab() == review.TabScript {
		return views.RenderScriptView(m)
	}
	return views.RenderMainView(m)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The rename input captures everything, including keys that are
	// decisions outside it.
	if m.session.InputActive() {
		return m.handleRenameKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.session.NextTab()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m, m.save()
	case key.Matches(msg, m.keys.Undo):
		m.session.Undo()
		return m, nil
	}

	if m.session.Tab() == review.TabScript {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.session.ScrollUp()
		case key.Matches(msg, m.keys.Down):
			m.session.ScrollDown()
		case key.Matches(msg, m.keys.Left):
			m.session.ScrollLeft()
		case key.Matches(msg, m.keys.Right):
			m.session.ScrollRight()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Skip):
		m.session.Skip()
	case key.Matches(msg, m.keys.Delete):
		m.session.Delete()
	case key.Matches(msg, m.keys.Rename):
		m.session.BeginRename()
	default:
		// Any other single rune is a candidate destination key.
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if err := m.session.MoveTo(msg.Runes[0]); err != nil {
				m.statusBar.SetError(err.Error())
				return m, clearStatusCmd(statusTTL)
			}
		}
	}
	return m, nil
}

func (m *Model) handleRenameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		m.session.CommitRename()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.session.CancelRename()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyBackspace:
		m.session.Backspace()
	case tea.KeyDelete:
		m.session.DeleteRune()
	case tea.KeyLeft:
		m.session.CursorLeft()
	case tea.KeyRight:
		m.session.CursorRight()
	case tea.KeyHome:
		m.session.CursorHome()
	case tea.KeyEnd:
		m.session.CursorEnd()
	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) == 0 {
			m.session.InsertRune(' ')
			break
		}
		for _, r := range msg.Runes {
			m.session.InsertRune(r)
		}
	}
	return m, nil
}

func (m *Model) save() tea.Cmd {
	if err := m.session.SaveScript(); err != nil {
		log.LogWithFields(
			log.F("path", m.session.Output()),
			log.F("error", err),
		).Error("Failed to write script")
		m.statusBar.SetError("write failed: " + err.Error())
		return clearStatusCmd(statusTTL)
	}
	m.statusBar.SetText("wrote " + m.session.Output())
	return clearStatusCmd(statusTTL)
}

// clearStatusCmd waits for d and then signals the status bar to clear.
func clearStatusCmd(d time.Duration) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(d)
		return messages.ClearStatusMsg{}
	}
}

// The views read the model through common.SessionReader; these forward
// to the session plus the model's own display state.

func (m *Model) Current() (string, bool) { return m.session.Current() }

func (m *Model) Done() bool { return m.session.Done() }

func (m *Model) Progress() (reviewed, total int) { return m.session.Progress() }

func (m *Model) BindingList() []types.Binding { return m.session.BindingList() }

func (m *Model) Actions() []types.Action { return m.session.Actions() }

func (m *Model) PendingRename() (string, bool) { return m.session.PendingRename() }

func (m *Model) Input() string { return m.session.Input() }

func (m *Model) InputIndex() int { return m.session.InputIndex() }

func (m *Model) InputActive() bool { return m.session.InputActive() }

func (m *Model) ActiveTab() review.Tab { return m.session.Tab() }

func (m *Model) ScrollOffset() (x, y int) { return m.session.ScrollOffset() }

func (m *Model) LastSave() time.Time { return m.session.LastSave() }

func (m *Model) Output() string { return m.session.Output() }

func (m *Model) ShowHelp() bool { return m.showHelp }

func (m *Model) StatusView() string { return m.statusBar.View() }

func (m *Model) ViewSize() (width, height int) { return m.width, m.height }
