package components

import (
	"cull/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows one transient line of feedback: save confirmations,
// rejected keys, write failures.
type StatusBar struct {
	text  string
	style lipgloss.Style
}

func NewStatusBar() *StatusBar {
	return &StatusBar{
		style: styles.Theme.Status,
	}
}

// SetText shows an informational message.
func (s *StatusBar) SetText(text string) {
	s.text = text
	s.style = styles.Theme.Status
}

// SetError shows an error message.
func (s *StatusBar) SetError(text string) {
	s.text = text
	s.style = styles.Theme.Error
}

// Clear drops the message.
func (s *StatusBar) Clear() {
	s.text = ""
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	return s.style.Render(s.text)
}
