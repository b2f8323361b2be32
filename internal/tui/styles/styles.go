package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles
var Theme = struct {
	App       lipgloss.Style
	Banner    lipgloss.Style
	Title     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Path      lipgloss.Style
	Detail    lipgloss.Style
	Key       lipgloss.Style
	Pending   lipgloss.Style
	Done      lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(1, 2),
	Banner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7B61FF")),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		MarginBottom(1),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		Underline(true),
	TabIdle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),
	Path: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true),
	Detail: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),
	Key: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#F2C94C")),
	Pending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F2C94C")).
		Italic(true),
	Done: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#73F59F")),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#F25D94")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
}

// ScriptStyle frames the script preview pane
var ScriptStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7B61FF"))
