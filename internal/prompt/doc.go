// Package prompt defines the interactive prompt collaborator used by the
// session controller and a terminal implementation built on bubbletea and
// lipgloss.
package prompt
