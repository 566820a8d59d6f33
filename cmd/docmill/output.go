package main

import "github.com/charmbracelet/lipgloss"

var (
	// errorStyle for fatal error prefixes
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// dimStyle for muted status text on stderr
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// okStyle for success indicators
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))
)
