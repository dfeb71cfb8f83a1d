// Package ui renders povctl terminal output with lipgloss and runs the
// bubbletea spinner shown while a camera login is in flight.
//
// Output degrades to plain text when stdout is not a terminal.
package ui
