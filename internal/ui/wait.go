package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the user aborts a wait with ctrl+c.
var ErrInterrupted = errors.New("interrupted")

type doneMsg struct{}

type cancelledMsg struct{ err error }

// WaitModel shows a spinner until a channel is closed.
type WaitModel struct {
	Label   string
	Spinner spinner.Model

	ctx  context.Context
	done <-chan struct{}

	Finished bool
	Err      error
}

// NewWaitModel creates a spinner model that quits when done is closed or ctx
// ends.
func NewWaitModel(ctx context.Context, label string, done <-chan struct{}) WaitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return WaitModel{
		Label:   label,
		Spinner: s,
		ctx:     ctx,
		done:    done,
	}
}

func waitFor(ctx context.Context, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-done:
			return doneMsg{}
		case <-ctx.Done():
			return cancelledMsg{err: ctx.Err()}
		}
	}
}

// Init implements tea.Model
func (m WaitModel) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, waitFor(m.ctx, m.done))
}

// Update implements tea.Model
func (m WaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.Finished = true
		return m, tea.Quit

	case cancelledMsg:
		m.Err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.Err = ErrInterrupted
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m WaitModel) View() string {
	if m.Finished || m.Err != nil {
		return ""
	}
	return fmt.Sprintf("  %s %s\n", m.Spinner.View(), m.Label)
}

// Wait blocks until done is closed or ctx ends. On a terminal it shows a
// spinner with label; otherwise it waits silently.
func Wait(ctx context.Context, out io.Writer, label string, done <-chan struct{}) error {
	if !IsTerminal(out) {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	p := tea.NewProgram(NewWaitModel(ctx, label, done), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(WaitModel); ok && m.Err != nil {
		return m.Err
	}
	return nil
}
