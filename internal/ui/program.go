package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled output. Styling is dropped when Plain is set, so
// piped output stays parseable.
type Printer struct {
	out   io.Writer
	width int
	Plain bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
		Plain: !IsTerminal(w),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Printf writes formatted content
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(h *Header) {
	if p.Plain {
		return
	}
	p.Println(h.SetWidth(p.width).Render())
}

// PrintResult prints a result box, or a single marker line in plain mode.
func (p *Printer) PrintResult(r *Result) {
	if !p.Plain {
		p.Println(r.SetWidth(p.width).Render())
		return
	}

	marker := SuccessMarker
	switch r.Type {
	case ResultFailure:
		marker = FailureMarker
	case ResultWarning:
		marker = WarningMarker
	}
	p.Println(marker + " " + r.Title)
	for _, d := range r.Details {
		p.Printf("  %s: %s\n", d.Key, d.Value)
	}
	if r.Error != nil {
		p.Println("  Error: " + r.Error.Error())
	}
	for _, tip := range r.Troubleshooting {
		p.Println("  " + tip)
	}
}

// PrintBlock prints preformatted text inside a muted box.
func (p *Printer) PrintBlock(text string) {
	text = strings.TrimRight(text, "\n")
	if p.Plain {
		p.Println(text)
		return
	}
	p.Println(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(p.width-2).
		Padding(0, 1).
		Render(text))
}

// PrintTable prints rows under a header row with aligned columns.
func (p *Printer) PrintTable(header []string, rows [][]string) {
	p.Println(RenderTable(header, rows, !p.Plain))
}

// RenderTable aligns columns to the widest cell. The last column is never
// padded.
func RenderTable(header []string, rows [][]string, styled bool) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i < len(cells)-1 && i < len(widths) {
				cell += strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			}
			if styled {
				cell = style.Render(cell)
			}
			parts[i] = cell
		}
		return strings.Join(parts, "  ")
	}

	lines := []string{line(header, TableHeaderStyle)}
	for _, row := range rows {
		lines = append(lines, line(row, TableCellStyle))
	}
	return strings.Join(lines, "\n")
}
