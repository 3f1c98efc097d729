package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// TableFormatter renders tables as bordered text.
type TableFormatter struct {
	writer   io.Writer
	maxWidth int
}

// NewTableFormatter creates a text table renderer writing to w. Cell widths
// are capped so wide tables stay readable inside the current terminal.
func NewTableFormatter(w io.Writer) *TableFormatter {
	maxWidth := 120
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			maxWidth = cols
		}
	}
	return &TableFormatter{writer: w, maxWidth: maxWidth}
}

// Format renders every table, separated by a blank line.
func (f *TableFormatter) Format(tables []Table) error {
	for i, table := range tables {
		if i > 0 {
			fmt.Fprintln(f.writer)
		}
		if err := f.formatTable(table); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) formatTable(t Table) error {
	widths := f.columnWidths(t)

	if t.Title != "" {
		fmt.Fprintln(f.writer, t.Title)
	}
	f.printBorder(widths, "top")
	f.printRow(t.Columns, widths)
	f.printBorder(widths, "middle")
	for _, row := range t.Rows {
		f.printRow(row, widths)
	}
	f.printBorder(widths, "bottom")
	return nil
}

// columnWidths sizes each column to its widest cell, measured in display
// cells so emoji and CJK content align, capped by cellCap.
func (f *TableFormatter) columnWidths(t Table) []int {
	widths := make([]int, len(t.Columns))
	for i, header := range t.Columns {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range t.Rows {
		for i, value := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	limit := f.cellCap(len(widths))
	for i := range widths {
		if widths[i] > limit {
			widths[i] = limit
		}
	}
	return widths
}

// cellCap bounds individual cell width so the full table fits the terminal
// where possible. Never goes below a legible minimum.
func (f *TableFormatter) cellCap(columns int) int {
	if columns == 0 {
		return f.maxWidth
	}
	// Per column: two padding spaces plus one border char.
	budget := (f.maxWidth - 1) / columns
	budget -= 3
	if budget < 6 {
		budget = 6
	}
	return budget
}

func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(f.writer, left)
	for i, width := range widths {
		fmt.Fprint(f.writer, strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			fmt.Fprint(f.writer, middle)
		}
	}
	fmt.Fprintln(f.writer, right)
}

func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Fprint(f.writer, "│")
	for i, width := range widths {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		if runewidth.StringWidth(value) > width {
			value = runewidth.Truncate(value, width, "…")
		}
		if i == 0 {
			fmt.Fprintf(f.writer, " %s │", runewidth.FillRight(value, width))
		} else {
			fmt.Fprintf(f.writer, " %s │", runewidth.FillLeft(value, width))
		}
	}
	fmt.Fprintln(f.writer)
}
