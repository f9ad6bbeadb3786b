// Package output provides formatters for console output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen11/taskconsole/internal/domain/task"
)

const (
	// TableSeparator is the line printed under the table header.
	TableSeparator = "----------------------------------------------------------------------"

	// Ellipsis is appended to truncated cells.
	Ellipsis = "..."

	// Status labels.
	StatusComplete   = "Complete"
	StatusIncomplete = "Incomplete"

	// Default truncation widths, in characters before the ellipsis.
	DefaultTitleWidth       = 19
	DefaultDescriptionWidth = 27
)

// rowFormat lays out one table line: ID, title, description, status.
const rowFormat = "%-4s %-20s %-30s %-12s\n"

// Table renders tasks as a fixed-width table.
type Table struct {
	TitleWidth       int
	DescriptionWidth int
}

// NewTable returns a Table with the given truncation widths. Non-positive
// widths fall back to the defaults.
func NewTable(titleWidth, descriptionWidth int) Table {
	if titleWidth <= 0 {
		titleWidth = DefaultTitleWidth
	}
	if descriptionWidth <= 0 {
		descriptionWidth = DefaultDescriptionWidth
	}
	return Table{TitleWidth: titleWidth, DescriptionWidth: descriptionWidth}
}

// FormatHeader writes the column header and separator line.
func (t Table) FormatHeader(w io.Writer) {
	fmt.Fprintf(w, rowFormat, "ID", "Title", "Description", "Status")
	fmt.Fprintln(w, TableSeparator)
}

// FormatTask writes one task row.
// Format: "{ID:<4} {TITLE:<20} {DESCRIPTION:<30} {STATUS:<12}\n"
func (t Table) FormatTask(w io.Writer, td task.Task) {
	fmt.Fprintf(w, rowFormat,
		fmt.Sprint(td.ID),
		Truncate(normalize(td.Title), t.TitleWidth),
		Truncate(normalize(td.DescriptionOrEmpty()), t.DescriptionWidth),
		Status(td.Completed),
	)
}

// FormatTasks writes the header followed by one row per task.
func (t Table) FormatTasks(w io.Writer, tasks []task.Task) {
	t.FormatHeader(w)
	for _, td := range tasks {
		t.FormatTask(w, td)
	}
}

// Status returns the display label for a completion flag.
func Status(completed bool) string {
	if completed {
		return StatusComplete
	}
	return StatusIncomplete
}

// Truncate shortens s to width characters plus Ellipsis when it is longer
// than width characters.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width]) + Ellipsis
}

// normalize keeps each task on one line.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
