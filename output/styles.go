// Package output provides styling helpers for terminal output.
package output

import (
	"io"
	"strconv"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers shared by the CLI and the
// telemetry report.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Income returns a styled income amount (green).
func (s *Styles) Income(amount int64) string {
	return s.output.String(strconv.FormatInt(amount, 10)).
		Foreground(s.output.Color("2")).
		String()
}

// Expense returns a styled expense amount (red).
func (s *Styles) Expense(amount int64) string {
	return s.output.String(strconv.FormatInt(amount, 10)).
		Foreground(s.output.Color("1")).
		String()
}

// Category returns a styled category name (yellow).
func (s *Styles) Category(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Dim returns dimmed text for secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}
