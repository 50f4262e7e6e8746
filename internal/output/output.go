// Package output provides consistent CLI output for foodindex commands,
// either as human-readable lines or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Writer provides formatted output for CLI.
type Writer struct {
	out  io.Writer
	json bool
}

// New creates a new output Writer.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// NewJSON creates a Writer whose Result calls emit JSON.
func NewJSON(out io.Writer) *Writer {
	return &Writer{out: out, json: true}
}

// IsJSON reports whether results are written as JSON.
func (w *Writer) IsJSON() bool { return w.json }

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status("✅", msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status("⚠️ ", msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status("❌", msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// List prints one item per line. An empty list prints "(none)".
func (w *Writer) List(items []string) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w.out, "(none)")
		return
	}
	for _, item := range items {
		_, _ = fmt.Fprintln(w.out, item)
	}
}

// Table prints aligned key/value rows. Empty values print as "-".
func (w *Writer) Table(rows [][2]string) {
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", row[0], value)
	}
	_ = tw.Flush()
}

// JSON writes v as indented JSON.
func (w *Writer) JSON(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Result writes v as JSON in JSON mode, and calls human otherwise.
func (w *Writer) Result(v any, human func(*Writer)) error {
	if w.json {
		return w.JSON(v)
	}
	human(w)
	return nil
}

// Join formats a term list on one line.
func Join(items []string) string {
	return strings.Join(items, ", ")
}
