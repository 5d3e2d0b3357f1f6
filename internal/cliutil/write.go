// Package cliutil provides output and logging helpers for the shapekit
// command line.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) {
	for _, line := range lines {
		Writef(w, "%s\n", line)
	}
}

// NewLogger returns a text logger on w. Verbose enables debug records;
// otherwise only warnings and errors are written.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
