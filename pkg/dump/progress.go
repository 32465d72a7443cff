package dump

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Reporter receives progress of a dump session.
type Reporter interface {
	// SizeReceived is called once the ROM size is known.
	SizeReceived(total int64)
	// Flushed is called after each block is written to output.
	Flushed(received, total int64)
}

// NopReporter discards all progress.
type NopReporter struct{}

// SizeReceived implements Reporter.
func (NopReporter) SizeReceived(int64) {}

// Flushed implements Reporter.
func (NopReporter) Flushed(int64, int64) {}

// cursorPrevLine moves the cursor to the start of the previous line.
const cursorPrevLine = "\x1b[1F"

// TerminalReporter prints progress in KB. With Overwrite set each update
// replaces the previous progress line, otherwise lines are appended.
type TerminalReporter struct {
	Writer    io.Writer
	Overwrite bool
}

// NewTerminalReporter creates a TerminalReporter on f which overwrites
// progress lines only when f is a terminal.
func NewTerminalReporter(f *os.File) *TerminalReporter {
	return &TerminalReporter{
		Writer:    f,
		Overwrite: term.IsTerminal(int(f.Fd())),
	}
}

// SizeReceived implements Reporter.
func (r *TerminalReporter) SizeReceived(total int64) {
	fmt.Fprintf(r.Writer, "Size: %d KB\n", total>>10)
	if r.Overwrite {
		// reserve the line rewritten by Flushed
		fmt.Fprint(r.Writer, "\n\n")
	}
}

// Flushed implements Reporter.
func (r *TerminalReporter) Flushed(received, total int64) {
	if r.Overwrite {
		fmt.Fprintf(r.Writer, "%s%d KB\n", cursorPrevLine, received>>10)
	} else {
		fmt.Fprintf(r.Writer, "%d KB\n", received>>10)
	}
}
