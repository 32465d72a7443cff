// Package serial opens serial device files and configures the line for raw
// binary transfer.
package serial

// The line settings are changed by reading the current termios, modifying
// it in place and writing it back. Flags the package does not know about
// (driver specific or set by other tools) are preserved. Settings are not
// restored on Close.
