// Package dump implements the host side of the SNES cartridge reader
// protocol.
package dump

// The reader firmware and the host talk over a point-to-point serial link
// at a fixed baud rate:
//
//   1. firmware repeatedly prints "Hello" until the host answers;
//   2. host sends one byte of any value;
//   3. firmware sends the ROM size in KB as a big-endian uint16;
//   4. firmware streams exactly size*1024 ROM bytes, without framing or
//      checksums.
//
// Every read blocks without a timeout. The peer is trusted firmware with a
// bounded startup sequence. To abort a run, close the connection from
// another goroutine.
