package dump

import (
	"context"
	"io"

	"github.com/golang/glog"
)

// Baud is the line speed used by the cartridge reader firmware.
const Baud = 230400

// BaudSetter is implemented by connections whose line speed can be set.
type BaudSetter interface {
	SetBaud(baud int) error
}

// Session dumps one cartridge over a connection.
type Session struct {
	// Conn is the connection to the reader. If it implements BaudSetter the
	// line is configured before the handshake.
	Conn io.ReadWriter
	// Output receives the ROM bytes.
	Output io.Writer
	// Reporter receives progress, may be nil.
	Reporter Reporter
}

// NewSession creates a Session.
func NewSession(conn io.ReadWriter, output io.Writer, reporter Reporter) *Session {
	return &Session{Conn: conn, Output: output, Reporter: reporter}
}

// Run executes all stages in order and returns the ROM size in bytes.
// The context is checked between stages only; a blocked read is interrupted
// by closing Conn.
func (s *Session) Run(ctx context.Context) (int64, error) {
	reporter := s.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	if setter, ok := s.Conn.(BaudSetter); ok {
		if err := setter.SetBaud(Baud); err != nil {
			return 0, stageError(StageConfigure, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	glog.V(1).Info("waiting for reader")
	if err := Handshake(s.Conn); err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	total, err := ReadSize(s.Conn)
	if err != nil {
		return 0, err
	}
	reporter.SizeReceived(total)

	if err := ctx.Err(); err != nil {
		return total, err
	}
	if err := Transfer(s.Conn, s.Output, total, reporter); err != nil {
		return total, err
	}
	return total, nil
}
