// +build linux darwin

package serial

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"
)

// Port is an opened serial device.
type Port struct {
	file *os.File
	path string
}

// BaudError indicates the baud rate has no matching line speed.
type BaudError struct {
	Baud int
}

// Error implements error.
func (e *BaudError) Error() string {
	return fmt.Sprintf("unsupported baud rate %d", e.Baud)
}

// Open opens the device file for reading and writing. The device does not
// become the controlling terminal.
func Open(path string) (*Port, error) {
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("opened %s", path)
	return &Port{file: f, path: path}, nil
}

// Path returns the device path.
func (p *Port) Path() string {
	return p.path
}

// Read implements io.Reader.
func (p *Port) Read(b []byte) (int, error) {
	return p.file.Read(b)
}

// Write implements io.Writer.
func (p *Port) Write(b []byte) (int, error) {
	return p.file.Write(b)
}

// Close implements io.Closer. A Read blocked in another goroutine returns
// with an error.
func (p *Port) Close() error {
	return p.file.Close()
}

// SetBaud switches the line to raw mode and sets both input and output
// speed to baud. The new settings take effect immediately.
func (p *Port) SetBaud(baud int) error {
	speed, ok := speeds[baud]
	if !ok {
		return &BaudError{Baud: baud}
	}
	err := p.control(func(fd int) error {
		t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
		if err != nil {
			return fmt.Errorf("get attributes: %w", err)
		}
		MakeRaw(t)
		if err = setInputSpeed(t, speed); err != nil {
			return fmt.Errorf("set input speed: %w", err)
		}
		if err = setOutputSpeed(t, speed); err != nil {
			return fmt.Errorf("set output speed: %w", err)
		}
		if err = unix.IoctlSetTermios(fd, ioctlWriteTermios, t); err != nil {
			return fmt.Errorf("set attributes: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	glog.V(1).Infof("%s: raw mode, %d baud", p.path, baud)
	return nil
}

// control runs fn with the raw descriptor. Unlike File.Fd it keeps the
// descriptor in non-blocking mode so Close still interrupts Read.
func (p *Port) control(fn func(fd int) error) error {
	rc, err := p.file.SyscallConn()
	if err != nil {
		return err
	}
	var fnErr error
	if err = rc.Control(func(fd uintptr) {
		fnErr = fn(int(fd))
	}); err != nil {
		return err
	}
	return fnErr
}

// MakeRaw modifies t the same way cfmakeraw does: no input or output
// processing, no echo, no signals, 8 data bits, no parity. The receiver is
// enabled and modem control lines are ignored. Reads block until at least
// one byte arrives.
func MakeRaw(t *unix.Termios) {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
}

var errNoSpeed = unix.EINVAL
