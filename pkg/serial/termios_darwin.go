// +build darwin

package serial

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA // applies immediately, like TCSANOW
)

var speeds = map[int]uint64{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
}

func setInputSpeed(t *unix.Termios, speed uint64) error {
	if speed == 0 {
		return errNoSpeed
	}
	t.Ispeed = speed
	return nil
}

func setOutputSpeed(t *unix.Termios, speed uint64) error {
	if speed == 0 {
		return errNoSpeed
	}
	t.Ospeed = speed
	return nil
}
