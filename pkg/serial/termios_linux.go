// +build linux

package serial

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS // applies immediately, like TCSANOW
)

var speeds = map[int]uint32{
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
}

// setInputSpeed follows glibc cfsetispeed.
func setInputSpeed(t *unix.Termios, speed uint32) error {
	if speed&^unix.CBAUD != 0 {
		return errNoSpeed
	}
	t.Cflag = t.Cflag&^unix.CBAUD | speed
	t.Ispeed = speed
	return nil
}

// setOutputSpeed follows glibc cfsetospeed.
func setOutputSpeed(t *unix.Termios, speed uint32) error {
	if speed&^unix.CBAUD != 0 {
		return errNoSpeed
	}
	t.Cflag = t.Cflag&^unix.CBAUD | speed
	t.Ospeed = speed
	return nil
}
