package dump

import (
	"bytes"
	"io"

	"github.com/golang/glog"
)

const (
	// Marker is printed by the firmware while waiting for the host.
	Marker = "Hello"
	// HandshakeBufferSize is the maximum size of one read during handshake.
	HandshakeBufferSize = 128
)

// Handshake blocks until Marker appears in the stream read from rw and then
// sends a single acknowledgment byte. Bytes received after the marker in the
// same read are dropped.
//
// Only bytes received in this call are searched. The tail of the previous
// read is kept so a marker split across two reads is still found.
func Handshake(rw io.ReadWriter) error {
	marker := []byte(Marker)
	keep := len(marker) - 1
	window := make([]byte, keep+HandshakeBufferSize)
	carry := 0
	for {
		buf := window[carry : carry+HandshakeBufferSize]
		n, err := rw.Read(buf)
		if n <= 0 {
			if err == nil {
				err = ErrNoData
			}
			return stageError(StageHandshake, err)
		}
		glog.V(2).Infof("handshake: received %d bytes", n)
		if bytes.Contains(window[:carry+n], marker) {
			return acknowledge(rw, buf[0])
		}
		if err != nil {
			return stageError(StageHandshake, err)
		}
		// slide the last keep bytes to the front for the next read
		tail := carry + n
		if tail > keep {
			copy(window, window[tail-keep:tail])
			carry = keep
		} else {
			carry = tail
		}
	}
}

func acknowledge(w io.Writer, b byte) error {
	n, err := w.Write([]byte{b})
	if n <= 0 {
		if err == nil {
			err = ErrShortWrite
		}
		return stageError(StageHandshake, err)
	}
	glog.V(1).Info("handshake: marker received, acknowledged")
	return nil
}
