package dump

import (
	"io"

	"github.com/golang/glog"
)

// BlockSize is the capacity of the transfer buffer. Output is written in
// blocks of this size, except the last one.
const BlockSize = 4096

// Transfer copies exactly total bytes from r to w. Data is accumulated in a
// BlockSize buffer which is flushed to w when it is full or when the last
// byte has arrived; reporter is notified after every flush.
//
// A read returning no data before total bytes arrived fails the transfer.
// Blocks already flushed stay written.
func Transfer(r io.Reader, w io.Writer, total int64, reporter Reporter) error {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if total <= 0 {
		return nil
	}
	var (
		buf  [BlockSize]byte
		pos  int   // bytes held since the last flush
		size int64 // bytes received so far
	)
	for size < total {
		end := len(buf)
		if rest := total - size; rest < int64(end-pos) {
			end = pos + int(rest)
		}
		n, err := r.Read(buf[pos:end])
		if n <= 0 {
			if err == nil {
				err = ErrNoData
			}
			return stageError(StageTransfer, err)
		}
		pos += n
		size += int64(n)
		glog.V(3).Infof("transfer: read %d bytes, %d/%d", n, size, total)

		if size == total || pos == len(buf) {
			if werr := flush(w, buf[:pos]); werr != nil {
				return stageError(StageTransfer, werr)
			}
			pos = 0
			reporter.Flushed(size, total)
		}
		if err != nil && size < total {
			return stageError(StageTransfer, err)
		}
	}
	glog.V(1).Infof("transfer: %d bytes complete", size)
	return nil
}

func flush(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err == nil && n < len(b) {
		err = ErrShortWrite
	}
	return err
}
