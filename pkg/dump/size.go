package dump

import (
	"encoding/binary"
	"io"

	"github.com/golang/glog"
)

// MaxROMSize is the largest size the header can describe.
const MaxROMSize = int64(0xffff) << 10

// ReadSize reads the 2-byte big-endian size header and returns the ROM size
// in bytes. Anything shorter than two bytes fails.
func ReadSize(r io.Reader) (int64, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, stageError(StageReadSize, err)
	}
	kb := binary.BigEndian.Uint16(hdr[:])
	glog.V(1).Infof("ROM size: %d KB", kb)
	return int64(kb) << 10, nil
}
