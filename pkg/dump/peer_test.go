package dump

import (
	"bytes"
	"errors"
	"io"
)

// testPeer replays scripted chunks. Each Read returns bytes from the current
// chunk only, so chunk boundaries become read boundaries. After the script
// ends Read returns endErr.
type testPeer struct {
	chunks   [][]byte
	endErr   error
	reads    int
	written  bytes.Buffer
	writes   int
	writeErr error
	baud     int
	baudErr  error
}

func newTestPeer(chunks ...[]byte) *testPeer {
	return &testPeer{chunks: chunks, endErr: io.EOF}
}

func (p *testPeer) Read(b []byte) (int, error) {
	p.reads++
	for len(p.chunks) > 0 && len(p.chunks[0]) == 0 {
		p.chunks = p.chunks[1:]
	}
	if len(p.chunks) == 0 {
		return 0, p.endErr
	}
	n := copy(b, p.chunks[0])
	p.chunks[0] = p.chunks[0][n:]
	return n, nil
}

func (p *testPeer) Write(b []byte) (int, error) {
	p.writes++
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	return p.written.Write(b)
}

type baudPeer struct {
	*testPeer
}

func (p baudPeer) SetBaud(baud int) error {
	p.baud = baud
	return p.baudErr
}

// blockWriter records the size of every Write.
type blockWriter struct {
	bytes.Buffer
	sizes []int
	err   error
}

func (w *blockWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.sizes = append(w.sizes, len(b))
	return w.Buffer.Write(b)
}

type testReporter struct {
	total    int64
	sized    int
	received []int64
}

func (r *testReporter) SizeReceived(total int64) {
	r.total = total
	r.sized++
}

func (r *testReporter) Flushed(received, total int64) {
	r.received = append(r.received, received)
}

func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 7)
	}
	return b
}

func split(b []byte, size int) (chunks [][]byte) {
	for len(b) > size {
		chunks = append(chunks, b[:size])
		b = b[size:]
	}
	return append(chunks, b)
}

var errLink = errors.New("link down")
