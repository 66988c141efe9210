package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes rendered output to stdout, using writev for batching.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

// Write writes the given bytes to stdout.
func (w *Writer) Write(data []byte) error {
	for len(data) > 0 {
		n, err := unix.Writev(w.fd, [][]byte{data})
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// OrderedWriter consumes worker results and writes them in sequence-number
// order, so parallel runs produce deterministic output.
type OrderedWriter struct {
	writer    *Writer
	formatter Formatter
	buf       []byte
}

// NewOrderedWriter creates an OrderedWriter.
func NewOrderedWriter(w *Writer, f Formatter) *OrderedWriter {
	return &OrderedWriter{writer: w, formatter: f}
}

// WriteOrdered drains the result channel, buffering out-of-order results and
// writing them in sequence order. observe is invoked once per result, in
// write order, before the result is rendered.
func (ow *OrderedWriter) WriteOrdered(results <-chan Result, observe func(Result)) {
	nextSeq := 1
	pending := make(map[int]Result)

	emit := func(r Result) {
		if observe != nil {
			observe(r)
		}
		ow.buf = ow.formatter.Format(ow.buf[:0], r)
		ow.writer.Write(ow.buf)
	}

	for r := range results {
		if r.SeqNum != nextSeq {
			pending[r.SeqNum] = r
			continue
		}
		emit(r)
		nextSeq++
		for {
			p, ok := pending[nextSeq]
			if !ok {
				break
			}
			emit(p)
			delete(pending, nextSeq)
			nextSeq++
		}
	}
}

// WriteSummary renders and writes the run summary.
func (ow *OrderedWriter) WriteSummary(s Summary) {
	ow.buf = ow.formatter.FormatSummary(ow.buf[:0], s)
	ow.writer.Write(ow.buf)
}
