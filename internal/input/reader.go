// Package input reads whole files for the formatting pipeline.
// Small files go through pooled pread buffers, large files are memory-mapped.
package input

import (
	"fmt"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultMmapThreshold is the file size at which reads switch to mmap.
const DefaultMmapThreshold = 1 << 20

// ReadResult holds file content and a cleanup function.
// Closer must be called once the content has been fully consumed; after that
// Data must not be touched again (it may be a pooled buffer or a mapping).
type ReadResult struct {
	Data   []byte
	Closer func() error
}

// Reader reads a file's full content.
type Reader interface {
	Read(path string) (ReadResult, error)
}

func noopCloser() error { return nil }

// bufPool reuses read buffers across files. Stored as *[]byte so a grown
// backing array survives round trips through the pool.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

// NewAdaptiveReader returns a Reader that opens each file once, sizes it via
// fstat, and picks buffered pread or mmap based on the threshold.
// threshold <= 0 selects DefaultMmapThreshold.
func NewAdaptiveReader(threshold int64) Reader {
	if threshold <= 0 {
		threshold = DefaultMmapThreshold
	}
	return &adaptiveReader{threshold: threshold}
}

type adaptiveReader struct {
	threshold int64
}

func (r *adaptiveReader) Read(path string) (ReadResult, error) {
	fd, err := openFile(path)
	if err != nil {
		return ReadResult{}, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return ReadResult{}, fmt.Errorf("stat %s: %w", path, err)
	}

	size := stat.Size
	if size == 0 {
		unix.Close(fd)
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}
	if size >= r.threshold {
		return readMmap(fd, size)
	}
	return readBuffered(fd, size)
}

// openFile opens with O_NOATIME when permitted, falling back silently.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY, 0)
	}
	return fd, err
}

// readBuffered reads the file into a pooled buffer via pread.
// Takes ownership of fd.
func readBuffered(fd int, size int64) (ReadResult, error) {
	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}

	var total int
	for total < int(size) {
		n, err := unix.Pread(fd, buf[total:], int64(total))
		if err != nil {
			unix.Close(fd)
			*bp = buf
			bufPool.Put(bp)
			return ReadResult{}, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	unix.Close(fd)

	return ReadResult{
		Data: buf[:total],
		Closer: func() error {
			*bp = buf
			bufPool.Put(bp)
			return nil
		},
	}, nil
}

// readMmap maps the file privately with a sequential-access hint.
// Takes ownership of fd; falls back to buffered on mmap failure.
func readMmap(fd int, size int64) (ReadResult, error) {
	unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)
	data, err := syscall.Mmap(fd, 0, int(size), syscall.PROT_READ, syscall.MAP_PRIVATE)
	if err != nil {
		return readBuffered(fd, size)
	}
	unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return ReadResult{
		Data: data,
		Closer: func() error {
			syscall.Munmap(data)
			unix.Close(fd)
			return nil
		},
	}, nil
}
