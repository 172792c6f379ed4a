// Package objfile loads the leading bytes of object files for header decoding.
//
// Failures here are I/O failures (missing file, permissions, directories) and
// are reported as *LoadError so callers can keep them apart from decode errors.
package objfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/samcharles93/elfscope/pkg/ehdr"
)

var ErrNotRegular = errors.New("not a regular file")

// LoadError wraps an I/O failure with the operation and path involved.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ReadHeader returns up to ehdr.HeaderSize64 bytes from the start of path.
// Files shorter than a header are returned as-is so the decoder can report
// exactly which field is missing.
//
// The prefix is read through a read-only mapping where available and falls
// back to ReadAt otherwise. The returned slice is a copy and owns no mapping.
func ReadHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Op: "stat", Path: path, Err: err}
	}
	if !stat.Mode().IsRegular() {
		return nil, &LoadError{Op: "open", Path: path, Err: ErrNotRegular}
	}

	n := prefixLen(stat.Size())
	if n == 0 {
		return []byte{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, n, unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		out := make([]byte, n)
		copy(out, data)
		if err := unix.Munmap(data); err != nil {
			return nil, &LoadError{Op: "munmap", Path: path, Err: err}
		}
		return out, nil
	}

	out, err := readPrefix(f, n)
	if err != nil {
		return nil, &LoadError{Op: "read", Path: path, Err: err}
	}
	return out, nil
}

// ReadHeaderAt is ReadHeader for an already open random-access source.
func ReadHeaderAt(r io.ReaderAt, size int64) ([]byte, error) {
	if size < 0 {
		return nil, &LoadError{Op: "read", Path: "<reader>", Err: fmt.Errorf("negative size %d", size)}
	}
	out, err := readPrefix(r, prefixLen(size))
	if err != nil {
		return nil, &LoadError{Op: "read", Path: "<reader>", Err: err}
	}
	return out, nil
}

func prefixLen(size int64) int {
	if size <= 0 {
		return 0
	}
	if size < int64(ehdr.HeaderSize64) {
		return int(size)
	}
	return ehdr.HeaderSize64
}

func readPrefix(r io.ReaderAt, n int) ([]byte, error) {
	out := make([]byte, n)
	var off int64
	for off < int64(n) {
		k, err := r.ReadAt(out[off:], off)
		off += int64(k)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(n) {
			break
		}
		if err == io.EOF {
			// The source shrank underneath us; hand back what exists.
			return out[:off], nil
		}
		return nil, err
	}
	return out, nil
}
