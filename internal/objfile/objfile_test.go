package objfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/samcharles93/elfscope/pkg/ehdr"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "obj")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestReadHeader(t *testing.T) {
	t.Run("reads only the header prefix", func(t *testing.T) {
		data := bytes.Repeat([]byte{0xab}, 4096)
		copy(data, ehdr.Magic)
		got, err := ReadHeader(writeFile(t, data))
		if err != nil {
			t.Fatalf("ReadHeader: %v", err)
		}
		if len(got) != ehdr.HeaderSize64 {
			t.Fatalf("length: got %d want %d", len(got), ehdr.HeaderSize64)
		}
		if !bytes.Equal(got, data[:ehdr.HeaderSize64]) {
			t.Fatalf("content mismatch")
		}
	})

	t.Run("short file is returned whole", func(t *testing.T) {
		data := []byte(ehdr.Magic + "\x02\x01")
		got, err := ReadHeader(writeFile(t, data))
		if err != nil {
			t.Fatalf("ReadHeader: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("got % x want % x", got, data)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		got, err := ReadHeader(writeFile(t, nil))
		if err != nil {
			t.Fatalf("ReadHeader: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty slice, got %d bytes", len(got))
		}
	})

	t.Run("missing file is a load error", func(t *testing.T) {
		_, err := ReadHeader(filepath.Join(t.TempDir(), "missing"))
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("expected *LoadError, got %T: %v", err, err)
		}
		if le.Op != "open" || !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("unexpected load error: %v", err)
		}
		if errors.Is(err, ehdr.ErrTruncatedInput) {
			t.Fatalf("load error must not look like a decode error")
		}
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, err := ReadHeader(t.TempDir())
		if !errors.Is(err, ErrNotRegular) {
			t.Fatalf("expected ErrNotRegular, got %v", err)
		}
	})
}

func TestReadHeaderAt(t *testing.T) {
	data := bytes.Repeat([]byte{1}, 100)
	got, err := ReadHeaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadHeaderAt: %v", err)
	}
	if len(got) != ehdr.HeaderSize64 {
		t.Fatalf("length: got %d", len(got))
	}

	// Declared size larger than the source: return what exists.
	got, err = ReadHeaderAt(bytes.NewReader(data[:10]), 100)
	if err != nil {
		t.Fatalf("ReadHeaderAt: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("length: got %d want 10", len(got))
	}

	if _, err := ReadHeaderAt(bytes.NewReader(nil), -1); err == nil {
		t.Fatalf("expected error for negative size")
	}
}
