package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "polynomial.txt")
	if err := os.WriteFile(name, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A failed write leaves the previous file alone.
	err := Write(name, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if b, _ := os.ReadFile(name); string(b) != "old" {
		t.Errorf("got %q after failed write, want %q", b, "old")
	}

	if err := Write(name, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	if b, _ := os.ReadFile(name); string(b) != "new" {
		t.Errorf("got %q, want %q", b, "new")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files, want 1 (temp files left behind)", len(entries))
	}
}

func TestWriteMissingDir(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := Write(name, func(io.Writer) error { return nil }); err == nil {
		t.Error("expected error for missing directory")
	}
}
