package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"honnef.co/go/polycurve/internal/svgfile"
)

func TestReadPathData(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "shape.svg")
	doc := `<svg xmlns="http://www.w3.org/2000/svg"><path d=" M 1,2 C 3,4 5,6 7,8 "/></svg>`
	if err := os.WriteFile(name, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readPathData(name)
	if err != nil {
		t.Fatal(err)
	}
	if want := "M 1,2 C 3,4 5,6 7,8"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	empty := filepath.Join(dir, "empty.svg")
	if err := os.WriteFile(empty, []byte(`<svg/>`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readPathData(empty); !errors.Is(err, svgfile.ErrNoPath) {
		t.Errorf("got error %v, want %v", err, svgfile.ErrNoPath)
	}

	if _, err := readPathData(filepath.Join(dir, "missing.svg")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want %v", err, os.ErrNotExist)
	}
}
