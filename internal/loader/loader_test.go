package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cogwheel/jayvee/internal/runtime"
)

func TestLoadFindsFirstMatchingClasspathEntry(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	want := []byte{0xCA, 0xFE, 0xBA, 0xBE}
	if err := os.WriteFile(filepath.Join(dirB, "Foo.class"), want, 0644); err != nil {
		t.Fatal(err)
	}

	fs := New([]string{dirA, dirB})
	got, err := fs.Load("Foo")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestLoadMissingClassWrapsErrClassNotFound(t *testing.T) {
	fs := New([]string{t.TempDir()})
	_, err := fs.Load("Missing")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, runtime.ErrClassNotFound) {
		t.Errorf("Load() error = %v, want wrapping ErrClassNotFound", err)
	}
}

func TestLoadEmptyClasspathWrapsErrClassNotFound(t *testing.T) {
	fs := New(nil)
	_, err := fs.Load("Anything")
	if !errors.Is(err, runtime.ErrClassNotFound) {
		t.Errorf("Load() error = %v, want wrapping ErrClassNotFound", err)
	}
}
