package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFindMatchesExtensionsCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.cr3"))
	touch(t, filepath.Join(dir, "b.CR2"))
	touch(t, filepath.Join(dir, "c.Orf"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "noext"))

	files, err := Find(dir, true)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("Expected 3 image files, got %d: %v", len(files), files)
	}
}

func TestFindRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.cr3"))
	touch(t, filepath.Join(dir, "2024", "deep.nef"))

	files, err := Find(dir, true)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("Expected recursive search to find 2 files, got %d", len(files))
	}

	files, err = Find(dir, false)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "top.cr3" {
		t.Errorf("Expected non-recursive search to find only top.cr3, got %v", files)
	}
}

func TestFindSortsOutput(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "z.cr3"))
	touch(t, filepath.Join(dir, "a.cr3"))
	touch(t, filepath.Join(dir, "m.cr3"))

	files, err := Find(dir, true)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Fatalf("Expected sorted output, got %v", files)
		}
	}
}

func TestFindErrors(t *testing.T) {
	if _, err := Find(filepath.Join(t.TempDir(), "missing"), true); err == nil {
		t.Error("Expected error for a missing directory")
	}

	file := filepath.Join(t.TempDir(), "photo.cr3")
	touch(t, file)
	if _, err := Find(file, true); err == nil {
		t.Error("Expected error when the path is not a directory")
	}
}
