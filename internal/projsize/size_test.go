package projsize

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file of n bytes under dir, creating parents as needed.
func writeFile(t *testing.T, dir, name string, n int) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, make([]byte, n), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestFolderSizeEmpty(t *testing.T) {
	size, err := FolderSize(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("FolderSize returned error: %v", err)
	}

	if size != 0 {
		t.Errorf("expected 0 for empty directory, got %d", size)
	}
}

func TestFolderSizeMissing(t *testing.T) {
	size, err := FolderSize(context.Background(), filepath.Join(t.TempDir(), "no-such-dir"))
	if err != nil {
		t.Fatalf("FolderSize returned error: %v", err)
	}

	if size != 0 {
		t.Errorf("expected 0 for missing directory, got %d", size)
	}
}

func TestFolderSizeFlat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", 10)
	writeFile(t, dir, "b.bin", 20)
	writeFile(t, dir, "c.bin", 30)

	size, err := FolderSize(context.Background(), dir)
	if err != nil {
		t.Fatalf("FolderSize returned error: %v", err)
	}

	if size != 60 {
		t.Errorf("expected 60 bytes, got %d", size)
	}
}

func TestFolderSizeRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file1.txt", 5)
	writeFile(t, dir, "file2.txt", 10)
	writeFile(t, dir, filepath.Join("sub", "file3.txt"), 5)
	writeFile(t, dir, filepath.Join("sub", "deeper", "file4.txt"), 7)

	size, err := FolderSize(context.Background(), dir)
	if err != nil {
		t.Fatalf("FolderSize returned error: %v", err)
	}

	if size != 27 {
		t.Errorf("expected 27 bytes, got %d", size)
	}
}

func TestFolderSizeIgnoresSymlinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("real", "data.bin"), 100)

	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	size, err := FolderSize(context.Background(), dir)
	if err != nil {
		t.Fatalf("FolderSize returned error: %v", err)
	}

	// The linked directory must not be counted a second time.
	if size != 100 {
		t.Errorf("expected 100 bytes, got %d", size)
	}
}
