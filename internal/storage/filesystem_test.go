package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	store, err := NewFileStore(root)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if store.BasePath() != root {
		t.Fatalf("BasePath() = %q, want %q", store.BasePath(), root)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		t.Fatalf("root not created: %v", err)
	}
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	if _, err := NewFileStore("  "); err == nil {
		t.Fatal("NewFileStore accepted empty base path")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	key, err := store.Write("photo_001.jpg", []byte("payload"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "photo_001.jpg" {
		t.Fatalf("key = %q, want %q", key, "photo_001.jpg")
	}

	data, err := os.ReadFile(filepath.Join(store.BasePath(), key))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("read back = %q, want %q", data, "payload")
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Write("a.png", []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(store.BasePath())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
}

func TestWriteRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Write("../escape.jpg", []byte("x")); err == nil {
		t.Fatal("Write accepted traversal key")
	}
	if _, err := store.Write("  ", []byte("x")); err == nil {
		t.Fatal("Write accepted blank key")
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Write("img.jpg", []byte("one")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := store.Write("img.jpg", []byte("two")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(store.BasePath(), "img.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "two" {
		t.Fatalf("read back = %q, want %q", data, "two")
	}
}
