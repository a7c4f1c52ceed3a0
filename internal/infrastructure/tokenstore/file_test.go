package tokenstore

import (
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session", "token"))

	if _, ok := store.Read(); ok {
		t.Fatalf("fresh store should be empty")
	}

	if err := store.Save("abc.def.ghi"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := store.Read()
	if !ok || got != "abc.def.ghi" {
		t.Fatalf("read after save: got %q, ok=%v", got, ok)
	}

	// Overwrite replaces wholesale.
	if err := store.Save("new.token.value"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := store.Read(); got != "new.token.value" {
		t.Fatalf("expected overwritten token, got %q", got)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := store.Read(); ok {
		t.Fatalf("read after clear should report absent")
	}

	// Clear is idempotent.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStore_EmptyFileIsAbsent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))
	if err := store.Save("   \n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := store.Read(); ok {
		t.Fatalf("whitespace-only file should read as absent")
	}
}
