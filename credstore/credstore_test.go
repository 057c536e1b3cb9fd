package credstore

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGarbage(path string) error {
	return os.WriteFile(path, []byte("{not json"), 0o600)
}

// --- File ---

func TestFile_SaveTokenClear(t *testing.T) {
	store := NewFileAt(filepath.Join(t.TempDir(), "devdash", "credentials.json"))

	if _, ok := store.Token(); ok {
		t.Fatal("Token() = ok before any save")
	}

	if err := store.Save("tok123"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	token, ok := store.Token()
	if !ok || token != "tok123" {
		t.Errorf("Token() = %q, %v, want tok123", token, ok)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Error("token survived Clear")
	}
}

func TestFile_ClearIsIdempotent(t *testing.T) {
	store := NewFileAt(filepath.Join(t.TempDir(), "credentials.json"))

	if err := store.Clear(); err != nil {
		t.Errorf("Clear on missing file: %v", err)
	}
}

func TestFile_CorruptFileReadsAsNoToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileAt(path)
	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Overwrite with garbage.
	if err := writeGarbage(path); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	if _, ok := store.Token(); ok {
		t.Error("Token() = ok for corrupt file")
	}
}

// --- Memory ---

func TestMemory_RoundTrip(t *testing.T) {
	store := NewMemory("")
	if _, ok := store.Token(); ok {
		t.Error("empty store reports a token")
	}

	store.Save("tok")
	if token, ok := store.Token(); !ok || token != "tok" {
		t.Errorf("Token() = %q, %v", token, ok)
	}

	store.Clear()
	if _, ok := store.Token(); ok {
		t.Error("token survived Clear")
	}
}
