package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	entries := []Entry{
		{Text: "hello", Translation: "नमस्कार", Source: "en", Target: "mr", Method: "provider:google"},
		{Text: "पाणी", Translation: "water", Source: "mr", Target: "en", Method: "provider:mymemory"},
	}
	for _, e := range entries {
		if err := store.Record(e); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(recent))
	}

	// Newest first.
	if recent[0].Text != "पाणी" {
		t.Errorf("Expected newest entry first, got %q", recent[0].Text)
	}
	if recent[1].Translation != "नमस्कार" {
		t.Errorf("Expected नमस्कार, got %q", recent[1].Translation)
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Record(Entry{Text: "hello", Translation: "नमस्कार", Source: "en", Target: "mr", Method: "dictionary"}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(recent))
	}
}

func TestCount(t *testing.T) {
	store := openTestStore(t)

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 entries in fresh store, got %d", count)
	}

	if err := store.Record(Entry{Text: "hello", Translation: "नमस्कार", Source: "en", Target: "mr", Method: "provider:google"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	count, err = store.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 entry, got %d", count)
	}
}
