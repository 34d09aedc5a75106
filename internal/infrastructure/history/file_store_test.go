package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/shellbridge/internal/domain"
)

func sampleRecord(id, input, output string) domain.TranslationRecord {
	return domain.TranslationRecord{
		ID:        id,
		Timestamp: time.Now().UTC(),
		Direction: "to-powershell",
		Input:     input,
		Output:    output,
		Shell:     "bash",
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "history.jsonl"))

	for _, rec := range []domain.TranslationRecord{
		sampleRecord("1", "echo one", "Write-Output one"),
		sampleRecord("2", "echo two", "Write-Output two"),
		sampleRecord("3", "pwd", "Get-Location"),
	} {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].ID != "3" {
		t.Errorf("newest record first: got id %s, want 3", records[0].ID)
	}
}

func TestFileStoreLimitAndSearch(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "history.jsonl"))
	for i, input := range []string{"echo a", "echo b", "ls -la"} {
		if err := store.Save(sampleRecord(string(rune('1'+i)), input, input)); err != nil {
			t.Fatal(err)
		}
	}

	limited, err := store.Records(2, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("got %d records, want 2", len(limited))
	}

	found, err := store.Records(0, "echo")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("search found %d records, want 2", len(found))
	}
}

func TestFileStoreClear(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "history.jsonl"))
	if err := store.Save(sampleRecord("1", "pwd", "Get-Location")); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records after clear, want 0", len(records))
	}
	// Clearing an already-empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}

func TestFileStoreMissingFileYieldsNoRecords(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "nope.jsonl"))
	records, err := store.Records(10, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if records != nil {
		t.Fatalf("expected nil records, got %v", records)
	}
}
