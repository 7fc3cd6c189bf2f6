package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	entries := []Entry{
		{RequestID: "req-1", Command: "ffmpeg -i a.wav a.mp3", OutputFile: "a.mp3", Size: 1024, Duration: 250 * time.Millisecond},
		{RequestID: "req-2", Command: "ffmpeg -i b.wav b.mp3", ErrorMessage: "empty output", Duration: 10 * time.Millisecond},
	}
	for _, entry := range entries {
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(recent))
	}
	if recent[0].RequestID != "req-2" {
		t.Errorf("newest entry = %q, want req-2 first", recent[0].RequestID)
	}
	if recent[0].Succeeded() {
		t.Error("entry with error message reported success")
	}
	if !recent[1].Succeeded() {
		t.Errorf("entry without error message reported failure: %q", recent[1].ErrorMessage)
	}
	if recent[1].Size != 1024 {
		t.Errorf("Size = %d, want 1024", recent[1].Size)
	}
	if recent[1].Duration != 250*time.Millisecond {
		t.Errorf("Duration = %s, want 250ms", recent[1].Duration)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, Entry{RequestID: "req", Command: "ffmpeg"}); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}
	recent, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Recent returned %d entries, want 3", len(recent))
	}
}

func TestNilStoreIsNoop(t *testing.T) {
	var store *Store
	if err := store.Record(context.Background(), Entry{}); err != nil {
		t.Errorf("nil store Record returned error: %v", err)
	}
	entries, err := store.Recent(context.Background(), 5)
	if err != nil {
		t.Errorf("nil store Recent returned error: %v", err)
	}
	if entries != nil {
		t.Errorf("nil store Recent returned entries: %v", entries)
	}
	if err := store.Close(); err != nil {
		t.Errorf("nil store Close returned error: %v", err)
	}
}
