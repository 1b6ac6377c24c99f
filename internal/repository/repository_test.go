package repository

import (
	"context"
	"testing"

	"rb-admin-console/internal/domain"
)

func TestMemoryJournal_ListNewestFirstAndLimit(t *testing.T) {
	j := NewMemoryJournal(3)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3", "4"} {
		if err := j.Record(ctx, &domain.JournalEntry{Resource: "chats", Action: domain.ActionCreate, RecordID: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := j.List(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries kept, got %d", len(entries))
	}
	if entries[0].RecordID != "4" || entries[2].RecordID != "2" {
		t.Fatalf("expected newest first, got %s..%s", entries[0].RecordID, entries[2].RecordID)
	}
	if entries[0].ID == "" || entries[0].CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp assigned")
	}
}

func TestMemoryJournal_Stats(t *testing.T) {
	j := NewMemoryJournal(10)
	ctx := context.Background()
	j.Record(ctx, &domain.JournalEntry{Resource: "tags", Action: domain.ActionDelete})
	j.Record(ctx, &domain.JournalEntry{Resource: "chats", Action: domain.ActionCreate})
	j.Record(ctx, &domain.JournalEntry{Resource: "chats", Action: domain.ActionCreate})

	stats, err := j.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(stats))
	}
	if stats[0].Resource != "chats" || stats[0].Entries != 2 {
		t.Fatalf("unexpected first group: %+v", stats[0])
	}
}
