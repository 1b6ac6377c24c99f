package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/domain"
	repoInterface "rb-admin-console/internal/repository/interface"
)

// MemoryJournal - журнал мутаций без базы данных: пишет в лог
// и держит последние записи в памяти для страницы /journal
type MemoryJournal struct {
	mu      sync.Mutex
	entries []*domain.JournalEntry
	limit   int
}

// NewMemoryJournal создает журнал, который помнит не больше limit записей
func NewMemoryJournal(limit int) repoInterface.JournalRepository {
	if limit <= 0 {
		limit = 500
	}
	return &MemoryJournal{limit: limit}
}

func (j *MemoryJournal) Record(ctx context.Context, entry *domain.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	log.Info().
		Str("journal_id", entry.ID).
		Str("resource", entry.Resource).
		Str("action", entry.Action).
		Str("record_id", entry.RecordID).
		RawJSON("payload", nonEmptyJSON(entry.Payload)).
		Str("reason", entry.Reason).
		Msg("mutation journaled")

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
	if over := len(j.entries) - j.limit; over > 0 {
		j.entries = append([]*domain.JournalEntry(nil), j.entries[over:]...)
	}
	return nil
}

// List возвращает записи от новых к старым
func (j *MemoryJournal) List(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if limit <= 0 || limit > len(j.entries) {
		limit = len(j.entries)
	}
	out := make([]*domain.JournalEntry, 0, limit)
	for i := len(j.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, j.entries[i])
	}
	return out, nil
}

func (j *MemoryJournal) Stats(ctx context.Context) ([]domain.JournalStats, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	counts := make(map[[2]string]int)
	for _, e := range j.entries {
		counts[[2]string{e.Resource, e.Action}]++
	}
	out := make([]domain.JournalStats, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.JournalStats{Resource: k[0], Action: k[1], Entries: n})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Resource != out[b].Resource {
			return out[a].Resource < out[b].Resource
		}
		return out[a].Action < out[b].Action
	})
	return out, nil
}

func nonEmptyJSON(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
