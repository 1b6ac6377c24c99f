package postgres

import (
	"encoding/json"
	"time"

	"rb-admin-console/internal/domain"
)

// journalRow - строка mutation_journal как ее сканирует sqlx
type journalRow struct {
	ID        string    `db:"id"`
	Resource  string    `db:"resource"`
	Action    string    `db:"action"`
	RecordID  string    `db:"record_id"`
	Payload   []byte    `db:"payload"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}

func (r journalRow) toDomain() *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:        r.ID,
		Resource:  r.Resource,
		Action:    r.Action,
		RecordID:  r.RecordID,
		Payload:   json.RawMessage(r.Payload),
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt,
	}
}
