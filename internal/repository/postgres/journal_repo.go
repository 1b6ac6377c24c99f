package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"rb-admin-console/internal/domain"
	repoInterface "rb-admin-console/internal/repository/interface"
)

// JournalRepository - PostgreSQL реализация журнала мутаций
type JournalRepository struct {
	db *sqlx.DB
}

// NewJournalRepository создает новый репозиторий
func NewJournalRepository(db *sqlx.DB) repoInterface.JournalRepository {
	return &JournalRepository{db: db}
}

// Record сохраняет запись журнала
func (r *JournalRepository) Record(ctx context.Context, entry *domain.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	payload := entry.Payload
	if len(payload) == 0 {
		payload = []byte("null")
	}

	query := `
        INSERT INTO mutation_journal (id, resource, action, record_id, payload, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING created_at
    `

	row := r.db.QueryRowContext(ctx, query,
		entry.ID,
		entry.Resource,
		entry.Action,
		entry.RecordID,
		[]byte(payload),
		entry.Reason,
	)
	if err := row.Scan(&entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}
	return nil
}

// List возвращает последние записи журнала
func (r *JournalRepository) List(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var rows []journalRow
	query := `
        SELECT id, resource, action, record_id, payload, reason, created_at
        FROM mutation_journal
        ORDER BY created_at DESC
        LIMIT $1
    `
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}

// Stats возвращает количество записей по ресурсам и действиям
func (r *JournalRepository) Stats(ctx context.Context) ([]domain.JournalStats, error) {
	var stats []domain.JournalStats
	query := `
        SELECT resource, action, COUNT(*) AS entries
        FROM mutation_journal
        GROUP BY resource, action
        ORDER BY resource, action
    `
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to load journal stats: %w", err)
	}
	return stats, nil
}
