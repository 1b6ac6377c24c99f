package _interface

import (
	"context"

	"rb-admin-console/internal/domain"
)

// JournalRepository - журнал оптимистичных мутаций
type JournalRepository interface {
	Record(ctx context.Context, entry *domain.JournalEntry) error
	List(ctx context.Context, limit int) ([]*domain.JournalEntry, error)
	Stats(ctx context.Context) ([]domain.JournalStats, error)
}
