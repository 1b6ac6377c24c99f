package domain

import (
	"encoding/json"
	"time"
)

// Действия, которые попадают в журнал мутаций
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// JournalEntry - оптимистичная мутация, у которой нет удаленного эндпоинта
// (или вызов которого не удался). Хранится для ручной сверки с бэкендом.
type JournalEntry struct {
	ID        string          `db:"id" json:"id"`
	Resource  string          `db:"resource" json:"resource"`
	Action    string          `db:"action" json:"action"`
	RecordID  string          `db:"record_id" json:"record_id"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	Reason    string          `db:"reason" json:"reason"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// JournalStats - количество записей журнала по ресурсу и действию
type JournalStats struct {
	Resource string `db:"resource" json:"resource"`
	Action   string `db:"action" json:"action"`
	Entries  int    `db:"entries" json:"entries"`
}
