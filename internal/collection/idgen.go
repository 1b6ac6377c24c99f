package collection

import (
	"fmt"

	"rb-admin-console/internal/domain"
)

// NextID синтезирует идентификатор новой записи.
// Числовые: максимальный существующий + 1.
// Строковые: 24-символьная hex-строка от (число строковых id + 1), сдвигается до уникальной.
func NextID(items []domain.Record, field string, kind domain.IDKind) any {
	if kind == domain.NumericID {
		return NextNumericID(items, field)
	}
	return NextStringID(items, field)
}

func NextNumericID(items []domain.Record, field string) float64 {
	var max float64
	for _, r := range items {
		if f, ok := domain.AsFloat(r[field]); ok && f > max {
			max = f
		}
	}
	return max + 1
}

func NextStringID(items []domain.Record, field string) string {
	taken := make(map[string]struct{}, len(items))
	for _, r := range items {
		if id, ok := r[field].(string); ok {
			taken[id] = struct{}{}
		}
	}
	for n := len(taken) + 1; ; n++ {
		id := fmt.Sprintf("%024x", n)
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}
