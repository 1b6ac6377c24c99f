package backend

import (
	"encoding/json"
	"fmt"

	"rb-admin-console/internal/domain"
)

// shapeStrategy пытается вытащить список и total из декодированного тела
type shapeStrategy func(body any) (items []any, total int, ok bool)

// Порядок важен: голый массив, затем {data}, затем {items}
var shapeStrategies = []shapeStrategy{
	bareArray,
	wrappedIn("data"),
	wrappedIn("items"),
}

func bareArray(body any) ([]any, int, bool) {
	arr, ok := body.([]any)
	if !ok {
		return nil, 0, false
	}
	return arr, len(arr), true
}

func wrappedIn(key string) shapeStrategy {
	return func(body any) ([]any, int, bool) {
		obj, ok := body.(map[string]any)
		if !ok {
			return nil, 0, false
		}
		arr, ok := obj[key].([]any)
		if !ok {
			return nil, 0, false
		}
		return arr, totalOf(obj, len(arr)), true
	}
}

// totalOf = body.total ?? body.count ?? fallback
func totalOf(obj map[string]any, fallback int) int {
	for _, key := range []string{"total", "count"} {
		if f, ok := domain.AsFloat(obj[key]); ok {
			return int(f)
		}
	}
	return fallback
}

// Normalize приводит тело ответа списка к (items, total).
// Элементы, которые не являются объектами, отбрасываются.
func Normalize(body []byte) ([]map[string]any, int, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, 0, fmt.Errorf("failed to decode response: %w", err)
	}
	for _, strategy := range shapeStrategies {
		raw, total, ok := strategy(decoded)
		if !ok {
			continue
		}
		items := make([]map[string]any, 0, len(raw))
		for _, item := range raw {
			if obj, ok := item.(map[string]any); ok {
				items = append(items, obj)
			}
		}
		return items, total, nil
	}
	return nil, 0, ErrUnexpectedShape
}

// Canonicalize переносит поля записи на канонические имена:
// для каждого алиаса берется первый непустой (не null) ключ, иначе значение по умолчанию.
// Альтернативные ключи удаляются, остальные поля остаются как есть.
func Canonicalize(raw map[string]any, aliases []domain.Alias) domain.Record {
	rec := make(domain.Record, len(raw))
	for k, v := range raw {
		rec[k] = v
	}
	for _, a := range aliases {
		var value any
		found := false
		for _, key := range a.Keys {
			if v, ok := raw[key]; ok && v != nil {
				value, found = v, true
				break
			}
		}
		for _, key := range a.Keys {
			if key != a.Canonical {
				delete(rec, key)
			}
		}
		if !found {
			value = domain.CloneValue(a.Default)
		}
		rec[a.Canonical] = value
	}
	return rec
}

// CanonicalizeAll применяет Canonicalize к списку
func CanonicalizeAll(raw []map[string]any, aliases []domain.Alias) []domain.Record {
	out := make([]domain.Record, len(raw))
	for i, item := range raw {
		out[i] = Canonicalize(item, aliases)
	}
	return out
}

// unwrapRecord достает запись из ответа деталей: сама запись или {data: запись}
func unwrapRecord(body []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if inner, ok := obj["data"].(map[string]any); ok {
		return inner, nil
	}
	return obj, nil
}
