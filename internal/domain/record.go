package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// TimestampLayout - формат локальных отметок времени, которые ставит редактор
const TimestampLayout = "2006-01-02 15:04:05"

// Record - экземпляр ресурса в виде отображения поле -> значение.
// Числа хранятся как float64, списки как []any, вложенные объекты как map[string]any,
// то есть в той же форме, что возвращает encoding/json.
type Record map[string]any

// Clone возвращает глубокую копию записи
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue копирует списки и вложенные объекты, скаляры возвращает как есть
func CloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = CloneValue(t[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = CloneValue(inner)
		}
		return out
	case Record:
		return t.Clone()
	default:
		return v
	}
}

// Text возвращает строковое представление поля для поиска и сортировки
func (r Record) Text(field string) string {
	return TextOf(r[field])
}

// TextOf приводит строки, числа и bool к строке, всё остальное - пустая строка
func TextOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		if f, ok := AsFloat(t); ok {
			return FormatNumber(f)
		}
		return ""
	}
}

// IDString возвращает идентификатор записи в строковом виде
func (r Record) IDString(field string) string {
	return r.Text(field)
}

// AsFloat приводит числовые значения к float64
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// FormatNumber печатает число без лишних нулей: 3 -> "3", 0.25 -> "0.25"
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Ints собирает список целых чисел в форме []any
func Ints(values ...int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Strings собирает список строк в форме []any
func Strings(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Now возвращает текущее локальное время в формате TimestampLayout
func Now() string {
	return time.Now().Format(TimestampLayout)
}
