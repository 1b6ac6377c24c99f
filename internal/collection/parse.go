package collection

import (
	"strconv"
	"strings"

	"rb-admin-console/internal/domain"
)

// FormValue переводит значение поля записи в строку для формы редактора.
// Списки сериализуются через запятую.
func FormValue(kind domain.FieldKind, v any) string {
	switch kind {
	case domain.FieldIntList, domain.FieldStringList:
		list, _ := v.([]any)
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, domain.TextOf(item))
		}
		return strings.Join(parts, ",")
	case domain.FieldBool:
		b, _ := v.(bool)
		return strconv.FormatBool(b)
	default:
		return domain.TextOf(v)
	}
}

// ParseValue переводит строку из формы обратно в значение записи
func ParseValue(kind domain.FieldKind, s string) any {
	switch kind {
	case domain.FieldIntList:
		return ParseIntList(s)
	case domain.FieldStringList:
		return ParseStringList(s)
	case domain.FieldBool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "on", "true", "1", "yes":
			return true
		}
		return false
	case domain.FieldFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return float64(0)
		}
		return f
	case domain.FieldInt:
		n, ok := ParseIntPrefix(s)
		if !ok {
			return nil
		}
		return float64(n)
	default:
		return s
	}
}

// ParseIntList разбирает "1, 2,x, 3" в [1 2 3]; нечисловые элементы отбрасываются
func ParseIntList(s string) []any {
	out := []any{}
	for _, part := range strings.Split(s, ",") {
		if n, ok := ParseIntPrefix(part); ok {
			out = append(out, float64(n))
		}
	}
	return out
}

// ParseStringList разбирает "a, b,,c" в [a b c]
func ParseStringList(s string) []any {
	out := []any{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseIntPrefix разбирает целое по правилам parseInt: пробелы по краям,
// необязательный знак, затем ведущие цифры ("12abc" -> 12, "abc" -> нет числа)
func ParseIntPrefix(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
