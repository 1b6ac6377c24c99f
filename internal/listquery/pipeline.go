// Package listquery превращает коллекцию записей и состояние запроса
// (поиск, сортировка, страница) в видимую страницу строк.
package listquery

import (
	"math"
	"sort"
	"strings"

	"rb-admin-console/internal/domain"
)

// Spec - параметры конвейера для конкретного ресурса
type Spec struct {
	SearchFields []string
	SortKeys     map[string]domain.SortKind
	PageSize     int
}

// SpecFor собирает Spec из описания ресурса
func SpecFor(res *domain.Resource) Spec {
	return Spec{
		SearchFields: res.SearchFields,
		SortKeys:     res.SortKeys,
		PageSize:     res.PageSize,
	}
}

// Result - видимая страница и метаданные пагинации
type Result struct {
	Rows       []domain.Record
	Total      int
	TotalPages int
	Page       int
	PageSize   int
}

func (r Result) HasPrev() bool { return r.Page > 1 }
func (r Result) HasNext() bool { return r.Page < r.TotalPages }

// Render = paginate(sort(filter(source, search), field, dir), page, size).
// Источник не изменяется.
func Render(source []domain.Record, q Query, spec Spec) Result {
	filtered := Filter(source, q.Search, spec.SearchFields)
	sorted := Sort(filtered, q.SortField, q.SortDir, spec.SortKeys)
	rows, page, pages := Paginate(sorted, q.Page, spec.PageSize)
	return Result{
		Rows:       rows,
		Total:      len(filtered),
		TotalPages: pages,
		Page:       page,
		PageSize:   spec.PageSize,
	}
}

// RenderServer строит результат для ресурсов с серверной пагинацией:
// строки уже являются нужной страницей, total пришел от бэкенда.
func RenderServer(rows []domain.Record, total int, q Query, pageSize int) Result {
	pages := TotalPages(total, pageSize)
	return Result{
		Rows:       rows,
		Total:      total,
		TotalPages: pages,
		Page:       clamp(q.Page, 1, pages),
		PageSize:   pageSize,
	}
}

// Filter оставляет записи, у которых хотя бы одно поле из whitelist
// содержит search без учета регистра. Пустой search пропускает всё.
func Filter(source []domain.Record, search string, fields []string) []domain.Record {
	out := make([]domain.Record, 0, len(source))
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return append(out, source...)
	}
	for _, r := range source {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(r.Text(f)), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Sort возвращает отсортированную копию. Сортировка устойчивая,
// неизвестное поле оставляет порядок без изменений.
func Sort(rows []domain.Record, field string, dir Direction, keys map[string]domain.SortKind) []domain.Record {
	out := append([]domain.Record(nil), rows...)
	kind, ok := keys[field]
	if !ok {
		return out
	}
	sign := 1
	if dir == Desc {
		sign = -1
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sign*compare(out[i], out[j], field, kind) < 0
	})
	return out
}

// Paginate режет страницу. Номер страницы приводится к [1, totalPages].
func Paginate(rows []domain.Record, page, pageSize int) ([]domain.Record, int, int) {
	pages := TotalPages(len(rows), pageSize)
	page = clamp(page, 1, pages)
	if pageSize <= 0 {
		return rows, page, pages
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []domain.Record{}, page, pages
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], page, pages
}

// TotalPages = max(1, ceil(count / pageSize))
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func compare(a, b domain.Record, field string, kind domain.SortKind) int {
	switch kind {
	case domain.SortNumber:
		return compareFloat(number(a[field]), number(b[field]))
	case domain.SortLength:
		return compareFloat(float64(length(a[field])), float64(length(b[field])))
	case domain.SortBool:
		return compareFloat(boolean(a[field]), boolean(b[field]))
	default:
		return strings.Compare(strings.ToLower(a.Text(field)), strings.ToLower(b.Text(field)))
	}
}

func compareFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func number(v any) float64 {
	if f, ok := domain.AsFloat(v); ok {
		return f
	}
	return math.Inf(-1)
}

func length(v any) int {
	switch t := v.(type) {
	case []any:
		return len(t)
	case []string:
		return len(t)
	case string:
		return len(t)
	default:
		return 0
	}
}

func boolean(v any) float64 {
	if b, ok := v.(bool); ok && b {
		return 1
	}
	return 0
}
