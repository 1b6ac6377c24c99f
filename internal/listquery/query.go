package listquery

import (
	"net/url"
	"strconv"
	"strings"
)

// Direction - направление сортировки
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Query - состояние запроса страницы списка
type Query struct {
	Search    string
	SortField string
	SortDir   Direction
	Page      int
}

// ToggleSort переключает сортировку по полю.
// Повторный выбор того же поля меняет направление, новое поле сбрасывает его в asc.
func (q Query) ToggleSort(field string) Query {
	if q.SortField == field {
		if q.SortDir == Desc {
			q.SortDir = Asc
		} else {
			q.SortDir = Desc
		}
	} else {
		q.SortField = field
		q.SortDir = Asc
	}
	q.Page = 1
	return q
}

// WithPage возвращает копию запроса с другой страницей
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// WithSearch возвращает копию запроса с новым поиском, страница сбрасывается
func (q Query) WithSearch(search string) Query {
	q.Search = search
	q.Page = 1
	return q
}

// Values сериализует запрос в параметры ?search=&sort=&dir=&page=
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortField != "" {
		v.Set("sort", q.SortField)
		v.Set("dir", string(q.SortDir))
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// ServerParams - параметры запроса страницы к бэкенду для серверной пагинации
func (q Query) ServerParams(pageSize int) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(max(q.Page, 1)))
	v.Set("limit", strconv.Itoa(pageSize))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortField != "" {
		v.Set("sort", q.SortField)
		v.Set("order", string(q.SortDir))
	}
	return v
}

// Encode - строка запроса без ведущего '?'
func (q Query) Encode() string {
	return q.Values().Encode()
}

// QueryFromValues разбирает состояние из параметров URL
func QueryFromValues(v url.Values, defaultSort string) Query {
	q := Query{
		Search:    strings.TrimSpace(v.Get("search")),
		SortField: v.Get("sort"),
		SortDir:   Asc,
		Page:      1,
	}
	if q.SortField == "" {
		q.SortField = defaultSort
	}
	if Direction(strings.ToLower(v.Get("dir"))) == Desc {
		q.SortDir = Desc
	}
	if page, err := strconv.Atoi(v.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	return q
}
