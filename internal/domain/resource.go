package domain

import (
	"errors"
	"sort"
)

// ErrUnknownResource - запрошен ресурс, которого нет в реестре
var ErrUnknownResource = errors.New("unknown resource")

// IDKind - тип идентификатора ресурса
type IDKind string

const (
	NumericID IDKind = "numeric"
	StringID  IDKind = "string"
)

// SortKind - проекция поля для сравнения при сортировке
type SortKind string

const (
	SortString SortKind = "string"
	SortNumber SortKind = "number"
	SortLength SortKind = "length"
	SortBool   SortKind = "bool"
)

// PaginationMode - где выполняется разбиение на страницы
type PaginationMode string

const (
	PaginateClient PaginationMode = "client"
	PaginateServer PaginationMode = "server"
)

// FieldKind - тип поля формы редактора
type FieldKind string

const (
	FieldText       FieldKind = "text"
	FieldTextarea   FieldKind = "textarea"
	FieldSelect     FieldKind = "select"
	FieldBool       FieldKind = "bool"
	FieldInt        FieldKind = "int"
	FieldFloat      FieldKind = "float"
	FieldIntList    FieldKind = "int-list"
	FieldStringList FieldKind = "string-list"
)

// FormField - поле формы редактора
type FormField struct {
	Name    string
	Label   string
	Kind    FieldKind
	Options []string
	Default string
}

// Alias - правило нормализации поля: ключи пробуются по порядку, затем Default
type Alias struct {
	Canonical string
	Keys      []string
	Default   any
}

// Column - колонка таблицы списка
type Column struct {
	Field    string
	Title    string
	Sortable bool
}

// Resource - табличное описание одного типа ресурса.
// Все страницы списков строятся по этому описанию.
type Resource struct {
	Name     string
	Title    string
	Endpoint string

	IDField string
	IDKind  IDKind

	SearchFields []string
	SortKeys     map[string]SortKind
	DefaultSort  string
	Columns      []Column
	PageSize     int
	Pagination   PaginationMode

	Aliases     []Alias
	Form        []FormField
	Required    []string
	ForeignKeys map[string]string

	// SearchLinks - поле хранит имя связанной записи, ссылка ведет на поиск по нему
	SearchLinks  map[string]string
	HiddenFields []string
	JSONSections []string

	// Writable - у бэкенда есть эндпоинты создания и обновления
	Writable bool

	Seed func() []Record
}

// Remote сообщает, что список ресурса загружается с бэкенда
func (r *Resource) Remote() bool {
	return r.Endpoint != ""
}

// SeedRecords возвращает копию статического набора записей
func (r *Resource) SeedRecords() []Record {
	if r.Seed == nil {
		return nil
	}
	return r.Seed()
}

// FormField возвращает описание поля формы по имени
func (r *Resource) FormField(name string) (FormField, bool) {
	for _, f := range r.Form {
		if f.Name == name {
			return f, true
		}
	}
	return FormField{}, false
}

// IsHidden сообщает, что поле не показывается в общей таблице деталей
func (r *Resource) IsHidden(field string) bool {
	for _, h := range r.HiddenFields {
		if h == field {
			return true
		}
	}
	return false
}

// IsJSONSection сообщает, что поле рисуется отдельным блоком с форматированным JSON
func (r *Resource) IsJSONSection(field string) bool {
	for _, f := range r.JSONSections {
		if f == field {
			return true
		}
	}
	return false
}

// Registry - реестр ресурсов по имени
type Registry struct {
	byName map[string]*Resource
	order  []string
}

// NewRegistry создает реестр из списка ресурсов, порядок сохраняется
func NewRegistry(resources ...*Resource) *Registry {
	reg := &Registry{byName: make(map[string]*Resource, len(resources))}
	for _, r := range resources {
		if _, exists := reg.byName[r.Name]; exists {
			continue
		}
		reg.byName[r.Name] = r
		reg.order = append(reg.order, r.Name)
	}
	return reg
}

// Get находит ресурс по имени
func (reg *Registry) Get(name string) (*Resource, error) {
	r, ok := reg.byName[name]
	if !ok {
		return nil, ErrUnknownResource
	}
	return r, nil
}

// All возвращает ресурсы в порядке регистрации
func (reg *Registry) All() []*Resource {
	out := make([]*Resource, 0, len(reg.order))
	for _, name := range reg.order {
		out = append(out, reg.byName[name])
	}
	return out
}

// Names возвращает отсортированные имена ресурсов
func (reg *Registry) Names() []string {
	names := append([]string(nil), reg.order...)
	sort.Strings(names)
	return names
}
