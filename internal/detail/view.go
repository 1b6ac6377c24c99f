// Package detail строит страницу одной записи: таблицу полей,
// блоки JSON и ссылки на связанные ресурсы.
package detail

import (
	"bytes"
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"rb-admin-console/internal/domain"
)

// Placeholder выводится вместо пустого значения
const Placeholder = "—"

// NotFoundMessage - текст страницы, когда запись не найдена
const NotFoundMessage = "Record not found"

var identityFields = map[string]bool{"id": true, "_id": true, "uuid": true}

// Link - ссылка на связанную запись или поиск
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Field - строка таблицы деталей
type Field struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Pre      bool   `json:"pre,omitempty"`
	Copyable bool   `json:"copyable,omitempty"`
	Link     string `json:"link,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Section - поле, выведенное отдельным блоком с форматированным JSON
type Section struct {
	Name string `json:"name"`
	JSON string `json:"json"`
}

// Relation - список связанных записей (теги и шлюзы платежа)
type Relation struct {
	Title    string `json:"title"`
	Resource string `json:"resource"`
	Items    []Link `json:"items"`
}

// View - готовая к выводу запись
type View struct {
	Resource     string     `json:"resource"`
	Title        string     `json:"title"`
	ID           string     `json:"id"`
	Found        bool       `json:"found"`
	Fields       []Field    `json:"fields"`
	JSONSections []Section  `json:"json_sections,omitempty"`
	Relations    []Relation `json:"relations,omitempty"`
}

// Lookup возвращает первую в порядке списка запись, у которой id, _id или uuid равен id
func Lookup(items []domain.Record, id string) domain.Record {
	for _, r := range items {
		for _, key := range []string{"id", "_id", "uuid"} {
			if v, ok := r[key]; ok && v != nil && r.Text(key) == id {
				return r
			}
		}
	}
	return nil
}

// FormatValue приводит значение поля к строке.
// pretty включает отступы для массивов, объекты всегда с отступом в 2 пробела.
func FormatValue(v any, pretty bool) string {
	switch t := v.(type) {
	case nil:
		return Placeholder
	case string:
		if t == "" {
			return Placeholder
		}
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case []any:
		if pretty {
			return marshal(t, "  ")
		}
		return marshal(t, "")
	case map[string]any:
		return marshal(t, "  ")
	default:
		if f, ok := domain.AsFloat(t); ok {
			return domain.FormatNumber(f)
		}
		return marshal(t, "")
	}
}

func marshal(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return Placeholder
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Missing возвращает вид страницы для ненайденной записи
func Missing(res *domain.Resource, id string) View {
	return View{Resource: res.Name, Title: res.Title, ID: id}
}

// Build раскладывает запись по полям согласно описанию ресурса
func Build(res *domain.Resource, rec domain.Record) View {
	if rec == nil {
		return View{Resource: res.Name, Title: res.Title}
	}
	v := View{
		Resource: res.Name,
		Title:    res.Title,
		ID:       rec.IDString(res.IDField),
		Found:    true,
	}

	for _, name := range fieldOrder(res, rec) {
		value := rec[name]
		if res.IsJSONSection(name) {
			v.JSONSections = append(v.JSONSections, Section{Name: name, JSON: FormatValue(value, true)})
			continue
		}
		if res.IsHidden(name) {
			continue
		}
		v.Fields = append(v.Fields, buildField(res, name, value))
	}

	if res.Name == domain.ResourcePayments {
		v.Relations = paymentRelations(rec)
	}
	return v
}

func buildField(res *domain.Resource, name string, value any) Field {
	f := Field{
		Name:     name,
		Value:    FormatValue(value, false),
		Copyable: identityFields[name] || name == res.IDField,
	}
	if _, isMap := value.(map[string]any); isMap {
		f.Pre = true
	}

	if target, ok := res.ForeignKeys[name]; ok {
		switch t := value.(type) {
		case []any:
			for _, item := range t {
				id := domain.TextOf(item)
				if id == "" {
					continue
				}
				f.Links = append(f.Links, Link{Label: id, Href: SearchHref(target, id)})
			}
			f.Copyable = len(f.Links) > 0
		default:
			if id := domain.TextOf(t); id != "" {
				f.Link = DetailHref(target, id)
				f.Copyable = true
			}
		}
	}
	if target, ok := res.SearchLinks[name]; ok {
		if term := domain.TextOf(value); term != "" {
			f.Link = SearchHref(target, term)
		}
	}
	return f
}

// LinkFor - ссылка для значения связанного поля в ячейке списка; списки значений не связываются
func LinkFor(res *domain.Resource, field string, value any) string {
	if _, isList := value.([]any); isList {
		return ""
	}
	term := domain.TextOf(value)
	if term == "" {
		return ""
	}
	if target, ok := res.ForeignKeys[field]; ok {
		return DetailHref(target, term)
	}
	if target, ok := res.SearchLinks[field]; ok {
		return SearchHref(target, term)
	}
	return ""
}

// fieldOrder - сначала колонки списка, затем остальные поля по алфавиту
func fieldOrder(res *domain.Resource, rec domain.Record) []string {
	seen := make(map[string]bool, len(rec))
	order := make([]string, 0, len(rec))
	add := func(name string) {
		if _, ok := rec[name]; !ok || seen[name] {
			return
		}
		seen[name] = true
		order = append(order, name)
	}

	add(res.IDField)
	for _, c := range res.Columns {
		add(c.Field)
	}
	rest := make([]string, 0, len(rec))
	for name := range rec {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		add(name)
	}
	return order
}

func paymentRelations(rec domain.Record) []Relation {
	return []Relation{
		relation("Tags", domain.ResourceTags, rec[domain.FieldTagsDetail], rec[domain.FieldTagIDs]),
		relation("Gateways", domain.ResourceGateways, rec[domain.FieldGatewaysDetail], rec[domain.FieldGatewayIDs]),
	}
}

// relation берет названия из *_detail, а если их нет - голые идентификаторы
func relation(title, resource string, details, ids any) Relation {
	rel := Relation{Title: title, Resource: resource}
	if list, ok := details.([]any); ok && len(list) > 0 {
		for _, item := range list {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			id := domain.Record(obj).Text("id")
			if id == "" {
				id = domain.Record(obj).Text("_id")
			}
			label := domain.Record(obj).Text("name")
			if label == "" {
				label = id
			}
			rel.Items = append(rel.Items, Link{Label: label, Href: DetailHref(resource, id)})
		}
		return rel
	}
	if list, ok := ids.([]any); ok {
		for _, item := range list {
			if id := domain.TextOf(item); id != "" {
				rel.Items = append(rel.Items, Link{Label: id, Href: DetailHref(resource, id)})
			}
		}
	}
	return rel
}

// DetailHref - путь страницы записи
func DetailHref(resource, id string) string {
	return "/models/" + resource + "/" + url.PathEscape(id)
}

// SearchHref - путь списка ресурса с переданной строкой поиска
func SearchHref(resource, term string) string {
	return "/models/" + resource + "?" + url.Values{"search": {term}}.Encode()
}
