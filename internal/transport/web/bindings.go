package web

import (
	"net/url"
	"strings"

	"rb-admin-console/internal/collection"
	"rb-admin-console/internal/detail"
	"rb-admin-console/internal/domain"
	"rb-admin-console/internal/listquery"
	"rb-admin-console/internal/service/formatter"
)

// Данные для liquid-шаблонов собираются в map[string]any:
// шаблоны обращаются к полям по snake_case именам.

func listBindings(res *domain.Resource, q listquery.Query, result listquery.Result) map[string]any {
	columns := make([]map[string]any, 0, len(res.Columns))
	for _, col := range res.Columns {
		_, sortable := res.SortKeys[col.Field]
		sortable = sortable && col.Sortable
		columns = append(columns, map[string]any{
			"title":    col.Title,
			"sortable": sortable,
			"href":     q.ToggleSort(col.Field).Encode(),
			"active":   q.SortField == col.Field,
			"dir":      string(q.SortDir),
		})
	}

	rows := make([]map[string]any, 0, len(result.Rows))
	for _, rec := range result.Rows {
		id := rec.IDString(res.IDField)
		cells := make([]map[string]any, 0, len(res.Columns))
		for _, col := range res.Columns {
			cells = append(cells, map[string]any{
				"value": detail.FormatValue(rec[col.Field], false),
				"link":  detail.LinkFor(res, col.Field, rec[col.Field]),
			})
		}
		edit := q.Values()
		edit.Set("edit", id)
		rows = append(rows, map[string]any{
			"id":        id,
			"href":      detail.DetailHref(res.Name, id),
			"edit_href": edit.Encode(),
			"cells":     cells,
		})
	}

	newQuery := q.Values()
	newQuery.Set("new", "1")

	return map[string]any{
		"resource": map[string]any{"name": res.Name, "title": res.Title},
		"query": map[string]any{
			"search":  q.Search,
			"sort":    q.SortField,
			"dir":     string(q.SortDir),
			"encoded": q.Encode(),
		},
		"columns":     columns,
		"rows":        rows,
		"total":       result.Total,
		"page":        result.Page,
		"total_pages": result.TotalPages,
		"has_prev":    result.HasPrev(),
		"has_next":    result.HasNext(),
		"prev_href":   q.WithPage(result.Page - 1).Encode(),
		"next_href":   q.WithPage(result.Page + 1).Encode(),
		"can_create":  len(res.Form) > 0,
		"can_edit":    len(res.Form) > 0,
		"new_href":    newQuery.Encode(),
	}
}

func (h *Handler) editorBindings(res *domain.Resource, d *collection.Draft, q listquery.Query, errMsg string) map[string]any {
	fields := make([]map[string]any, 0, len(res.Form))
	for _, f := range res.Form {
		value := d.Get(f.Name)
		options := make([]map[string]any, 0, len(f.Options))
		for _, o := range f.Options {
			options = append(options, map[string]any{"value": o, "selected": o == value})
		}
		fields = append(fields, map[string]any{
			"name":    f.Name,
			"label":   f.Label,
			"kind":    string(f.Kind),
			"value":   value,
			"checked": value == "true",
			"options": options,
		})
	}

	action := "/models/" + res.Name
	deleteHref := ""
	if !d.IsNew() {
		action += "/" + url.PathEscape(d.ID)
		deleteHref = detail.DetailHref(res.Name, d.ID) + "/delete"
	}
	if enc := q.Encode(); enc != "" {
		action += "?" + enc
	}

	editor := map[string]any{
		"is_new":      d.IsNew(),
		"id":          d.ID,
		"action":      action,
		"fields":      fields,
		"error":       errMsg,
		"close_href":  listHref(res, q, nil),
		"delete_href": deleteHref,
		"preview":     nil,
	}
	if res.Name == domain.ResourceMessageTemplates {
		editor["preview"] = h.templatePreview(d)
	}
	return editor
}

// templatePreview показывает шаблон с подставленными именами плейсхолдеров
// и результат сверки с объявленным списком
func (h *Handler) templatePreview(d *collection.Draft) map[string]any {
	tpl := d.Get("template")
	found := formatter.ExtractPlaceholders(tpl)

	var declared []string
	for _, p := range collection.ParseStringList(d.Get("placeholders")) {
		declared = append(declared, domain.TextOf(p))
	}

	sample := make(map[string]string, len(found))
	for _, name := range found {
		sample[name] = strings.ToUpper(name)
	}
	text, err := h.templates.Preview(tpl, sample)
	if err != nil {
		text = err.Error()
	}
	return map[string]any{
		"text":       text,
		"consistent": formatter.Consistent(tpl, declared),
		"found":      strings.Join(found, ", "),
	}
}

func detailBindings(v detail.View) map[string]any {
	fields := make([]map[string]any, 0, len(v.Fields))
	for _, f := range v.Fields {
		links := make([]map[string]any, 0, len(f.Links))
		for _, l := range f.Links {
			links = append(links, map[string]any{"label": l.Label, "href": l.Href})
		}
		fields = append(fields, map[string]any{
			"name":     f.Name,
			"value":    f.Value,
			"pre":      f.Pre,
			"copyable": f.Copyable,
			"link":     f.Link,
			"links":    links,
		})
	}

	sections := make([]map[string]any, 0, len(v.JSONSections))
	for _, s := range v.JSONSections {
		sections = append(sections, map[string]any{"name": s.Name, "json": s.JSON})
	}

	relations := make([]map[string]any, 0, len(v.Relations))
	for _, r := range v.Relations {
		items := make([]map[string]any, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, map[string]any{"label": item.Label, "href": item.Href})
		}
		relations = append(relations, map[string]any{"title": r.Title, "items": items})
	}

	return map[string]any{
		"resource":  map[string]any{"name": v.Resource, "title": v.Title},
		"id":        v.ID,
		"found":     v.Found,
		"message":   detail.NotFoundMessage,
		"back_href": "/models/" + v.Resource,
		"fields":    fields,
		"sections":  sections,
		"relations": relations,
	}
}
