// Package templates рисует страницы консоли из liquid-шаблонов.
// Каждая страница отдается как templ.Component.
package templates

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/a-h/templ"
	"github.com/osteele/liquid"
)

//go:embed html/*.liquid
var files embed.FS

const layoutName = "layout"

// NavItem - пункт бокового меню
type NavItem struct {
	Title  string
	Href   string
	Active bool
}

// PageData - общие данные страницы и тело конкретного шаблона
type PageData struct {
	Title string
	Theme Theme
	User  string
	Nav   []NavItem
	Flash string
	Error string
	Body  map[string]any
}

// Renderer хранит разобранные шаблоны
type Renderer struct {
	engine *liquid.Engine
	layout *liquid.Template
	pages  map[string]*liquid.Template
}

// New разбирает все встроенные шаблоны
func New() (*Renderer, error) {
	engine := liquid.NewEngine()
	engine.RegisterFilter("h", templ.EscapeString)

	r := &Renderer{engine: engine, pages: make(map[string]*liquid.Template)}

	entries, err := fs.ReadDir(files, "html")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}
	for _, entry := range entries {
		src, err := files.ReadFile(path.Join("html", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		tpl, perr := engine.ParseTemplate(src)
		if perr != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), perr)
		}
		name := strings.TrimSuffix(entry.Name(), ".liquid")
		if name == layoutName {
			r.layout = tpl
			continue
		}
		r.pages[name] = tpl
	}
	if r.layout == nil {
		return nil, fmt.Errorf("layout template is missing")
	}
	return r, nil
}

// Has сообщает, есть ли шаблон страницы с таким именем
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Page возвращает компонент страницы name, обернутой в общий макет
func (r *Renderer) Page(name string, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tpl, ok := r.pages[name]
		if !ok {
			return fmt.Errorf("unknown page template %q", name)
		}

		body := data.Body
		if body == nil {
			body = map[string]any{}
		}
		var err error
		content, err := tpl.RenderString(body)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}

		nav := make([]map[string]any, 0, len(data.Nav))
		for _, item := range data.Nav {
			nav = append(nav, map[string]any{"title": item.Title, "href": item.Href, "active": item.Active})
		}

		page, err := r.layout.RenderString(map[string]any{
			"title":   data.Title,
			"theme":   data.Theme.Bindings(),
			"user":    data.User,
			"nav":     nav,
			"flash":   data.Flash,
			"error":   data.Error,
			"content": content,
		})
		if err != nil {
			return fmt.Errorf("failed to render layout: %w", err)
		}
		_, err = io.WriteString(w, page)
		return err
	})
}
