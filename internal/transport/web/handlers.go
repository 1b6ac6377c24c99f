package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/backend"
	"rb-admin-console/internal/collection"
	"rb-admin-console/internal/detail"
	"rb-admin-console/internal/domain"
	"rb-admin-console/internal/listquery"
	repoInterface "rb-admin-console/internal/repository/interface"
	"rb-admin-console/internal/service/formatter"
	"rb-admin-console/internal/service/session"
	"rb-admin-console/internal/transport/middleware"
	"rb-admin-console/internal/web/templates"
)

const themeCookie = "theme"

// Тексты уведомлений после редиректа (?flash=...)
var flashes = map[string]string{
	"created":  "Record created",
	"saved":    "Changes saved",
	"deleted":  "Record deleted",
	"declined": "Delete cancelled",
}

// Handler - обработчик веб-интерфейса
type Handler struct {
	workspace *collection.Workspace
	client    *backend.Client
	journal   repoInterface.JournalRepository
	renderer  *templates.Renderer
	templates *formatter.MessageTemplateFormatter
	sessions  *session.Service
	auth      *middleware.AuthMiddleware
	theme     templates.Theme
}

// NewHandler создает новый обработчик
func NewHandler(
	workspace *collection.Workspace,
	client *backend.Client,
	journal repoInterface.JournalRepository,
	renderer *templates.Renderer,
	sessions *session.Service,
	auth *middleware.AuthMiddleware,
	theme templates.Theme,
) *Handler {
	return &Handler{
		workspace: workspace,
		client:    client,
		journal:   journal,
		renderer:  renderer,
		templates: formatter.NewMessageTemplateFormatter(),
		sessions:  sessions,
		auth:      auth,
		theme:     theme,
	}
}

// ListPage отображает список ресурса и, если запрошено, панель редактора
func (h *Handler) ListPage(c echo.Context) error {
	res, store, err := h.store(c)
	if err != nil {
		return err
	}
	q := listquery.QueryFromValues(c.QueryParams(), res.DefaultSort)

	var editor map[string]any
	ed := collection.NewEditor(store)
	switch {
	case c.QueryParam("new") == "1" && len(res.Form) > 0:
		store.EnsureLoaded(c.Request().Context(), middleware.TokenFrom(c), nil)
		editor = h.editorBindings(res, ed.Open(nil), q, "")
	case c.QueryParam("edit") != "" && len(res.Form) > 0:
		store.EnsureLoaded(c.Request().Context(), middleware.TokenFrom(c), nil)
		if rec := store.Find(c.QueryParam("edit")); rec != nil {
			editor = h.editorBindings(res, ed.Open(rec), q, "")
		}
	}

	return h.renderList(c, http.StatusOK, res, store, q, editor, flashes[c.QueryParam("flash")])
}

// Refresh перезагружает коллекцию и возвращает на список
func (h *Handler) Refresh(c echo.Context) error {
	res, store, err := h.store(c)
	if err != nil {
		return err
	}
	q := listquery.QueryFromValues(c.QueryParams(), res.DefaultSort)
	if err := store.Reload(c.Request().Context(), middleware.TokenFrom(c), q); err != nil && !errors.Is(err, collection.ErrStale) {
		log.Warn().Err(err).Str("resource", res.Name).Msg("manual refresh failed")
	}
	return c.Redirect(http.StatusSeeOther, listHref(res, q, nil))
}

// DetailPage отображает одну запись
func (h *Handler) DetailPage(c echo.Context) error {
	res, store, err := h.store(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	rec := store.Fetch(c.Request().Context(), middleware.TokenFrom(c), id)

	view := detail.Missing(res, id)
	status := http.StatusNotFound
	if rec != nil {
		view = detail.Build(res, rec)
		status = http.StatusOK
	}
	return h.render(c, status, "detail", res.Title, res.Name, detailBindings(view), "", "")
}

func (h *Handler) renderList(c echo.Context, status int, res *domain.Resource, store *collection.Store, q listquery.Query, editor map[string]any, flash string) error {
	result := store.Query(c.Request().Context(), middleware.TokenFrom(c), q)

	errMsg := ""
	if lastErr := store.Snapshot().LastErr; lastErr != nil {
		errMsg = "Could not refresh " + res.Title + ", showing the last loaded data"
	}

	body := listBindings(res, q, result)
	if editor != nil {
		body["editor"] = editor
	}
	return h.render(c, status, "list", res.Title, res.Name, body, errMsg, flash)
}

// store находит ресурс по :resource и хранилище сессии
func (h *Handler) store(c echo.Context) (*domain.Resource, *collection.Store, error) {
	name := c.Param("resource")
	store, err := h.workspace.Store(middleware.TokenFrom(c), name)
	if errors.Is(err, domain.ErrUnknownResource) {
		return nil, nil, echo.NewHTTPError(http.StatusNotFound, "unknown resource")
	}
	if err != nil {
		return nil, nil, err
	}
	return store.Resource(), store, nil
}

func (h *Handler) render(c echo.Context, status int, page, title, active string, body map[string]any, errMsg, flash string) error {
	data := templates.PageData{
		Title: title,
		Theme: h.themeFor(c),
		User:  middleware.UserFrom(c),
		Nav:   h.nav(active),
		Flash: flash,
		Error: errMsg,
		Body:  body,
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return h.renderer.Page(page, data).Render(c.Request().Context(), c.Response().Writer)
}

// themeFor - тема из cookie запроса, иначе тема из конфигурации
func (h *Handler) themeFor(c echo.Context) templates.Theme {
	if cookie, err := c.Cookie(themeCookie); err == nil && cookie.Value != "" {
		return templates.ResolveTheme(cookie.Value)
	}
	return h.theme
}

// SetTheme запоминает выбранную тему и возвращает на предыдущую страницу
func (h *Handler) SetTheme(c echo.Context) error {
	theme := templates.ResolveTheme(c.FormValue("theme"))
	c.SetCookie(&http.Cookie{Name: themeCookie, Value: theme.Name, Path: "/", SameSite: http.SameSiteLaxMode})

	back := "/"
	if ref, err := url.Parse(c.Request().Referer()); err == nil && ref.Path != "" {
		back = ref.RequestURI()
	}
	return c.Redirect(http.StatusSeeOther, back)
}

func (h *Handler) nav(active string) []templates.NavItem {
	resources := h.workspace.Registry().All()
	items := make([]templates.NavItem, 0, len(resources))
	for _, r := range resources {
		items = append(items, templates.NavItem{
			Title:  r.Title,
			Href:   "/models/" + r.Name,
			Active: r.Name == active,
		})
	}
	return items
}

// listHref - адрес списка с состоянием запроса и дополнительными параметрами
func listHref(res *domain.Resource, q listquery.Query, extra url.Values) string {
	v := q.Values()
	for k, vals := range extra {
		v[k] = vals
	}
	href := "/models/" + res.Name
	if enc := v.Encode(); enc != "" {
		href += "?" + enc
	}
	return href
}
