package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/collection"
	"rb-admin-console/internal/detail"
	"rb-admin-console/internal/domain"
	"rb-admin-console/internal/listquery"
	"rb-admin-console/internal/transport/middleware"
)

// Save фиксирует форму панели редактора: POST /models/:resource создает запись,
// POST /models/:resource/:id обновляет существующую
func (h *Handler) Save(c echo.Context) error {
	res, store, err := h.store(c)
	if err != nil {
		return err
	}
	if len(res.Form) == 0 {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "resource is read-only")
	}
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)
	q := listquery.QueryFromValues(c.QueryParams(), res.DefaultSort)

	store.EnsureLoaded(ctx, token, nil)

	var existing domain.Record
	if id := c.Param("id"); id != "" {
		if existing = store.Find(id); existing == nil {
			return h.render(c, http.StatusNotFound, "detail", res.Title, res.Name, detailBindings(detail.Missing(res, id)), "", "")
		}
	}

	if err := c.Request().ParseForm(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ed := collection.NewEditor(store)
	draft := ed.Open(existing)
	ed.Apply(draft, c.Request().PostForm)

	if _, err := ed.Commit(ctx, token, draft); err != nil {
		var verr *collection.ValidationError
		status := http.StatusUnprocessableEntity
		msg := "Could not save the record"
		switch {
		case errors.As(err, &verr):
			msg = verr.Error()
		case errors.Is(err, collection.ErrNotFound):
			status = http.StatusNotFound
			msg = detail.NotFoundMessage
		default:
			status = http.StatusInternalServerError
			log.Error().Err(err).Str("resource", res.Name).Msg("failed to commit draft")
		}
		return h.renderList(c, status, res, store, q, h.editorBindings(res, draft, q, msg), "")
	}

	flash := "saved"
	if existing == nil {
		flash = "created"
	}
	return c.Redirect(http.StatusSeeOther, listHref(res, q, url.Values{"flash": {flash}}))
}

// ConfirmDelete показывает запрос подтверждения удаления
func (h *Handler) ConfirmDelete(c echo.Context) error {
	res, store, err := h.store(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	store.EnsureLoaded(c.Request().Context(), middleware.TokenFrom(c), nil)
	if store.Find(id) == nil {
		return h.render(c, http.StatusNotFound, "detail", res.Title, res.Name, detailBindings(detail.Missing(res, id)), "", "")
	}

	return h.render(c, http.StatusOK, "confirm", res.Title, res.Name, map[string]any{
		"prompt":      collection.DeletePrompt(res, id),
		"action":      detail.DetailHref(res.Name, id) + "/delete",
		"cancel_href": "/models/" + res.Name,
	}, "", "")
}

// Delete удаляет запись, если форма подтверждения отправлена с confirm=yes
func (h *Handler) Delete(c echo.Context) error {
	res, store, err := h.store(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	token := middleware.TokenFrom(c)
	id := c.Param("id")
	store.EnsureLoaded(ctx, token, nil)

	confirmed := func(string) bool { return c.FormValue("confirm") == "yes" }
	err = store.Delete(ctx, token, id, confirmed)
	switch {
	case errors.Is(err, collection.ErrDeclined):
		return c.Redirect(http.StatusSeeOther, "/models/"+res.Name+"?flash=declined")
	case errors.Is(err, collection.ErrNotFound):
		return h.render(c, http.StatusNotFound, "detail", res.Title, res.Name, detailBindings(detail.Missing(res, id)), "", "")
	case err != nil:
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/models/"+res.Name+"?flash=deleted")
}
