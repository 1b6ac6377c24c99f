package web

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/detail"
	"rb-admin-console/internal/domain"
)

// Dashboard отображает главную страницу со списком ресурсов
func (h *Handler) Dashboard(c echo.Context) error {
	online := h.client.Configured()

	resources := make([]map[string]any, 0)
	for _, r := range h.workspace.Registry().All() {
		source := "seed data"
		if r.Remote() && online {
			source = "backend " + r.Endpoint
		}
		resources = append(resources, map[string]any{
			"title":      r.Title,
			"href":       "/models/" + r.Name,
			"source":     source,
			"pagination": string(r.Pagination),
			"page_size":  r.PageSize,
		})
	}

	return h.render(c, http.StatusOK, "dashboard", "Dashboard", "", map[string]any{
		"resources": resources,
	}, "", "")
}

// JournalPage отображает мутации, которые не удалось или нечем было отправить на бэкенд
func (h *Handler) JournalPage(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	if h.journal == nil {
		return h.render(c, http.StatusOK, "journal", "Journal", "", map[string]any{
			"entries": []map[string]any{},
			"stats":   []map[string]any{},
		}, "Journal database is not configured", "")
	}

	errMsg := ""
	entries, err := h.journal.List(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to load journal")
		errMsg = "Failed to load journal"
	}
	stats, err := h.journal.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load journal stats")
		errMsg = "Failed to load journal"
	}

	rows := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		href := ""
		if e.Action != domain.ActionDelete && e.RecordID != "" {
			href = detail.DetailHref(e.Resource, e.RecordID)
		}
		rows = append(rows, map[string]any{
			"created_at": e.CreatedAt.Format(domain.TimestampLayout),
			"resource":   e.Resource,
			"action":     e.Action,
			"record_id":  e.RecordID,
			"reason":     e.Reason,
			"payload":    string(e.Payload),
			"href":       href,
		})
	}

	groups := make([]map[string]any, 0, len(stats))
	for _, s := range stats {
		groups = append(groups, map[string]any{"resource": s.Resource, "action": s.Action, "entries": s.Entries})
	}

	return h.render(c, http.StatusOK, "journal", "Journal", "", map[string]any{
		"entries": rows,
		"stats":   groups,
	}, errMsg, "")
}
