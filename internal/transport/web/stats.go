package web

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rb-admin-console/internal/backend"
	"rb-admin-console/internal/detail"
	"rb-admin-console/internal/transport/middleware"
)

// statSource - один запрос статистики и заголовок его блока
type statSource struct {
	Title string
	Path  string
}

var (
	openAIStats = []statSource{
		{Title: "Total usage", Path: "/stats/openai/total"},
		{Title: "Cache savings", Path: "/stats/openai/cache-savings"},
	}
	helpdeskTagStats    = []statSource{{Title: "Tags", Path: "/stats/helpdesk-tags"}}
	supportMessageStats = []statSource{{Title: "Messages", Path: "/stats/support-messages"}}
)

// statBlock - результат одного запроса; ошибка одного блока не влияет на другие
type statBlock struct {
	Title string
	Data  map[string]any
	Err   error
}

func (h *Handler) OpenAIStats(c echo.Context) error {
	return h.statsPage(c, "OpenAI usage", openAIStats)
}

func (h *Handler) HelpdeskTagStats(c echo.Context) error {
	return h.statsPage(c, "Helpdesk tags", helpdeskTagStats)
}

func (h *Handler) SupportMessageStats(c echo.Context) error {
	return h.statsPage(c, "Support messages", supportMessageStats)
}

func (h *Handler) statsPage(c echo.Context, heading string, sources []statSource) error {
	blocks := h.fetchStats(c.Request().Context(), middleware.TokenFrom(c), sources, c.QueryParams())

	errMsg := ""
	rendered := make([]map[string]any, 0, len(blocks))
	for _, b := range blocks {
		if b.Err != nil {
			errMsg = statsError(b.Err)
		}
		rendered = append(rendered, map[string]any{"title": b.Title, "rows": statRows(b.Data)})
	}

	return h.render(c, http.StatusOK, "stats", heading, "", map[string]any{
		"heading": heading,
		"blocks":  rendered,
	}, errMsg, "")
}

// fetchStats запускает запросы одновременно и дожидается всех.
// Каждая горутина пишет только в свой элемент blocks.
func (h *Handler) fetchStats(ctx context.Context, token string, sources []statSource, params map[string][]string) []statBlock {
	blocks := make([]statBlock, len(sources))
	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			data, err := h.client.Stats(ctx, token, src.Path, params)
			if err != nil && !errors.Is(err, backend.ErrNotConfigured) {
				log.Warn().Err(err).Str("endpoint", src.Path).Msg("failed to load stats")
			}
			blocks[i] = statBlock{Title: src.Title, Data: data, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return blocks
}

// statRows раскладывает объект статистики на строки ключ-значение, отсортированные по ключу
func statRows(data map[string]any) []map[string]any {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		v := data[k]
		_, isMap := v.(map[string]any)
		_, isList := v.([]any)
		rows = append(rows, map[string]any{
			"key":   k,
			"value": detail.FormatValue(v, true),
			"pre":   isMap || isList,
		})
	}
	return rows
}

func statsError(err error) string {
	if errors.Is(err, backend.ErrNotConfigured) {
		return "Backend is not configured, statistics are unavailable"
	}
	return "Some statistics could not be loaded"
}
