package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/backend"
	"rb-admin-console/internal/transport/middleware"
)

func (h *Handler) PlaygroundPage(c echo.Context) error {
	return h.renderPlayground(c, http.StatusOK, map[string]any{}, "")
}

// Extract отправляет файл или ссылку в экстрактор
func (h *Handler) Extract(c echo.Context) error {
	in := backend.ExtractRequest{
		TicketID: c.FormValue("ticket_id"),
		Link:     c.FormValue("link"),
	}
	form := map[string]any{"ticket_id": in.TicketID, "link": in.Link}

	if fh, err := c.FormFile("file"); err == nil && fh.Size > 0 {
		f, err := fh.Open()
		if err != nil {
			return h.renderPlayground(c, http.StatusBadRequest, form, "Could not read the uploaded file")
		}
		defer f.Close()
		in.File = f
		in.FileName = fh.Filename
	}

	if err := in.Validate(); err != nil {
		return h.renderPlayground(c, http.StatusUnprocessableEntity, form, err.Error())
	}

	raw, err := h.client.Extract(c.Request().Context(), middleware.TokenFrom(c), in)
	if err != nil {
		return h.renderPlayground(c, playgroundStatus(err), form, playgroundError(err))
	}
	form["result"] = prettyJSON(raw)
	return h.renderPlayground(c, http.StatusOK, form, "")
}

// Classify отправляет текст в классификатор
func (h *Handler) Classify(c echo.Context) error {
	text := c.FormValue("text")
	form := map[string]any{"text": text}

	raw, err := h.client.Classify(c.Request().Context(), middleware.TokenFrom(c), text)
	if err != nil {
		return h.renderPlayground(c, playgroundStatus(err), form, playgroundError(err))
	}
	form["result"] = prettyJSON(raw)
	return h.renderPlayground(c, http.StatusOK, form, "")
}

func (h *Handler) renderPlayground(c echo.Context, status int, form map[string]any, errMsg string) error {
	for _, key := range []string{"ticket_id", "link", "text", "result"} {
		if _, ok := form[key]; !ok {
			form[key] = ""
		}
	}
	return h.render(c, status, "playground", "Playground", "", form, errMsg, "")
}

func playgroundStatus(err error) int {
	switch {
	case errors.Is(err, backend.ErrTextRequired), errors.Is(err, backend.ErrTicketIDRequired), errors.Is(err, backend.ErrFileOrLink):
		return http.StatusUnprocessableEntity
	case errors.Is(err, backend.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func playgroundError(err error) string {
	switch {
	case errors.Is(err, backend.ErrNotConfigured):
		return "Backend is not configured, the playground is unavailable"
	case errors.Is(err, backend.ErrUnauthenticated):
		return "Session is not accepted by the backend, sign in again"
	case playgroundStatus(err) == http.StatusUnprocessableEntity:
		return err.Error()
	default:
		log.Warn().Err(err).Msg("playground request failed")
		return "Backend request failed"
	}
}

func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
