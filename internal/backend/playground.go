package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

var (
	ErrTicketIDRequired = errors.New("ticket_id is required")
	ErrFileOrLink       = errors.New("exactly one of file or link is required")
	ErrTextRequired     = errors.New("text is required")
)

// ExtractRequest - вход экстрактора: ticket_id и либо файл, либо ссылка
type ExtractRequest struct {
	TicketID string
	FileName string
	File     io.Reader
	Link     string
}

// Validate проверяет обязательные поля до отправки
func (r ExtractRequest) Validate() error {
	if strings.TrimSpace(r.TicketID) == "" {
		return ErrTicketIDRequired
	}
	hasFile := r.File != nil
	hasLink := strings.TrimSpace(r.Link) != ""
	if hasFile == hasLink {
		return ErrFileOrLink
	}
	return nil
}

// Extract отправляет multipart-форму в экстрактор и возвращает сырой JSON ответа
func (c *Client) Extract(ctx context.Context, token string, in ExtractRequest) (json.RawMessage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("ticket_id", strings.TrimSpace(in.TicketID)); err != nil {
		return nil, fmt.Errorf("failed to write form: %w", err)
	}
	if in.File != nil {
		name := in.FileName
		if name == "" {
			name = "upload"
		}
		part, err := form.CreateFormFile("file", name)
		if err != nil {
			return nil, fmt.Errorf("failed to write form: %w", err)
		}
		if _, err := io.Copy(part, in.File); err != nil {
			return nil, fmt.Errorf("failed to write form: %w", err)
		}
	} else {
		if err := form.WriteField("link", strings.TrimSpace(in.Link)); err != nil {
			return nil, fmt.Errorf("failed to write form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to write form: %w", err)
	}

	body, err := c.do(ctx, "playground", http.MethodPost, "/playground/extract", token, &buf, form.FormDataContentType())
	if err != nil {
		return nil, err
	}
	return rawJSON(body)
}

// Classify отправляет текст в классификатор
func (c *Client) Classify(ctx context.Context, token, text string) (json.RawMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	body, err := c.do(ctx, "playground", http.MethodPost, "/playground/classify", token, bytes.NewReader(payload), "")
	if err != nil {
		return nil, err
	}
	return rawJSON(body)
}

func rawJSON(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("failed to decode response: invalid JSON")
	}
	return json.RawMessage(body), nil
}
