// Package backend - HTTP клиент внешнего API платформы (https://<host>/api/v1/...).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"rb-admin-console/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
	metrics *Metrics
}

// NewClient создает клиент. timeout 0 - без таймаута.
func NewClient(baseURL string, timeout time.Duration, metrics *Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
	}
}

// Configured сообщает, что адрес бэкенда задан
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != ""
}

// Collection - нормализованный ответ списка
type Collection struct {
	Items []domain.Record
	Total int
}

// Load загружает список ресурса.
// 401 дает пустую коллекцию без ошибки. Любой другой код вне 2xx - *StatusError.
// Сетевые ошибки и ошибки разбора возвращаются вместе с пустой коллекцией,
// вызывающая сторона их логирует и не пробрасывает в UI.
func (c *Client) Load(ctx context.Context, res *domain.Resource, token string, params url.Values) (Collection, error) {
	empty := Collection{Items: []domain.Record{}}
	if !c.Configured() {
		return empty, ErrNotConfigured
	}

	path := res.Endpoint
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	body, err := c.do(ctx, res.Name, http.MethodGet, path, token, nil, "")
	if errors.Is(err, ErrUnauthenticated) {
		log.Debug().Str("resource", res.Name).Msg("backend answered 401, showing empty state")
		return empty, nil
	}
	if err != nil {
		return empty, err
	}

	items, total, err := Normalize(body)
	if err != nil {
		return empty, fmt.Errorf("failed to normalize %s: %w", res.Name, err)
	}
	return Collection{Items: CanonicalizeAll(items, res.Aliases), Total: total}, nil
}

// Get загружает одну запись. 401 и 404 дают (nil, nil) - запись не найдена.
func (c *Client) Get(ctx context.Context, res *domain.Resource, token, id string) (domain.Record, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	body, err := c.do(ctx, res.Name, http.MethodGet, res.Endpoint+"/"+url.PathEscape(id), token, nil, "")
	if errors.Is(err, ErrUnauthenticated) || IsStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	raw, err := unwrapRecord(body)
	if err != nil {
		return nil, err
	}
	return Canonicalize(raw, res.Aliases), nil
}

// Create отправляет новую запись и возвращает ответ бэкенда (с присвоенным id)
func (c *Client) Create(ctx context.Context, res *domain.Resource, token string, rec domain.Record) (domain.Record, error) {
	return c.send(ctx, res, http.MethodPost, res.Endpoint, token, rec)
}

// Update отправляет измененную запись
func (c *Client) Update(ctx context.Context, res *domain.Resource, token, id string, rec domain.Record) (domain.Record, error) {
	return c.send(ctx, res, http.MethodPut, res.Endpoint+"/"+url.PathEscape(id), token, rec)
}

// Delete удаляет запись на бэкенде
func (c *Client) Delete(ctx context.Context, res *domain.Resource, token, id string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	_, err := c.do(ctx, res.Name, http.MethodDelete, res.Endpoint+"/"+url.PathEscape(id), token, nil, "")
	return err
}

func (c *Client) send(ctx context.Context, res *domain.Resource, method, path, token string, rec domain.Record) (domain.Record, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	body, err := c.do(ctx, res.Name, method, path, token, bytes.NewReader(payload), "")
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	raw, err := unwrapRecord(body)
	if err != nil {
		return nil, err
	}
	return Canonicalize(raw, res.Aliases), nil
}

// do выполняет запрос и возвращает тело ответа.
// Content-Type по умолчанию application/json, Authorization добавляется только при наличии токена.
func (c *Client) do(ctx context.Context, resource, method, path, token string, body io.Reader, contentType string) ([]byte, error) {
	start := time.Now()
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(resource, method, outcomeNetworkError, time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(resource, method, outcomeNetworkError, time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.metrics.observe(resource, method, outcomeUnauthenticated, time.Since(start).Seconds())
		return nil, ErrUnauthenticated
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.metrics.observe(resource, method, outcomeHTTPError, time.Since(start).Seconds())
		return nil, &StatusError{Code: resp.StatusCode, Method: method, Endpoint: path}
	}

	c.metrics.observe(resource, method, outcomeOK, time.Since(start).Seconds())
	return data, nil
}
