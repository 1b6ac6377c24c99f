package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Stats загружает агрегат статистики как JSON-объект.
// 401 дает (nil, nil), как и для списков.
func (c *Client) Stats(ctx context.Context, token, path string, params url.Values) (map[string]any, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	body, err := c.do(ctx, "stats", http.MethodGet, path, token, nil, "")
	if errors.Is(err, ErrUnauthenticated) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if inner, ok := out["data"].(map[string]any); ok {
		return inner, nil
	}
	return out, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

// Login передает учетные данные бэкенду и возвращает выданный токен
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	payload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}
	body, err := c.do(ctx, "auth", http.MethodPost, "/auth/login", "", bytes.NewReader(payload), "")
	if err != nil {
		return "", err
	}
	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Token != "" {
		return resp.Token, nil
	}
	if resp.AccessToken != "" {
		return resp.AccessToken, nil
	}
	return "", fmt.Errorf("login response has no token")
}
