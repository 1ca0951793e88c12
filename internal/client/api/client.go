// Package api реализует HTTP клиент для сервера журнала сделок.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tradeify/tradeify/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken устанавливает токен сессии для авторизованных запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListTrades возвращает сделки пользователя.
// start и end опциональны, пустая строка означает отсутствие границы.
func (c *Client) ListTrades(ctx context.Context, start, end string) ([]api.TradeResponse, error) {
	var resp []api.TradeResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/trades"+rangeQuery(start, end), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list trades request failed: %w", err)
	}
	return resp, nil
}

// CreateTrade создает новую сделку
func (c *Client) CreateTrade(ctx context.Context, req api.TradeRequest) (*api.TradeResponse, error) {
	var resp api.TradeResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/trades", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create trade request failed: %w", err)
	}
	return &resp, nil
}

// UpdateTrade обновляет существующую сделку
func (c *Client) UpdateTrade(ctx context.Context, id string, req api.TradeRequest) (*api.TradeResponse, error) {
	var resp api.TradeResponse
	err := c.doRequest(ctx, http.MethodPut, "/api/v1/trades/"+url.PathEscape(id), req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update trade request failed: %w", err)
	}
	return &resp, nil
}

// DeleteTrade удаляет сделку
func (c *Client) DeleteTrade(ctx context.Context, id string) error {
	err := c.doRequest(ctx, http.MethodDelete, "/api/v1/trades/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return fmt.Errorf("delete trade request failed: %w", err)
	}
	return nil
}

// ImportTrades отправляет CSV файл на bulk-импорт
func (c *Client) ImportTrades(ctx context.Context, csv io.Reader) (*api.ImportResponse, error) {
	var resp api.ImportResponse
	err := c.doRawRequest(ctx, http.MethodPost, "/api/v1/trades/import", csv, "text/csv", &resp)
	if err != nil {
		return nil, fmt.Errorf("import request failed: %w", err)
	}
	return &resp, nil
}

// Stats возвращает сводную статистику по сделкам
func (c *Client) Stats(ctx context.Context, start, end string) (*api.StatsResponse, error) {
	var resp api.StatsResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/trades/stats"+rangeQuery(start, end), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("stats request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// rangeQuery собирает query string для опционального диапазона дат
func rangeQuery(start, end string) string {
	q := url.Values{}
	if start != "" {
		q.Set("start", start)
	}
	if end != "" {
		q.Set("end", end)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// doRequest выполняет HTTP запрос с JSON телом
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	contentType := ""
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	return c.doRawRequest(ctx, method, path, bodyReader, contentType, result)
}

// doRawRequest выполняет HTTP запрос с произвольным телом
func (c *Client) doRawRequest(ctx context.Context, method, path string, body io.Reader, contentType string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
