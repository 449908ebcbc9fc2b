// Package github реализует слой доступа к данным GitHub REST API:
// аутентифицированные GET-запросы и типизированные выборки по эндпоинтам.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// defaultBaseURL — адрес GitHub REST API по умолчанию.
	defaultBaseURL = "https://api.github.com"

	// requestTimeout — фиксированный таймаут на каждый сетевой вызов.
	requestTimeout = 30 * time.Second

	// maxErrorBody — сколько байт тела ответа апстрима попадает в GatewayError.
	maxErrorBody = 200
)

// Client — клиент GitHub API. Токен передаётся явно при создании,
// глобального состояния нет.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New создаёт клиент GitHub API с bearer-токеном.
// Пустой baseURL означает публичный https://api.github.com.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// get выполняет GET-запрос по относительному пути и декодирует JSON-ответ в out.
// Статус вне списка ok (по умолчанию 200) превращается в *GatewayError
// с усечённым телом ответа.
func (c *Client) get(ctx context.Context, path string, out any, ok ...int) error {
	if len(ok) == 0 {
		ok = []int{http.StatusOK}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("github request %s: %w", path, err)
	}
	defer resp.Body.Close()

	accepted := false
	for _, status := range ok {
		if resp.StatusCode == status {
			accepted = true
			break
		}
	}
	if !accepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &GatewayError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response %s: %w", path, err)
	}
	return nil
}
