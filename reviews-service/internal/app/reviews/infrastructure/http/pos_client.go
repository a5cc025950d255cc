package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"campuscoffee/reviews-service/internal/app/reviews/entity"
	"campuscoffee/reviews-service/internal/app/reviews/infrastructure"
)

// PosClient клиент для взаимодействия с POS Service.
// Отзыв может ссылаться только на существующую точку продаж
type PosClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPosClient создает новый клиент для POS Service
func NewPosClient(baseURL string) *PosClient {
	return &PosClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetPos получает информацию о точке продаж из POS Service
func (c *PosClient) GetPos(ctx context.Context, posID string) (*entity.Pos, error) {
	url := fmt.Sprintf("%s/pos/%s", c.baseURL, posID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, infrastructure.ErrPosNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from pos service: %d", resp.StatusCode)
	}

	var pos entity.Pos
	if err := json.NewDecoder(resp.Body).Decode(&pos); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &pos, nil
}
