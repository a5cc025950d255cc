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

// UserClient клиент для взаимодействия с Auth Service.
// Используется для проверки существования одобряющего пользователя
type UserClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewUserClient создает новый клиент для Auth Service
func NewUserClient(baseURL string) *UserClient {
	return &UserClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetUser получает информацию о пользователе из Auth Service
func (c *UserClient) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	url := fmt.Sprintf("%s/users/%s", c.baseURL, userID)

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
		return nil, infrastructure.ErrUserNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from auth service: %d", resp.StatusCode)
	}

	var user entity.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &user, nil
}
