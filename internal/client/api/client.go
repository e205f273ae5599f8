// Package api реализует HTTP клиент для TeamSync сервера.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iudanet/teamsync/pkg/api"
)

// Типизированные ошибки клиента. Позволяют вызывающему коду ветвиться
// по статусу ответа через errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken устанавливает access token для последующих запросов
func (c *Client) SetToken(token string) {
	c.accessToken = token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh ротирует пару токенов по refresh token
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/refresh", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh token на сервере
func (c *Client) Logout(ctx context.Context, req api.LogoutRequest) error {
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/logout", req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// CreateWorkspace создает новый workspace
func (c *Client) CreateWorkspace(ctx context.Context, req api.CreateWorkspaceRequest) (*api.Workspace, error) {
	var resp api.Workspace
	err := c.doRequest(ctx, "POST", "/api/v1/workspaces", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create workspace request failed: %w", err)
	}
	return &resp, nil
}

// ListWorkspaces возвращает workspace пользователя
func (c *Client) ListWorkspaces(ctx context.Context) ([]api.Workspace, error) {
	var resp []api.Workspace
	err := c.doRequest(ctx, "GET", "/api/v1/workspaces", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list workspaces request failed: %w", err)
	}
	return resp, nil
}

// AddMember добавляет участника в workspace по username
func (c *Client) AddMember(ctx context.Context, workspaceID string, req api.AddMemberRequest) (*api.Member, error) {
	var resp api.Member
	path := fmt.Sprintf("/api/v1/workspaces/%s/members", url.PathEscape(workspaceID))
	err := c.doRequest(ctx, "POST", path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("add member request failed: %w", err)
	}
	return &resp, nil
}

// ListMembers возвращает участников workspace
func (c *Client) ListMembers(ctx context.Context, workspaceID string) ([]api.Member, error) {
	var resp []api.Member
	path := fmt.Sprintf("/api/v1/workspaces/%s/members", url.PathEscape(workspaceID))
	err := c.doRequest(ctx, "GET", path, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list members request failed: %w", err)
	}
	return resp, nil
}

// CreateRoom создает комнату в workspace
func (c *Client) CreateRoom(ctx context.Context, workspaceID string, req api.CreateRoomRequest) (*api.Room, error) {
	var resp api.Room
	path := fmt.Sprintf("/api/v1/workspaces/%s/rooms", url.PathEscape(workspaceID))
	err := c.doRequest(ctx, "POST", path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create room request failed: %w", err)
	}
	return &resp, nil
}

// ListRooms возвращает комнаты workspace
func (c *Client) ListRooms(ctx context.Context, workspaceID string) ([]api.Room, error) {
	var resp []api.Room
	path := fmt.Sprintf("/api/v1/workspaces/%s/rooms", url.PathEscape(workspaceID))
	err := c.doRequest(ctx, "GET", path, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list rooms request failed: %w", err)
	}
	return resp, nil
}

// PostMessage отправляет сообщение в комнату
func (c *Client) PostMessage(ctx context.Context, roomID string, req api.PostMessageRequest) (*api.Message, error) {
	var resp api.Message
	path := fmt.Sprintf("/api/v1/rooms/%s/messages", url.PathEscape(roomID))
	err := c.doRequest(ctx, "POST", path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("post message request failed: %w", err)
	}
	return &resp, nil
}

// EditMessage правит текст собственного сообщения
func (c *Client) EditMessage(ctx context.Context, messageID string, req api.EditMessageRequest) (*api.Message, error) {
	var resp api.Message
	path := fmt.Sprintf("/api/v1/messages/%s", url.PathEscape(messageID))
	err := c.doRequest(ctx, "PATCH", path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("edit message request failed: %w", err)
	}
	return &resp, nil
}

// DeleteMessage удаляет собственное сообщение (tombstone)
func (c *Client) DeleteMessage(ctx context.Context, messageID string) error {
	path := fmt.Sprintf("/api/v1/messages/%s", url.PathEscape(messageID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete message request failed: %w", err)
	}
	return nil
}

// CreateTask создает задачу в workspace
func (c *Client) CreateTask(ctx context.Context, workspaceID string, req api.CreateTaskRequest) (*api.Task, error) {
	var resp api.Task
	path := fmt.Sprintf("/api/v1/workspaces/%s/tasks", url.PathEscape(workspaceID))
	err := c.doRequest(ctx, "POST", path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create task request failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask частично обновляет задачу
func (c *Client) UpdateTask(ctx context.Context, taskID string, req api.UpdateTaskRequest) (*api.Task, error) {
	var resp api.Task
	path := fmt.Sprintf("/api/v1/tasks/%s", url.PathEscape(taskID))
	err := c.doRequest(ctx, "PATCH", path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update task request failed: %w", err)
	}
	return &resp, nil
}

// DeleteTask удаляет задачу (tombstone)
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	path := fmt.Sprintf("/api/v1/tasks/%s", url.PathEscape(taskID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete task request failed: %w", err)
	}
	return nil
}

// Sync запрашивает страницу ленты изменений workspace.
// Пустой cursor означает полный replay с начала ленты,
// limit <= 0 оставляет лимит на усмотрение сервера.
func (c *Client) Sync(ctx context.Context, workspaceID, cursor string, limit int) (*api.SyncResponse, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	path := fmt.Sprintf("/api/v1/workspaces/%s/sync", url.PathEscape(workspaceID))
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp api.SyncResponse
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	return &resp, nil
}

// ListNotifications возвращает уведомления пользователя.
// unreadOnly фильтрует непрочитанные, limit <= 0 оставляет лимит серверу.
func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool, limit int) ([]api.Notification, error) {
	query := url.Values{}
	if unreadOnly {
		query.Set("unread", "true")
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/notifications"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp []api.Notification
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list notifications request failed: %w", err)
	}
	return resp, nil
}

// MarkNotificationRead помечает уведомление прочитанным
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	path := fmt.Sprintf("/api/v1/notifications/%s/read", url.PathEscape(notificationID))
	if err := c.doRequest(ctx, "POST", path, nil, nil); err != nil {
		return fmt.Errorf("mark notification read request failed: %w", err)
	}
	return nil
}

// MarkAllNotificationsRead помечает все уведомления прочитанными
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (*api.MarkAllReadResponse, error) {
	var resp api.MarkAllReadResponse
	err := c.doRequest(ctx, "POST", "/api/v1/notifications/read-all", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("mark all notifications read request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// statusError превращает неуспешный ответ в ошибку.
// Для 401/403/404 возвращаются типизированные ошибки.
func statusError(statusCode int, respBody []byte) error {
	msg := string(respBody)
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
		msg = errResp.Message
	}

	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}

	return fmt.Errorf("server error (%d): %s", statusCode, msg)
}
