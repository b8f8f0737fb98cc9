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
	"time"

	"github.com/iudanet/lingosync/internal/retry"
	"github.com/iudanet/lingosync/pkg/api"
)

// TokenSource выдает access token для авторизованных запросов
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client представляет HTTP клиент удаленного хранилища прогресса
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithTokenSource задает источник токенов для запросов к документу прогресса
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithHTTPClient подменяет HTTP клиент
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource задает источник токенов после создания клиента.
// Нужен, когда сам источник токенов использует этот клиент для выдачи токенов.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// SignInAnonymously регистрирует новое анонимное устройство
func (c *Client) SignInAnonymously(ctx context.Context) (*api.AnonymousSignInResponse, error) {
	var resp api.AnonymousSignInResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/anonymous", false, struct{}{}, &resp); err != nil {
		return nil, fmt.Errorf("anonymous sign-in request failed: %w", err)
	}
	return &resp, nil
}

// IssueToken выдает новый access token по секрету устройства
func (c *Client) IssueToken(ctx context.Context, userID, deviceSecret string) (*api.TokenResponse, error) {
	req := api.TokenRequest{UserID: userID, DeviceSecret: deviceSecret}

	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/token", false, req, &resp); err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	return &resp, nil
}

// GetProgress читает документ прогресса пользователя целиком.
// Возвращает ErrDocumentNotFound, если документа нет.
func (c *Client) GetProgress(ctx context.Context, userID string) (map[string]json.RawMessage, error) {
	var doc api.ProgressDocument
	err := c.doRequest(ctx, http.MethodGet, progressPath(userID), true, nil, &doc)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get progress request failed: %w", err)
	}

	if doc.Fields == nil {
		doc.Fields = map[string]json.RawMessage{}
	}
	return doc.Fields, nil
}

// MergeProgress записывает поля в документ пользователя.
// Остальные поля документа сохраняются.
func (c *Client) MergeProgress(ctx context.Context, userID string, fields map[string]json.RawMessage) error {
	req := api.MergeProgressRequest{Fields: fields}

	var resp api.MergeProgressResponse
	if err := c.doRequest(ctx, http.MethodPatch, progressPath(userID), true, req, &resp); err != nil {
		return fmt.Errorf("merge progress request failed: %w", err)
	}
	return nil
}

func progressPath(userID string) string {
	return "/api/v1/users/" + url.PathEscape(userID) + "/progress"
}

// doRequest выполняет HTTP запрос.
// Сетевые ошибки оборачивают retry.ErrOffline, ответы не-2xx становятся *StatusError.
func (c *Client) doRequest(ctx context.Context, method, path string, authorized bool, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authorized {
		if c.tokens == nil {
			return &StatusError{Status: http.StatusUnauthorized, ErrCode: api.CodeUnauthenticated, Message: "no token source"}
		}
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to get access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Отмена вызывающей стороной не считается отсутствием сети
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", retry.ErrOffline, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", retry.ErrOffline, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Status: resp.StatusCode, ErrCode: codeForStatus(resp.StatusCode)}

		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			if errResp.Code != "" {
				statusErr.ErrCode = errResp.Code
			}
			statusErr.Message = errResp.Message
		} else {
			statusErr.Message = string(bytes.TrimSpace(respBody))
		}
		return statusErr
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
