// Package api is the HTTP client for the fairscan ledger server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/pkg/api"
)

// DefaultTimeout is used when no timeout is configured
const DefaultTimeout = 30 * time.Second

// maxResponseSize ограничивает размер читаемого ответа
const maxResponseSize = 1 << 20

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// Option configures a Client
type Option func(*Client)

// WithAccessToken sets the bearer token sent with every request
func WithAccessToken(token string) Option {
	return func(c *Client) { c.accessToken = token }
}

// WithTimeout overrides DefaultTimeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
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
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// AttendanceExists reports whether (eventID, userID) is already in the ledger
func (c *Client) AttendanceExists(ctx context.Context, eventID, userID string) (bool, error) {
	var resp api.AttendanceStatusResponse
	if err := c.doRequest(ctx, http.MethodGet, attendancePath(eventID, userID), nil, &resp); err != nil {
		return false, fmt.Errorf("attendance lookup failed: %w", err)
	}
	return resp.Exists, nil
}

// CreateAttendance writes a record if absent.
// An existing record is reported as ErrConflict.
func (c *Client) CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	req := api.CreateAttendanceRequest{
		Timestamp: record.Timestamp,
		Answers:   record.Answers,
	}
	if err := c.doRequest(ctx, http.MethodPut, attendancePath(record.EventID, record.UserID), req, nil); err != nil {
		return fmt.Errorf("attendance create failed: %w", err)
	}
	return nil
}

// AppendScanLog sends one audit entry. Re-sending the same entry ID is a no-op on the server.
func (c *Client) AppendScanLog(ctx context.Context, entry *models.ScanLogEntry) error {
	req := api.ScanLogEntry{
		ID:               entry.ID,
		Timestamp:        entry.Timestamp,
		Task:             entry.Task,
		ScanType:         string(entry.ScanType),
		Result:           string(entry.Result),
		UserID:           entry.UserID,
		TargetID:         entry.TargetID,
		ErrorMessage:     entry.ErrorMessage,
		TokenFingerprint: entry.TokenFingerprint,
	}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/scanlog", req, nil); err != nil {
		return fmt.Errorf("scan log append failed: %w", err)
	}
	return nil
}

// ListScanLog returns the latest scan log entries of the token owner
func (c *Client) ListScanLog(ctx context.Context, limit int) ([]*models.ScanLogEntry, error) {
	path := "/api/v1/scanlog"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp api.ScanLogListResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("scan log list failed: %w", err)
	}

	entries := make([]*models.ScanLogEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, &models.ScanLogEntry{
			ID:               e.ID,
			Timestamp:        e.Timestamp,
			Task:             e.Task,
			ScanType:         models.ScanType(e.ScanType),
			Result:           models.ScanResult(e.Result),
			UserID:           e.UserID,
			TargetID:         e.TargetID,
			ErrorMessage:     e.ErrorMessage,
			TokenFingerprint: e.TokenFingerprint,
		})
	}
	return entries, nil
}

// GetQuestionnaire fetches a questionnaire; a missing one is ErrNotFound
func (c *Client) GetQuestionnaire(ctx context.Context, id string) (*models.Questionnaire, error) {
	var resp api.Questionnaire
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/questionnaires/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("questionnaire request failed: %w", err)
	}

	q := &models.Questionnaire{
		ID:        resp.ID,
		Title:     resp.Title,
		Questions: make([]models.Question, 0, len(resp.Questions)),
	}
	for _, question := range resp.Questions {
		q.Questions = append(q.Questions, models.Question{
			ID:       question.ID,
			Question: question.Question,
			Type:     models.QuestionType(question.Type),
			Options:  question.Options,
		})
	}
	return q, nil
}

func attendancePath(eventID, userID string) string {
	return "/api/v1/events/" + url.PathEscape(eventID) + "/attendance/" + url.PathEscape(userID)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
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
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Message
		} else {
			statusErr.Message = strings.TrimSpace(string(respBody))
		}
		return statusErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
