package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/pkg/api"
)

const testEntryID = "0b7e3c52-7f2d-4a55-9a3c-2e8a5d9b1c44"

func TestScanLogHandler_Append(t *testing.T) {
	fixedNow := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		appendErr    error
		check        func(t *testing.T, e *models.ScanLogEntry)
		name         string
		body         string
		expectedCode int
		wantCalls    int
	}{
		{
			name:         "full entry",
			body:         `{"id":"` + testEntryID + `","timestamp":"2024-03-14T09:00:00Z","task":"attendance","scan_type":"attendance","result":"success","user_id":"user123","target_id":"fair-2024","token_fingerprint":"ba7816bf8f01cfea"}`,
			expectedCode: http.StatusAccepted,
			wantCalls:    1,
			check: func(t *testing.T, e *models.ScanLogEntry) {
				assert.Equal(t, testEntryID, e.ID)
				assert.Equal(t, models.ScanTypeAttendance, e.ScanType)
				assert.Equal(t, models.ResultSuccess, e.Result)
				assert.Equal(t, "fair-2024", e.TargetID)
				assert.Equal(t, "ba7816bf8f01cfea", e.TokenFingerprint)
				assert.Equal(t, time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC), e.Timestamp)
			},
		},
		{
			name:         "user and timestamp filled in",
			body:         `{"id":"` + testEntryID + `","scan_type":"error","result":"decode_failed","error_message":"decrypt failed"}`,
			expectedCode: http.StatusAccepted,
			wantCalls:    1,
			check: func(t *testing.T, e *models.ScanLogEntry) {
				assert.Equal(t, "user123", e.UserID)
				assert.Equal(t, fixedNow, e.Timestamp)
				assert.Equal(t, "decrypt failed", e.ErrorMessage)
			},
		},
		{
			name:         "long error message is truncated",
			body:         `{"id":"` + testEntryID + `","scan_type":"error","result":"decode_failed","error_message":"` + strings.Repeat("x", 600) + `"}`,
			expectedCode: http.StatusAccepted,
			wantCalls:    1,
			check: func(t *testing.T, e *models.ScanLogEntry) {
				assert.Len(t, e.ErrorMessage, maxErrorMessageLen)
			},
		},
		{
			name:         "long non-ascii error message stays valid utf-8",
			body:         `{"id":"` + testEntryID + `","scan_type":"error","result":"decode_failed","error_message":"x` + strings.Repeat("ж", 300) + `"}`,
			expectedCode: http.StatusAccepted,
			wantCalls:    1,
			check: func(t *testing.T, e *models.ScanLogEntry) {
				assert.True(t, utf8.ValidString(e.ErrorMessage))
				assert.Len(t, e.ErrorMessage, maxErrorMessageLen-1)
			},
		},
		{
			name:         "other user",
			body:         `{"id":"` + testEntryID + `","scan_type":"unknown","result":"invalid_qr_code","user_id":"user456"}`,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "id is not uuid",
			body:         `{"id":"entry-1","scan_type":"unknown","result":"invalid_qr_code"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown scan type",
			body:         `{"id":"` + testEntryID + `","scan_type":"payment","result":"success"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown result",
			body:         `{"id":"` + testEntryID + `","scan_type":"attendance","result":"maybe"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `[`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "storage failure",
			body:         `{"id":"` + testEntryID + `","scan_type":"view_digital_card","result":"success","target_id":"user9"}`,
			appendErr:    errors.New("disk full"),
			expectedCode: http.StatusInternalServerError,
			wantCalls:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := &ScanLogStorageMock{
				AppendScanLogFunc: func(ctx context.Context, entry *models.ScanLogEntry) error {
					return tt.appendErr
				},
			}
			handler := NewScanLogHandler(setupTestLogger(), mockStorage)
			handler.now = func() time.Time { return fixedNow }

			req := newAuthedRequest(http.MethodPost, "/api/v1/scanlog", tt.body, "user123", nil)
			w := httptest.NewRecorder()

			handler.Append(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			calls := mockStorage.AppendScanLogCalls()
			require.Len(t, calls, tt.wantCalls)
			if tt.check != nil {
				tt.check(t, calls[0].Entry)
			}
		})
	}
}

func TestScanLogHandler_Append_Unauthorized(t *testing.T) {
	mockStorage := &ScanLogStorageMock{}
	handler := NewScanLogHandler(setupTestLogger(), mockStorage)

	w := httptest.NewRecorder()
	handler.Append(w, newAuthedRequest(http.MethodPost, "/api/v1/scanlog", `{}`, "", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, mockStorage.AppendScanLogCalls())
}

func TestScanLogHandler_List(t *testing.T) {
	stored := []*models.ScanLogEntry{
		{
			ID:        testEntryID,
			Timestamp: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
			Task:      "viewCompanyInfo",
			ScanType:  models.ScanTypeViewCompanyInfo,
			Result:    models.ResultSuccess,
			UserID:    "user123",
			TargetID:  "acme",
		},
	}

	tests := []struct {
		listErr      error
		name         string
		query        string
		expectedCode int
		wantLimit    int
		wantEntries  int
	}{
		{name: "default limit", expectedCode: http.StatusOK, wantLimit: defaultScanLogLimit, wantEntries: 1},
		{name: "explicit limit", query: "?limit=10", expectedCode: http.StatusOK, wantLimit: 10, wantEntries: 1},
		{name: "limit is capped", query: "?limit=100000", expectedCode: http.StatusOK, wantLimit: maxScanLogLimit, wantEntries: 1},
		{name: "zero limit", query: "?limit=0", expectedCode: http.StatusBadRequest},
		{name: "not a number", query: "?limit=ten", expectedCode: http.StatusBadRequest},
		{name: "storage failure", listErr: errors.New("boom"), expectedCode: http.StatusInternalServerError, wantLimit: defaultScanLogLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := &ScanLogStorageMock{
				ListUserScanLogFunc: func(ctx context.Context, userID string, limit int) ([]*models.ScanLogEntry, error) {
					assert.Equal(t, "user123", userID)
					assert.Equal(t, tt.wantLimit, limit)
					if tt.listErr != nil {
						return nil, tt.listErr
					}
					return stored, nil
				},
			}
			handler := NewScanLogHandler(setupTestLogger(), mockStorage)

			req := newAuthedRequest(http.MethodGet, "/api/v1/scanlog"+tt.query, "", "user123", nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp api.ScanLogListResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			require.Len(t, resp.Entries, tt.wantEntries)
			assert.Equal(t, "view_company_info", resp.Entries[0].ScanType)
			assert.Equal(t, "acme", resp.Entries[0].TargetID)
		})
	}
}

func TestScanLogHandler_List_EmptyIsArray(t *testing.T) {
	mockStorage := &ScanLogStorageMock{
		ListUserScanLogFunc: func(ctx context.Context, userID string, limit int) ([]*models.ScanLogEntry, error) {
			return nil, nil
		},
	}
	handler := NewScanLogHandler(setupTestLogger(), mockStorage)

	w := httptest.NewRecorder()
	handler.List(w, newAuthedRequest(http.MethodGet, "/api/v1/scanlog", "", "user123", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries":[]}`, w.Body.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		n     int
	}{
		{name: "short", input: "abc", n: 5, want: "abc"},
		{name: "exact", input: "abcde", n: 5, want: "abcde"},
		{name: "ascii", input: "abcdef", n: 4, want: "abcd"},
		// "ж" занимает два байта, срез по 3 байтам попал бы в середину
		{name: "cyrillic boundary", input: "жжж", n: 3, want: "ж"},
		{name: "cyrillic even", input: "жжж", n: 4, want: "жж"},
		{name: "emoji", input: "a🌍b", n: 3, want: "a"},
		{name: "zero", input: "ж", n: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), tt.n)
		})
	}
}
