package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/server/storage"
	"github.com/iudanet/fairscan/pkg/api"
)

func attendancePath(eventID, userID string) map[string]string {
	return map[string]string{"eventID": eventID, "userID": userID}
}

func TestAttendanceHandler_Exists(t *testing.T) {
	tests := []struct {
		existsErr    error
		name         string
		authUser     string
		eventID      string
		userID       string
		exists       bool
		expectedCode int
		wantCalls    int
	}{
		{
			name:         "recorded",
			authUser:     "user123",
			eventID:      "fair-2024",
			userID:       "user123",
			exists:       true,
			expectedCode: http.StatusOK,
			wantCalls:    1,
		},
		{
			name:         "not recorded",
			authUser:     "user123",
			eventID:      "fair-2024",
			userID:       "user123",
			expectedCode: http.StatusOK,
			wantCalls:    1,
		},
		{
			name:         "no user in context",
			eventID:      "fair-2024",
			userID:       "user123",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "other user",
			authUser:     "user123",
			eventID:      "fair-2024",
			userID:       "user456",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "invalid event id",
			authUser:     "user123",
			eventID:      "fair 2024",
			userID:       "user123",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "storage error",
			authUser:     "user123",
			eventID:      "fair-2024",
			userID:       "user123",
			existsErr:    errors.New("database is locked"),
			expectedCode: http.StatusInternalServerError,
			wantCalls:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := &AttendanceStorageMock{
				AttendanceExistsFunc: func(ctx context.Context, eventID, userID string) (bool, error) {
					assert.Equal(t, tt.eventID, eventID)
					assert.Equal(t, tt.userID, userID)
					return tt.exists, tt.existsErr
				},
			}
			handler := NewAttendanceHandler(setupTestLogger(), mockStorage)

			req := newAuthedRequest(http.MethodGet, "/api/v1/events/x/attendance/y", "", tt.authUser, attendancePath(tt.eventID, tt.userID))
			w := httptest.NewRecorder()

			handler.Exists(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Len(t, mockStorage.AttendanceExistsCalls(), tt.wantCalls)

			if tt.expectedCode == http.StatusOK {
				var resp api.AttendanceStatusResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.exists, resp.Exists)
			}
		})
	}
}

func TestAttendanceHandler_Create(t *testing.T) {
	fixedNow := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		createErr    error
		name         string
		body         string
		errMsg       string
		wantAnswers  map[string]string
		wantTime     time.Time
		expectedCode int
		wantCalls    int
	}{
		{
			name:         "empty body object uses server time",
			body:         `{}`,
			expectedCode: http.StatusCreated,
			wantCalls:    1,
			wantTime:     fixedNow,
		},
		{
			name:         "with timestamp and answers",
			body:         `{"timestamp":"2024-03-14T09:30:00+02:00","answers":{"q1":"Yes","q2":"Backend"}}`,
			expectedCode: http.StatusCreated,
			wantCalls:    1,
			wantTime:     time.Date(2024, 3, 14, 7, 30, 0, 0, time.UTC),
			wantAnswers:  map[string]string{"q1": "Yes", "q2": "Backend"},
		},
		{
			name:         "already recorded",
			body:         `{}`,
			createErr:    fmt.Errorf("insert: %w", storage.ErrAttendanceExists),
			expectedCode: http.StatusConflict,
			errMsg:       "attendance already recorded",
			wantCalls:    1,
		},
		{
			name:         "storage failure",
			body:         `{}`,
			createErr:    errors.New("disk full"),
			expectedCode: http.StatusInternalServerError,
			errMsg:       "internal server error",
			wantCalls:    1,
		},
		{
			name:         "invalid json",
			body:         `{"answers":`,
			expectedCode: http.StatusBadRequest,
			errMsg:       "invalid request body",
		},
		{
			name:         "unknown field",
			body:         `{"eventId":"other"}`,
			expectedCode: http.StatusBadRequest,
			errMsg:       "invalid request body",
		},
		{
			name:         "invalid question id",
			body:         `{"answers":{"q 1":"Yes"}}`,
			expectedCode: http.StatusBadRequest,
			errMsg:       "question id can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := &AttendanceStorageMock{
				CreateAttendanceFunc: func(ctx context.Context, record *models.AttendanceRecord) error {
					return tt.createErr
				},
			}
			handler := NewAttendanceHandler(setupTestLogger(), mockStorage)
			handler.now = func() time.Time { return fixedNow }

			req := newAuthedRequest(http.MethodPut, "/api/v1/events/fair-2024/attendance/user123", tt.body, "user123", attendancePath("fair-2024", "user123"))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			require.Len(t, mockStorage.CreateAttendanceCalls(), tt.wantCalls)

			if tt.errMsg != "" {
				var errResp api.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
				assert.Contains(t, errResp.Message, tt.errMsg)
				return
			}

			record := mockStorage.CreateAttendanceCalls()[0].Record
			assert.Equal(t, "fair-2024", record.EventID)
			assert.Equal(t, "user123", record.UserID)
			assert.Equal(t, models.TaskAttendance, record.Task)
			assert.True(t, tt.wantTime.Equal(record.Timestamp))
			assert.Equal(t, tt.wantAnswers, record.Answers)

			var resp api.AttendanceRecord
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "fair-2024", resp.EventID)
			assert.Equal(t, "user123", resp.UserID)
			assert.Equal(t, "attendance", resp.Task)
		})
	}
}

func TestAttendanceHandler_Create_TooManyAnswers(t *testing.T) {
	answers := make([]string, 0, maxAnswers+1)
	for i := 0; i <= maxAnswers; i++ {
		answers = append(answers, fmt.Sprintf(`"q%d":"a"`, i))
	}
	body := `{"answers":{` + strings.Join(answers, ",") + `}}`

	mockStorage := &AttendanceStorageMock{}
	handler := NewAttendanceHandler(setupTestLogger(), mockStorage)

	req := newAuthedRequest(http.MethodPut, "/", body, "user123", attendancePath("fair-2024", "user123"))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockStorage.CreateAttendanceCalls())
}

func TestAttendanceHandler_Create_OtherUser(t *testing.T) {
	mockStorage := &AttendanceStorageMock{}
	handler := NewAttendanceHandler(setupTestLogger(), mockStorage)

	req := newAuthedRequest(http.MethodPut, "/", `{}`, "user123", attendancePath("fair-2024", "user456"))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, mockStorage.CreateAttendanceCalls())
}
