package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/server/storage"
	"github.com/iudanet/fairscan/internal/validation"
	"github.com/iudanet/fairscan/pkg/api"
)

//go:generate moq -out storage_mock.go . AttendanceStorage ScanLogStorage QuestionnaireStorage Pinger

// maxAnswers ограничивает число ответов анкеты в одной записи
const maxAnswers = 100

// AttendanceStorage определяет интерфейс для работы с ledger посещений
type AttendanceStorage interface {
	AttendanceExists(ctx context.Context, eventID, userID string) (bool, error)
	CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error
}

// AttendanceHandler обслуживает ledger посещений
type AttendanceHandler struct {
	logger  *slog.Logger
	storage AttendanceStorage
	now     func() time.Time
}

// NewAttendanceHandler создает новый handler для ledger посещений
func NewAttendanceHandler(logger *slog.Logger, storage AttendanceStorage) *AttendanceHandler {
	return &AttendanceHandler{
		logger:  logger,
		storage: storage,
		now:     time.Now,
	}
}

// Exists обрабатывает GET /api/v1/events/{eventID}/attendance/{userID}
func (h *AttendanceHandler) Exists(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	exists, err := h.storage.AttendanceExists(r.Context(), eventID, userID)
	if err != nil {
		h.logger.Error("Failed to check attendance", "error", err, "event_id", eventID)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.AttendanceStatusResponse{Exists: exists}, http.StatusOK)
}

// Create обрабатывает PUT /api/v1/events/{eventID}/attendance/{userID}
// Создает запись, если её ещё нет; повтор возвращает 409
func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	var req api.CreateAttendanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("Failed to decode attendance request", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Answers) > maxAnswers {
		sendError(h.logger, w, "too many answers", http.StatusBadRequest)
		return
	}
	for questionID := range req.Answers {
		if err := validation.ValidateIdentifier("question id", questionID); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	at := req.Timestamp
	if at.IsZero() {
		at = h.now()
	}
	record := models.NewAttendanceRecord(eventID, userID, at, req.Answers)

	if err := h.storage.CreateAttendance(r.Context(), record); err != nil {
		if errors.Is(err, storage.ErrAttendanceExists) {
			h.logger.Info("Attendance already recorded", "event_id", eventID)
			sendError(h.logger, w, "attendance already recorded", http.StatusConflict)
			return
		}
		h.logger.Error("Failed to create attendance", "error", err, "event_id", eventID)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Attendance recorded", "event_id", eventID, "answers", len(record.Answers))

	sendJSON(h.logger, w, api.AttendanceRecord{
		EventID:   record.EventID,
		UserID:    record.UserID,
		Task:      record.Task,
		Timestamp: record.Timestamp,
		Answers:   record.Answers,
	}, http.StatusCreated)
}

// pathPair валидирует eventID и userID из пути.
// Пользователь может читать и писать только свои записи
func (h *AttendanceHandler) pathPair(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	authUserID, ok := requireUser(h.logger, w, r)
	if !ok {
		return "", "", false
	}

	eventID := r.PathValue("eventID")
	userID := r.PathValue("userID")

	if err := validation.ValidateIdentifier("event id", eventID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}
	if err := validation.ValidateIdentifier("user id", userID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}

	if userID != authUserID {
		h.logger.Warn("Attendance user mismatch", "event_id", eventID)
		sendError(h.logger, w, "user id does not match token", http.StatusForbidden)
		return "", "", false
	}

	return eventID, userID, true
}
