package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/pkg/api"
)

const (
	defaultScanLogLimit = 50
	maxScanLogLimit     = 500
	maxErrorMessageLen  = 512
)

// ScanLogStorage определяет интерфейс для журнала сканирований
type ScanLogStorage interface {
	AppendScanLog(ctx context.Context, entry *models.ScanLogEntry) error
	ListUserScanLog(ctx context.Context, userID string, limit int) ([]*models.ScanLogEntry, error)
}

// ScanLogHandler обслуживает журнал сканирований
type ScanLogHandler struct {
	logger  *slog.Logger
	storage ScanLogStorage
	now     func() time.Time
}

// NewScanLogHandler создает новый handler для журнала сканирований
func NewScanLogHandler(logger *slog.Logger, storage ScanLogStorage) *ScanLogHandler {
	return &ScanLogHandler{
		logger:  logger,
		storage: storage,
		now:     time.Now,
	}
}

var knownScanTypes = map[models.ScanType]bool{
	models.ScanTypeAttendance:      true,
	models.ScanTypeViewDigitalCard: true,
	models.ScanTypeViewCompanyInfo: true,
	models.ScanTypeUnknown:         true,
	models.ScanTypeError:           true,
}

var knownResults = map[models.ScanResult]bool{
	models.ResultSuccess:               true,
	models.ResultDuplicate:             true,
	models.ResultQuestionnaireRequired: true,
	models.ResultInvalidQRCode:         true,
	models.ResultDecodeFailed:          true,
	models.ResultLedgerError:           true,
}

// Append обрабатывает POST /api/v1/scanlog
func (h *ScanLogHandler) Append(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.logger, w, r)
	if !ok {
		return
	}

	var req api.ScanLogEntry
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("Failed to decode scan log entry", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Пустой user_id означает "от имени владельца токена"
	if req.UserID == "" {
		req.UserID = userID
	}
	if req.UserID != userID {
		h.logger.Warn("Scan log user mismatch", "entry_id", req.ID)
		sendError(h.logger, w, "user id does not match token", http.StatusForbidden)
		return
	}

	if _, err := uuid.Parse(req.ID); err != nil {
		sendError(h.logger, w, "id must be a UUID", http.StatusBadRequest)
		return
	}

	entry := &models.ScanLogEntry{
		ID:               req.ID,
		Timestamp:        req.Timestamp.UTC(),
		Task:             req.Task,
		ScanType:         models.ScanType(req.ScanType),
		Result:           models.ScanResult(req.Result),
		UserID:           req.UserID,
		TargetID:         req.TargetID,
		ErrorMessage:     truncate(req.ErrorMessage, maxErrorMessageLen),
		TokenFingerprint: req.TokenFingerprint,
	}
	if !knownScanTypes[entry.ScanType] {
		sendError(h.logger, w, "unknown scan_type", http.StatusBadRequest)
		return
	}
	if !knownResults[entry.Result] {
		sendError(h.logger, w, "unknown result", http.StatusBadRequest)
		return
	}
	if req.Timestamp.IsZero() {
		entry.Timestamp = h.now().UTC()
	}

	if err := h.storage.AppendScanLog(r.Context(), entry); err != nil {
		h.logger.Error("Failed to append scan log entry", "error", err, "entry_id", entry.ID)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Debug("Scan log entry stored",
		"entry_id", entry.ID,
		"scan_type", entry.ScanType,
		"result", entry.Result,
	)

	w.WriteHeader(http.StatusAccepted)
}

// List обрабатывает GET /api/v1/scanlog?limit=N
// Возвращает последние записи текущего пользователя
func (h *ScanLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.logger, w, r)
	if !ok {
		return
	}

	limit := defaultScanLogLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.logger.Warn("Invalid limit parameter", "limit", s)
			sendError(h.logger, w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = min(n, maxScanLogLimit)
	}

	entries, err := h.storage.ListUserScanLog(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to list scan log", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ScanLogListResponse{Entries: make([]api.ScanLogEntry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, api.ScanLogEntry{
			ID:               e.ID,
			Timestamp:        e.Timestamp,
			Task:             e.Task,
			ScanType:         string(e.ScanType),
			Result:           string(e.Result),
			UserID:           e.UserID,
			TargetID:         e.TargetID,
			ErrorMessage:     e.ErrorMessage,
			TokenFingerprint: e.TokenFingerprint,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
