package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/server/storage"
	"github.com/iudanet/fairscan/internal/validation"
	"github.com/iudanet/fairscan/pkg/api"
)

// QuestionnaireStorage определяет интерфейс для чтения анкет
type QuestionnaireStorage interface {
	GetQuestionnaire(ctx context.Context, id string) (*models.Questionnaire, error)
}

// QuestionnaireHandler отдаёт анкеты мероприятий
type QuestionnaireHandler struct {
	logger  *slog.Logger
	storage QuestionnaireStorage
}

// NewQuestionnaireHandler создает новый handler для анкет
func NewQuestionnaireHandler(logger *slog.Logger, storage QuestionnaireStorage) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		logger:  logger,
		storage: storage,
	}
}

// Get обрабатывает GET /api/v1/questionnaires/{questionnaireID}
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.logger, w, r); !ok {
		return
	}

	id := r.PathValue("questionnaireID")
	if err := validation.ValidateIdentifier("questionnaire id", id); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.storage.GetQuestionnaire(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrQuestionnaireNotFound) {
			sendError(h.logger, w, "questionnaire not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get questionnaire", "error", err, "questionnaire_id", id)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.Questionnaire{
		ID:        q.ID,
		Title:     q.Title,
		Questions: make([]api.Question, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		resp.Questions = append(resp.Questions, api.Question{
			ID:       question.ID,
			Question: question.Question,
			Type:     string(question.Type),
			Options:  question.Options,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
