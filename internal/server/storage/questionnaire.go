package storage

import (
	"context"

	"github.com/iudanet/fairscan/internal/models"
)

// QuestionnaireStorage defines interface for event questionnaires
type QuestionnaireStorage interface {
	// GetQuestionnaire retrieves questionnaire by ID
	// Returns ErrQuestionnaireNotFound if questionnaire doesn't exist
	GetQuestionnaire(ctx context.Context, id string) (*models.Questionnaire, error)

	// SaveQuestionnaire creates or replaces a questionnaire
	SaveQuestionnaire(ctx context.Context, q *models.Questionnaire) error
}
