package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/server/storage"
)

// GetQuestionnaire retrieves questionnaire by ID
func (s *Storage) GetQuestionnaire(ctx context.Context, id string) (*models.Questionnaire, error) {
	query := `SELECT id, title, questions FROM questionnaires WHERE id = ?`

	q := &models.Questionnaire{}
	var questions string

	err := s.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Title, &questions)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrQuestionnaireNotFound
		}
		return nil, fmt.Errorf("failed to query questionnaire: %w", err)
	}

	if err := json.Unmarshal([]byte(questions), &q.Questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}

	return q, nil
}

// SaveQuestionnaire creates or replaces a questionnaire
func (s *Storage) SaveQuestionnaire(ctx context.Context, q *models.Questionnaire) error {
	questions := q.Questions
	if questions == nil {
		questions = []models.Question{}
	}

	data, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}

	query := `
		INSERT INTO questionnaires (id, title, questions, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			questions = excluded.questions,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, q.ID, q.Title, string(data), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to save questionnaire: %w", err)
	}

	return nil
}
