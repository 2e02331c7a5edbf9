package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/validation"
)

type questionnaireFile struct {
	Questionnaires []questionnaireSeed `yaml:"questionnaires"`
}

type questionnaireSeed struct {
	ID        string         `yaml:"id"`
	Title     string         `yaml:"title"`
	Questions []questionSeed `yaml:"questions"`
}

type questionSeed struct {
	ID       string   `yaml:"id"`
	Question string   `yaml:"question"`
	Type     string   `yaml:"type"`
	Options  []string `yaml:"options"`
}

// LoadQuestionnaires reads the questionnaire seed file served by the ledger server.
//
//	questionnaires:
//	  - id: fair-2024-feedback
//	    title: Career fair feedback
//	    questions:
//	      - id: q1
//	        question: Did you find an internship?
//	        type: yesNo
func LoadQuestionnaires(path string) ([]*models.Questionnaire, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaires file: %w", err)
	}

	var file questionnaireFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse questionnaires file: %w", err)
	}

	result := make([]*models.Questionnaire, 0, len(file.Questionnaires))
	seen := make(map[string]bool, len(file.Questionnaires))
	for _, seed := range file.Questionnaires {
		q, err := seed.toModel()
		if err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate questionnaire %q", q.ID)
		}
		seen[q.ID] = true
		result = append(result, q)
	}
	return result, nil
}

func (s questionnaireSeed) toModel() (*models.Questionnaire, error) {
	if err := validation.ValidateIdentifier("questionnaire id", s.ID); err != nil {
		return nil, err
	}

	q := &models.Questionnaire{
		ID:        s.ID,
		Title:     s.Title,
		Questions: make([]models.Question, 0, len(s.Questions)),
	}
	for _, qs := range s.Questions {
		if err := validation.ValidateIdentifier("question id", qs.ID); err != nil {
			return nil, fmt.Errorf("questionnaire %q: %w", s.ID, err)
		}

		qt := models.QuestionType(qs.Type)
		switch qt {
		case models.QuestionText, models.QuestionYesNo:
		case models.QuestionMultipleChoice:
			if len(qs.Options) == 0 {
				return nil, fmt.Errorf("questionnaire %q: question %q has no options", s.ID, qs.ID)
			}
		default:
			return nil, fmt.Errorf("questionnaire %q: question %q has unknown type %q", s.ID, qs.ID, qs.Type)
		}

		q.Questions = append(q.Questions, models.Question{
			ID:       qs.ID,
			Question: qs.Question,
			Type:     qt,
			Options:  qs.Options,
		})
	}
	return q, nil
}
