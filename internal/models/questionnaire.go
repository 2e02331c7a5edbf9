package models

// QuestionType is the kind of input a questionnaire question expects
type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionMultipleChoice QuestionType = "multipleChoice"
	QuestionYesNo          QuestionType = "yesNo"
)

// Question is a single questionnaire item
type Question struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
}

// Questionnaire представляет анкету, которую студент заполняет при отметке посещения
type Questionnaire struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Accepts reports whether answer is valid for the question.
// Empty answers are allowed; the form flow does not make questions mandatory.
func (q Question) Accepts(answer string) bool {
	if answer == "" {
		return true
	}

	switch q.Type {
	case QuestionYesNo:
		return answer == "Yes" || answer == "No"
	case QuestionMultipleChoice:
		for _, opt := range q.Options {
			if opt == answer {
				return true
			}
		}
		return false
	default:
		return true
	}
}
