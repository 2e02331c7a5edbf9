package api

// Question представляет вопрос анкеты
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"` // text, multipleChoice или yesNo
	Options  []string `json:"options,omitempty"`
}

// Questionnaire - ответ на GET /api/v1/questionnaires/{questionnaireID}
type Questionnaire struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}
