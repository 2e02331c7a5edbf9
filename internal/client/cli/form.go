package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/scanner"
)

var errNoQuestionnaires = errors.New("questionnaires are not available in offline mode")

// submitForm is the event form opened by an attendance code with a
// questionnaire: the answers go into the ledger together with attendance.
func (c *Cli) submitForm(ctx context.Context, eventID, questionnaireID string) error {
	if c.settings.UserID == "" {
		c.io.Printf("⚠️  %s\n", scanner.MsgSignInNeeded.Body)
		return nil
	}
	if c.server == nil {
		return errNoQuestionnaires
	}

	q, err := c.server.GetQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return fmt.Errorf("failed to load questionnaire: %w", err)
	}

	c.io.Printf("=== %s ===\n", q.Title)
	answers := make(map[string]string, len(q.Questions))
	for _, question := range q.Questions {
		answer, err := c.askQuestion(question)
		if err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
		// Пустой ответ допустим, но не сохраняется
		if answer != "" {
			answers[question.ID] = answer
		}
	}

	record := models.NewAttendanceRecord(eventID, c.settings.UserID, c.now(), answers)
	if err := c.syncService.Create(ctx, record); err != nil {
		if errors.Is(err, scanner.ErrAlreadyRecorded) {
			c.io.Printf("⚠️  %s: %s\n", scanner.MsgAlreadyDone.Title, scanner.MsgAlreadyDone.Body)
			return nil
		}
		c.io.Printf("⚠️  %s: %s\n", scanner.MsgLedgerFailed.Title, scanner.MsgLedgerFailed.Body)
		return err
	}

	c.logger.Info("Attendance recorded with answers", "event_id", eventID, "answers", len(answers))
	c.showRecorded(scanner.AttendanceRecordedText, true)
	return nil
}

// askQuestion prompts until the answer fits the question type
func (c *Cli) askQuestion(q models.Question) (string, error) {
	c.io.Println(q.Question)
	switch q.Type {
	case models.QuestionMultipleChoice:
		for i, opt := range q.Options {
			c.io.Printf("  %d) %s\n", i+1, opt)
		}
	case models.QuestionYesNo:
		c.io.Println("  Yes / No")
	}

	for {
		input, err := c.io.ReadInput("> ")
		if err != nil {
			return "", err
		}

		answer := normalizeAnswer(q, input)
		if q.Accepts(answer) {
			return answer, nil
		}
		c.io.Println("Invalid answer, try again.")
	}
}

// normalizeAnswer принимает номер варианта и y/n
func normalizeAnswer(q models.Question, input string) string {
	switch q.Type {
	case models.QuestionMultipleChoice:
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Options) {
			return q.Options[n-1]
		}
	case models.QuestionYesNo:
		switch strings.ToLower(input) {
		case "y", "yes":
			return "Yes"
		case "n", "no":
			return "No"
		}
	}
	return input
}
