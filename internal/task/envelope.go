package task

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iudanet/fairscan/internal/validation"
)

// object is a decoded JSON object. Keys are looked up exactly:
// "TASK" or "EventId" are not the keys a token carries.
type object map[string]json.RawMessage

type attendanceData struct {
	EventID         *string `json:"eventId"`
	QuestionnaireID *string `json:"questionnaireId"`
}

type companyInfoData struct {
	EventID   *string `json:"eventId"`
	CompanyID *string `json:"companyId"`
}

// Parse decodes a decrypted token payload into a Task.
func Parse(plaintext string) (Task, error) {
	var env object
	if err := json.Unmarshal([]byte(plaintext), &env); err != nil {
		return nil, &EnvelopeError{Kind: ErrInvalidJSON, Msg: err.Error()}
	}

	rawTask := env["task"]
	if isAbsent(rawTask) {
		return nil, missingf("task")
	}
	var name string
	if err := json.Unmarshal(rawTask, &name); err != nil || name == "" {
		return nil, missingf("task must be a non-empty string")
	}

	data := env["data"]
	if isAbsent(data) {
		return nil, missingf("data")
	}

	switch name {
	case NameAttendance:
		return parseAttendance(data)
	case NameViewDigitalCard:
		return parseDigitalCard(data)
	case NameViewCompanyInfo:
		return parseCompanyInfo(data)
	default:
		return Unknown{Task: name, Data: data}, nil
	}
}

// stringField returns obj[key]. ok is false when the key is absent or null.
func stringField(obj object, key string) (value string, ok bool, err error) {
	raw := obj[key]
	if isAbsent(raw) {
		return "", false, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false, invalidf("%s must be a string", key)
	}
	return value, true, nil
}

func parseAttendance(raw json.RawMessage) (Task, error) {
	var d object
	if err := json.Unmarshal(raw, &d); err != nil || d == nil {
		return nil, invalidf("attendance data must be an object")
	}

	eventID, ok, err := stringField(d, "eventId")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidf("attendance data has no eventId")
	}
	if err := validation.ValidateIdentifier("eventId", eventID); err != nil {
		return nil, invalidf("%v", err)
	}

	questionnaireID, _, err := stringField(d, "questionnaireId")
	if err != nil {
		return nil, err
	}

	t := Attendance{EventID: eventID}
	// questionnaireId: null и "" означают "анкеты нет"
	if questionnaireID != "" {
		if err := validation.ValidateIdentifier("questionnaireId", questionnaireID); err != nil {
			return nil, invalidf("%v", err)
		}
		t.QuestionnaireID = questionnaireID
	}

	return t, nil
}

func parseDigitalCard(raw json.RawMessage) (Task, error) {
	var userID string
	if err := json.Unmarshal(raw, &userID); err != nil {
		return nil, invalidf("viewDigitalCard data must be a user id string")
	}
	if err := validation.ValidateIdentifier("userId", userID); err != nil {
		return nil, invalidf("%v", err)
	}
	return ViewDigitalCard{UserID: userID}, nil
}

func parseCompanyInfo(raw json.RawMessage) (Task, error) {
	var d object
	if err := json.Unmarshal(raw, &d); err != nil || d == nil {
		return nil, invalidf("viewCompanyInfo data must be an object")
	}

	eventID, hasEvent, err := stringField(d, "eventId")
	if err != nil {
		return nil, err
	}
	companyID, hasCompany, err := stringField(d, "companyId")
	if err != nil {
		return nil, err
	}
	if !hasEvent || !hasCompany {
		return nil, invalidf("viewCompanyInfo data needs eventId and companyId")
	}

	if err := validation.ValidateIdentifier("eventId", eventID); err != nil {
		return nil, invalidf("%v", err)
	}
	if err := validation.ValidateIdentifier("companyId", companyID); err != nil {
		return nil, invalidf("%v", err)
	}
	return ViewCompanyInfo{EventID: eventID, CompanyID: companyID}, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Encode serialises t into the envelope JSON that gets encrypted into a token.
// Only well-formed tasks are encoded, so every minted token parses back.
func Encode(t Task) (string, error) {
	if t == nil {
		return "", fmt.Errorf("task cannot be nil")
	}

	data, err := encodeData(t)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(struct {
		Task string `json:"task"`
		Data any    `json:"data"`
	}{
		Task: t.Name(),
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return string(out), nil
}

func encodeData(t Task) (any, error) {
	switch t := t.(type) {
	case Attendance:
		if err := validation.ValidateIdentifier("eventId", t.EventID); err != nil {
			return nil, err
		}
		d := attendanceData{EventID: &t.EventID}
		if t.QuestionnaireID != "" {
			if err := validation.ValidateIdentifier("questionnaireId", t.QuestionnaireID); err != nil {
				return nil, err
			}
			d.QuestionnaireID = &t.QuestionnaireID
		}
		return d, nil
	case ViewDigitalCard:
		if err := validation.ValidateIdentifier("userId", t.UserID); err != nil {
			return nil, err
		}
		return t.UserID, nil
	case ViewCompanyInfo:
		if err := validation.ValidateIdentifier("eventId", t.EventID); err != nil {
			return nil, err
		}
		if err := validation.ValidateIdentifier("companyId", t.CompanyID); err != nil {
			return nil, err
		}
		return companyInfoData{EventID: &t.EventID, CompanyID: &t.CompanyID}, nil
	case Unknown:
		if t.Task == "" {
			return nil, fmt.Errorf("task name cannot be empty")
		}
		if isAbsent(t.Data) {
			return nil, fmt.Errorf("data cannot be empty")
		}
		if !json.Valid(t.Data) {
			return nil, fmt.Errorf("data is not valid json")
		}
		return t.Data, nil
	default:
		return nil, fmt.Errorf("unsupported task type %T", t)
	}
}
