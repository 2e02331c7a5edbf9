// Package task defines the action carried inside a task token: a closed set
// of known task kinds plus Unknown for names this build does not recognise.
package task

import (
	"context"
	"encoding/json"
)

// Names of the known tasks as they appear in the envelope's "task" field.
const (
	NameAttendance      = "attendance"
	NameViewDigitalCard = "viewDigitalCard"
	NameViewCompanyInfo = "viewCompanyInfo"
)

// Task is a decoded envelope. The implementations below are the only ones;
// code that needs to act on a task goes through Visit.
type Task interface {
	// Name returns the envelope's task name
	Name() string
	isTask()
}

// Attendance records that the scanning user attended an event.
// A non-empty QuestionnaireID hands the user off to the event form first.
type Attendance struct {
	EventID         string
	QuestionnaireID string
}

// ViewDigitalCard opens the digital contact card of UserID.
type ViewDigitalCard struct {
	UserID string
}

// ViewCompanyInfo opens a company's page for an event.
type ViewCompanyInfo struct {
	EventID   string
	CompanyID string
}

// Unknown is a well-formed envelope whose task name is not recognised.
// It is routed to the default handler, not treated as an error.
type Unknown struct {
	Task string
	Data json.RawMessage
}

func (Attendance) Name() string      { return NameAttendance }
func (ViewDigitalCard) Name() string { return NameViewDigitalCard }
func (ViewCompanyInfo) Name() string { return NameViewCompanyInfo }
func (u Unknown) Name() string       { return u.Task }

func (Attendance) isTask()      {}
func (ViewDigitalCard) isTask() {}
func (ViewCompanyInfo) isTask() {}
func (Unknown) isTask()         {}

// RequiresQuestionnaire reports whether the attendance must go through the form flow
func (a Attendance) RequiresQuestionnaire() bool {
	return a.QuestionnaireID != ""
}

// Visitor handles every task kind. Adding a kind adds a method here, so
// each handler set stops compiling until it covers the new kind.
type Visitor[R any] interface {
	Attendance(ctx context.Context, t Attendance) R
	ViewDigitalCard(ctx context.Context, t ViewDigitalCard) R
	ViewCompanyInfo(ctx context.Context, t ViewCompanyInfo) R
	Unknown(ctx context.Context, t Unknown) R
}

// Visit routes t to the matching Visitor method.
func Visit[R any](ctx context.Context, t Task, v Visitor[R]) R {
	switch t := t.(type) {
	case Attendance:
		return v.Attendance(ctx, t)
	case ViewDigitalCard:
		return v.ViewDigitalCard(ctx, t)
	case ViewCompanyInfo:
		return v.ViewCompanyInfo(ctx, t)
	case Unknown:
		return v.Unknown(ctx, t)
	}

	// Недостижимо для значений из Parse; nil тоже уходит в default handler
	name := ""
	if t != nil {
		name = t.Name()
	}
	return v.Unknown(ctx, Unknown{Task: name})
}
