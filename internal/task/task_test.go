package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder returns the name of the visitor method that was called
type recorder struct{}

func (recorder) Attendance(_ context.Context, t Attendance) string {
	return "attendance:" + t.EventID
}

func (recorder) ViewDigitalCard(_ context.Context, t ViewDigitalCard) string {
	return "card:" + t.UserID
}

func (recorder) ViewCompanyInfo(_ context.Context, t ViewCompanyInfo) string {
	return "company:" + t.CompanyID
}

func (recorder) Unknown(_ context.Context, t Unknown) string {
	return "unknown:" + t.Task
}

func TestVisit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		task Task
		name string
		want string
	}{
		{name: "attendance", task: Attendance{EventID: "e1"}, want: "attendance:e1"},
		{name: "card", task: ViewDigitalCard{UserID: "u1"}, want: "card:u1"},
		{name: "company", task: ViewCompanyInfo{EventID: "e1", CompanyID: "c1"}, want: "company:c1"},
		{name: "unknown", task: Unknown{Task: "openDoor"}, want: "unknown:openDoor"},
		{name: "nil goes to default", task: nil, want: "unknown:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, Visit[string](ctx, tt.task, recorder{}))
			})
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, NameAttendance, Attendance{}.Name())
	assert.Equal(t, NameViewDigitalCard, ViewDigitalCard{}.Name())
	assert.Equal(t, NameViewCompanyInfo, ViewCompanyInfo{}.Name())
	assert.Equal(t, "custom", Unknown{Task: "custom"}.Name())

	assert.True(t, Attendance{EventID: "e", QuestionnaireID: "q"}.RequiresQuestionnaire())
	assert.False(t, Attendance{EventID: "e"}.RequiresQuestionnaire())
}
