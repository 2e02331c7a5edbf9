package models

import "time"

// TaskAttendance is the task name stored on every attendance record
const TaskAttendance = "attendance"

// AttendanceRecord представляет отметку о посещении мероприятия.
// Ключ записи - пара (EventID, UserID); на одну пару допускается не более одной записи.
type AttendanceRecord struct {
	Timestamp time.Time         `json:"timestamp"`         // Timestamp время отметки (UTC)
	Answers   map[string]string `json:"answers,omitempty"` // Answers ответы на анкету мероприятия: questionID -> ответ
	EventID   string            `json:"eventId"`           // EventID идентификатор мероприятия
	UserID    string            `json:"userId"`            // UserID идентификатор студента
	Task      string            `json:"task"`              // Task всегда TaskAttendance
}

// NewAttendanceRecord builds a record stamped with the attendance task name.
func NewAttendanceRecord(eventID, userID string, at time.Time, answers map[string]string) *AttendanceRecord {
	return &AttendanceRecord{
		EventID:   eventID,
		UserID:    userID,
		Task:      TaskAttendance,
		Timestamp: at.UTC(),
		Answers:   answers,
	}
}
