package api

import "time"

// AttendanceStatusResponse - ответ на GET /api/v1/events/{eventID}/attendance/{userID}
type AttendanceStatusResponse struct {
	Exists bool `json:"exists"`
}

// CreateAttendanceRequest - тело PUT /api/v1/events/{eventID}/attendance/{userID}.
// Пара (eventID, userID) берётся из пути
type CreateAttendanceRequest struct {
	Timestamp time.Time         `json:"timestamp"`         // время отметки; нулевое - время сервера
	Answers   map[string]string `json:"answers,omitempty"` // ответы на анкету: question_id -> ответ
}

// AttendanceRecord представляет записанное посещение
type AttendanceRecord struct {
	Timestamp time.Time         `json:"timestamp"`
	Answers   map[string]string `json:"answers,omitempty"`
	EventID   string            `json:"event_id"`
	UserID    string            `json:"user_id"`
	Task      string            `json:"task"`
}
