package api

import "time"

// ScanLogEntry - запись журнала сканирований на проводе
type ScanLogEntry struct {
	Timestamp        time.Time `json:"timestamp"`
	ID               string    `json:"id"` // UUID, выдаётся клиентом; повторная отправка не дублирует запись
	Task             string    `json:"task,omitempty"`
	ScanType         string    `json:"scan_type"`
	Result           string    `json:"result"`
	UserID           string    `json:"user_id"`
	TargetID         string    `json:"target_id,omitempty"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	TokenFingerprint string    `json:"token_fingerprint,omitempty"`
}

// ScanLogListResponse - ответ на GET /api/v1/scanlog
type ScanLogListResponse struct {
	Entries []ScanLogEntry `json:"entries"`
}
