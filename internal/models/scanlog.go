package models

import "time"

// ScanType classifies a scan attempt in the audit trail
type ScanType string

const (
	ScanTypeAttendance      ScanType = "attendance"        // Attendance отметка посещения
	ScanTypeViewDigitalCard ScanType = "view_digital_card" // ViewDigitalCard просмотр цифровой визитки
	ScanTypeViewCompanyInfo ScanType = "view_company_info" // ViewCompanyInfo просмотр информации о компании
	ScanTypeUnknown         ScanType = "unknown"           // Unknown валидный конверт с неизвестной задачей
	ScanTypeError           ScanType = "error"             // Error токен не расшифровался или конверт невалиден
)

// ScanResult is the outcome recorded for a scan attempt
type ScanResult string

const (
	ResultSuccess               ScanResult = "success"
	ResultDuplicate             ScanResult = "duplicate"
	ResultQuestionnaireRequired ScanResult = "questionnaire_required"
	ResultInvalidQRCode         ScanResult = "invalid_qr_code"
	ResultDecodeFailed          ScanResult = "decode_failed"
	ResultLedgerError           ScanResult = "ledger_error"
)

// ScanLogEntry is one append-only audit record. Every handled scan by a
// known user produces exactly one entry, whatever its result.
type ScanLogEntry struct {
	Timestamp        time.Time  `json:"timestamp"`
	ID               string     `json:"id"`
	Task             string     `json:"task,omitempty"`
	ScanType         ScanType   `json:"scanType"`
	Result           ScanResult `json:"result"`
	UserID           string     `json:"userId"`             // UserID кто сканировал
	TargetID         string     `json:"targetId,omitempty"` // TargetID что сканировали (событие, визитка, компания)
	ErrorMessage     string     `json:"errorMessage,omitempty"`
	TokenFingerprint string     `json:"tokenFingerprint,omitempty"`
}
