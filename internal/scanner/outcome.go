package scanner

import (
	"strconv"

	"github.com/iudanet/fairscan/internal/models"
)

// Screens a navigation intent can point at
const (
	ScreenDigitalCard      = "DigitalCard"
	ScreenEventCompanyInfo = "EventCompanyInfo"
	ScreenEventForm        = "EventForm"
	ScreenQRRecorded       = "QRRecorded"
)

// Intent parameter names
const (
	ParamUserID          = "userId"
	ParamEventID         = "eventId"
	ParamCompanyID       = "companyId"
	ParamQuestionnaireID = "questionnaireId"
	ParamMessage         = "message"
	ParamSuccess         = "success"
)

// Intent asks the navigation layer to open Screen with Params
type Intent struct {
	Params map[string]string `json:"params"`
	Screen string            `json:"screen"`
}

// Message is a user-visible alert
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// User-facing messages
var (
	MsgNotRecognized = Message{Title: "Invalid QR Code", Body: "This QR code is not recognized."}
	MsgUnreadable    = Message{Title: "Error", Body: "Failed to process the QR code. Please try again."}
	MsgAlreadyDone   = Message{Title: "Already Recorded", Body: "Your attendance for this event has already been recorded."}
	MsgLedgerFailed  = Message{Title: "Error", Body: "Could not record attendance. Please try again."}
	MsgSignInNeeded  = Message{Title: "Error", Body: "You must be signed in to record attendance."}
)

// AttendanceRecordedText is shown on the confirmation screen after a direct attendance write
const AttendanceRecordedText = "Attendance recorded successfully!"

// OutcomeKind classifies how a decode event ended
type OutcomeKind int

const (
	// OutcomeIgnored - событие пришло не в StateScanning
	OutcomeIgnored OutcomeKind = iota
	// OutcomeNavigate - скан завершён переходом
	OutcomeNavigate
	// OutcomeRecoverable - показано сообщение, сканирование продолжается
	OutcomeRecoverable
	// OutcomeDiscarded - экран ушёл во время обработки, результат отброшен
	OutcomeDiscarded
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNavigate:
		return "navigate"
	case OutcomeRecoverable:
		return "recoverable"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "outcome(" + strconv.Itoa(int(k)) + ")"
	}
}

// Outcome is the result of one HandleDecode call.
// Intent is set only for OutcomeNavigate, Message only for OutcomeRecoverable.
type Outcome struct {
	Intent  *Intent
	Message *Message
	Result  models.ScanResult
	Kind    OutcomeKind
}

func navigate(result models.ScanResult, screen string, params map[string]string) Outcome {
	return Outcome{
		Kind:   OutcomeNavigate,
		Result: result,
		Intent: &Intent{Screen: screen, Params: params},
	}
}

func recoverable(result models.ScanResult, msg Message) Outcome {
	return Outcome{Kind: OutcomeRecoverable, Result: result, Message: &msg}
}

func discarded() Outcome {
	return Outcome{Kind: OutcomeDiscarded}
}
