package events

// EventType names a console event.
type EventType string

const (
	EventInquiryAnswered EventType = "inquiry.answered"
	EventMailSent        EventType = "mail.sent"
)

// Event is the published payload envelope.
type Event struct {
	Type    EventType
	Actor   string
	Payload any
}

// InquiryAnsweredPayload accompanies EventInquiryAnswered.
type InquiryAnsweredPayload struct {
	InquiryID  string
	Category   string
	AnswererID string
	AnsweredAt string
}

// MailSentPayload accompanies EventMailSent.
type MailSentPayload struct {
	HistoryID      string
	TemplateName   string
	GroupName      string
	RecipientCount int
	SentCount      int
	FailedCount    int
	Automatic      bool
}
