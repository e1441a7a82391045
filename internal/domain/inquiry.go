package domain

import "time"

// InquiryCategory enumerates the fixed inquiry categories.
type InquiryCategory string

const (
	CategoryLearning          InquiryCategory = "Learning"
	CategoryPayment           InquiryCategory = "Payment"
	CategoryInstructor        InquiryCategory = "Instructor"
	CategoryContent           InquiryCategory = "Content"
	CategoryAIChatbot         InquiryCategory = "AI_Chatbot"
	CategoryTest              InquiryCategory = "Test"
	CategoryDashboard         InquiryCategory = "Dashboard"
	CategoryInstructorSupport InquiryCategory = "InstructorSupport"
	CategoryPackageEvent      InquiryCategory = "PackageEvent"
)

// Categories lists every known category in display order.
func Categories() []InquiryCategory {
	return []InquiryCategory{
		CategoryLearning,
		CategoryPayment,
		CategoryInstructor,
		CategoryContent,
		CategoryAIChatbot,
		CategoryTest,
		CategoryDashboard,
		CategoryInstructorSupport,
		CategoryPackageEvent,
	}
}

// UserType enumerates submitter kinds.
type UserType string

const (
	UserTypeStudent    UserType = "Student"
	UserTypeInstructor UserType = "Instructor"
	UserTypePartner    UserType = "Partner"
)

// InquiryStatus enumerates the two lifecycle states. The only transition is
// Pending -> Answered and it is one-way.
type InquiryStatus string

const (
	StatusPending  InquiryStatus = "Pending"
	StatusAnswered InquiryStatus = "Answered"
)

// Attachment is file metadata carried inline on an inquiry.
type Attachment struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Inquiry is the central entity of the console. Timestamps are RFC3339
// strings so they sort lexicographically and round-trip the stored JSON
// unchanged.
type Inquiry struct {
	ID            string          `json:"id"`
	Category      InquiryCategory `json:"category"`
	UserType      UserType        `json:"user_type"`
	UserID        string          `json:"user_id"`
	UserName      string          `json:"user_name"`
	UserNickname  string          `json:"user_nickname,omitempty"`
	UserEmail     string          `json:"user_email"`
	UserCountry   string          `json:"user_country"`
	UserGender    string          `json:"user_gender"`
	UserAge       int             `json:"user_age"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	HasAttachment bool            `json:"has_attachment"`
	Attachments   []Attachment    `json:"attachments,omitempty"`
	CreatedAt     string          `json:"created_at"`
	Status        InquiryStatus   `json:"status"`
	AnswerContent string          `json:"answer_content,omitempty"`
	AnswererID    string          `json:"answerer_id,omitempty"`
	AnsweredAt    string          `json:"answered_at,omitempty"`
}

// Answered reports whether the record is in the terminal state.
func (q Inquiry) Answered() bool {
	return q.Status == StatusAnswered
}

// CreatedTime parses created_at. The second return is false for malformed
// timestamps; callers treat those records as non-matching rather than failing.
func (q Inquiry) CreatedTime() (time.Time, bool) {
	return parseTimestamp(q.CreatedAt)
}

// AnsweredTime parses answered_at when present.
func (q Inquiry) AnsweredTime() (time.Time, bool) {
	if q.AnsweredAt == "" {
		return time.Time{}, false
	}
	return parseTimestamp(q.AnsweredAt)
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
