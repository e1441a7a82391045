package domain

// TemplateKind separates automatic campaign templates from manual ones.
type TemplateKind string

const (
	TemplateKindAuto   TemplateKind = "auto"
	TemplateKindManual TemplateKind = "manual"
)

// MailTemplate is one reusable template within a group. Title is the mail
// subject; Description is operator-facing help text.
type MailTemplate struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Title       LocalizedText `json:"title,omitempty"`
	Description LocalizedText `json:"description,omitempty"`
}

// TemplateGroup bundles an ordered list of templates under a display name.
type TemplateGroup struct {
	ID        string         `json:"id"`
	Name      LocalizedText  `json:"name"`
	Templates []MailTemplate `json:"templates"`
}

// TemplateContent is the email body/subject stored separately from the group
// tree, keyed by (group, template).
type TemplateContent struct {
	GroupID    string        `json:"groupId"`
	TemplateID string        `json:"templateId"`
	Title      LocalizedText `json:"title"`
	Content    LocalizedText `json:"content"`
}

// AutoSendSetting records whether an automatic campaign is enabled. Absence
// of an entry means enabled.
type AutoSendSetting struct {
	GroupID    string `json:"groupId"`
	TemplateID string `json:"templateId"`
	Enabled    bool   `json:"enabled"`
}

// SendGroup is a denormalized audience definition for manual sends.
type SendGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"member_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// MailHistoryStatus classifies a completed send.
type MailHistoryStatus string

const (
	MailHistorySuccess MailHistoryStatus = "success"
	MailHistoryPartial MailHistoryStatus = "partial"
	MailHistoryFailed  MailHistoryStatus = "failed"
)

// MailHistory records the outcome of one send, manual or automatic.
type MailHistory struct {
	ID             string            `json:"id"`
	TemplateName   string            `json:"template_name"`
	GroupName      string            `json:"group_name"`
	RecipientCount int               `json:"recipient_count"`
	SentCount      int               `json:"sent_count"`
	FailedCount    int               `json:"failed_count"`
	Status         MailHistoryStatus `json:"status"`
	CreatedAt      string            `json:"created_at"`
	Succeeded      []string          `json:"succeeded,omitempty"`
	Failed         []string          `json:"failed,omitempty"`
}

// DeriveHistoryStatus maps sent/failed counts to a history status.
func DeriveHistoryStatus(sent, failed int) MailHistoryStatus {
	switch {
	case failed == 0:
		return MailHistorySuccess
	case sent == 0:
		return MailHistoryFailed
	default:
		return MailHistoryPartial
	}
}
