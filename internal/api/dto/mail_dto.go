package dto

import "github.com/spec-kit/inquiry-console/internal/domain"

// GroupRequest creates or renames a template group.
type GroupRequest struct {
	Name domain.LocalizedText `json:"name"`
}

// TemplateRequest creates or updates a template inside a group.
type TemplateRequest struct {
	Name        domain.LocalizedText `json:"name"`
	Title       domain.LocalizedText `json:"title"`
	Description domain.LocalizedText `json:"description"`
}

// ContentRequest stores a template's subject/body.
type ContentRequest struct {
	Title   domain.LocalizedText `json:"title"`
	Content domain.LocalizedText `json:"content"`
}

// AutoSendRequest toggles an automatic campaign.
type AutoSendRequest struct {
	GroupID    string `json:"groupId"`
	TemplateID string `json:"templateId"`
	Enabled    bool   `json:"enabled"`
}

// SendGroupRequest creates or updates an audience definition.
type SendGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
}

// SendRequest runs a manual campaign.
type SendRequest struct {
	SendGroupID     string   `json:"send_group_id"`
	TemplateGroupID string   `json:"template_group_id"`
	TemplateID      string   `json:"template_id"`
	Recipients      []string `json:"recipients"`
}
