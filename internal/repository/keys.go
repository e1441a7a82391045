package repository

// Storage keys. These match the blobs written by earlier versions of the
// console, so existing data loads unchanged.
const (
	KeyInquiries        = "inquiries"
	KeyMailTemplates    = "mail_templates"
	KeyAutoSendSettings = "mail_auto_send_settings"
	KeyAutoMailGroups   = "auto_mail_groups"
	KeyManualMailGroups = "manual_mail_groups"
	KeyManualHistory    = "manual_mail_history"
	KeySendGroups       = "send_groups"
	KeyAuthToken        = "auth_token"
)
