package i18n

import "github.com/spec-kit/inquiry-console/internal/domain"

var categoryLabels = map[domain.InquiryCategory]domain.LocalizedText{
	domain.CategoryLearning:          {Ko: "학습", En: "Learning", Vi: "Học tập"},
	domain.CategoryPayment:           {Ko: "결제", En: "Payment", Vi: "Thanh toán"},
	domain.CategoryInstructor:        {Ko: "강사", En: "Instructor", Vi: "Giảng viên"},
	domain.CategoryContent:           {Ko: "콘텐츠", En: "Content", Vi: "Nội dung"},
	domain.CategoryAIChatbot:         {Ko: "AI 챗봇", En: "AI Chatbot", Vi: "Chatbot AI"},
	domain.CategoryTest:              {Ko: "시험", En: "Test", Vi: "Bài kiểm tra"},
	domain.CategoryDashboard:         {Ko: "대시보드", En: "Dashboard", Vi: "Bảng điều khiển"},
	domain.CategoryInstructorSupport: {Ko: "강사 지원", En: "Instructor Support", Vi: "Hỗ trợ giảng viên"},
	domain.CategoryPackageEvent:      {Ko: "패키지/이벤트", En: "Package/Event", Vi: "Gói/Sự kiện"},
}

var userTypeLabels = map[domain.UserType]domain.LocalizedText{
	domain.UserTypeStudent:    {Ko: "학생", En: "Student", Vi: "Học viên"},
	domain.UserTypeInstructor: {Ko: "강사", En: "Instructor", Vi: "Giảng viên"},
	domain.UserTypePartner:    {Ko: "파트너", En: "Partner", Vi: "Đối tác"},
}

var statusLabels = map[domain.InquiryStatus]domain.LocalizedText{
	domain.StatusPending:  {Ko: "대기중", En: "Pending", Vi: "Đang chờ"},
	domain.StatusAnswered: {Ko: "답변완료", En: "Answered", Vi: "Đã trả lời"},
}

// Country labels cover the markets the service operates in; unknown codes
// fall back to the raw code.
var countryLabels = map[string]domain.LocalizedText{
	"KR": {Ko: "한국", En: "South Korea", Vi: "Hàn Quốc"},
	"VN": {Ko: "베트남", En: "Vietnam", Vi: "Việt Nam"},
	"US": {Ko: "미국", En: "United States", Vi: "Hoa Kỳ"},
	"JP": {Ko: "일본", En: "Japan", Vi: "Nhật Bản"},
	"CN": {Ko: "중국", En: "China", Vi: "Trung Quốc"},
	"TH": {Ko: "태국", En: "Thailand", Vi: "Thái Lan"},
	"ID": {Ko: "인도네시아", En: "Indonesia", Vi: "Indonesia"},
}

// NoDataMessage is the empty-table message.
var NoDataMessage = domain.LocalizedText{
	Ko: "조회된 데이터가 없습니다.",
	En: "No data found.",
	Vi: "Không tìm thấy dữ liệu.",
}

var attachmentNone = domain.LocalizedText{Ko: "없음", En: "none", Vi: "không có"}
var attachmentPresent = domain.LocalizedText{Ko: "있음", En: "present", Vi: "có"}

// CategoryLabel returns the localized label for a category, falling back to
// the raw enum value.
func CategoryLabel(category domain.InquiryCategory, locale domain.Locale) string {
	if label, ok := categoryLabels[category]; ok {
		return label.Get(locale)
	}
	return string(category)
}

// UserTypeLabel returns the localized user-type label.
func UserTypeLabel(userType domain.UserType, locale domain.Locale) string {
	if label, ok := userTypeLabels[userType]; ok {
		return label.Get(locale)
	}
	return string(userType)
}

// StatusLabel returns the localized status label.
func StatusLabel(status domain.InquiryStatus, locale domain.Locale) string {
	if label, ok := statusLabels[status]; ok {
		return label.Get(locale)
	}
	return string(status)
}

// CountryLabel returns the localized country name for an ISO-like code.
func CountryLabel(code string, locale domain.Locale) string {
	if label, ok := countryLabels[code]; ok {
		return label.Get(locale)
	}
	return code
}

// AttachmentLabel renders the CSV attachment column: the filename list when
// present, otherwise the localized none/present markers.
func AttachmentLabel(q domain.Inquiry, locale domain.Locale) string {
	if !q.HasAttachment {
		return attachmentNone.Get(locale)
	}
	if len(q.Attachments) == 0 {
		return attachmentPresent.Get(locale)
	}
	names := make([]byte, 0, 64)
	for i, att := range q.Attachments {
		if i > 0 {
			names = append(names, ';', ' ')
		}
		names = append(names, att.Filename...)
	}
	return string(names)
}
