package analytics

import (
	"strings"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/i18n"
)

var csvHeaders = map[domain.Locale][]string{
	domain.LocaleKo: {"ID", "카테고리", "사용자 ID", "사용자 이름", "이메일", "사용자 유형", "제목", "내용", "첨부파일", "국가", "접수일", "상태", "답변자 ID", "답변일", "답변 내용"},
	domain.LocaleEn: {"ID", "Category", "User ID", "User Name", "Email", "User Type", "Title", "Content", "Attachment", "Country", "Created", "Status", "Answerer ID", "Answered", "Answer"},
	domain.LocaleVi: {"ID", "Danh mục", "ID người dùng", "Tên người dùng", "Email", "Loại người dùng", "Tiêu đề", "Nội dung", "Tệp đính kèm", "Quốc gia", "Ngày tạo", "Trạng thái", "ID người trả lời", "Ngày trả lời", "Nội dung trả lời"},
}

// ExportCSV serializes records to a CSV string: UTF-8 BOM, one header row,
// fixed column order. Only the free-text columns (title, content, answer
// content) are quoted, with internal double quotes doubled; everything else
// is emitted raw.
func ExportCSV(records []domain.Inquiry, locale domain.Locale) string {
	headers, ok := csvHeaders[locale]
	if !ok {
		headers = csvHeaders[domain.LocaleKo]
	}

	var sb strings.Builder
	sb.WriteString("\uFEFF")
	sb.WriteString(strings.Join(headers, ","))
	sb.WriteString("\n")

	for _, q := range records {
		row := []string{
			q.ID,
			i18n.CategoryLabel(q.Category, locale),
			q.UserID,
			q.UserName,
			q.UserEmail,
			i18n.UserTypeLabel(q.UserType, locale),
			quoteCSV(q.Title),
			quoteCSV(q.Content),
			i18n.AttachmentLabel(q, locale),
			i18n.CountryLabel(q.UserCountry, locale),
			dateOnlyString(q.CreatedAt),
			i18n.StatusLabel(q.Status, locale),
			q.AnswererID,
			dateOnlyString(q.AnsweredAt),
			quoteCSV(q.AnswerContent),
		}
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}
	return sb.String()
}

func quoteCSV(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func dateOnlyString(timestamp string) string {
	if len(timestamp) >= 10 {
		return timestamp[:10]
	}
	return timestamp
}
