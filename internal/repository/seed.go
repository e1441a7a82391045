package repository

import "github.com/spec-kit/inquiry-console/internal/domain"

// seedInquiries is the fallback dataset used when no inquiries blob exists.
func seedInquiries() []domain.Inquiry {
	return []domain.Inquiry{
		{
			ID:            "INQ-0001",
			Category:      domain.CategoryLearning,
			UserType:      domain.UserTypeStudent,
			UserID:        "student-1024",
			UserName:      "김민지",
			UserEmail:     "minji.kim@example.com",
			UserCountry:   "KR",
			UserGender:    "F",
			UserAge:       24,
			Title:         "강의 영상이 재생되지 않습니다",
			Content:       "3강부터 영상이 로딩만 되고 재생이 안 됩니다.",
			CreatedAt:     "2026-08-20T09:15:00Z",
			Status:        domain.StatusAnswered,
			AnswerContent: "브라우저 캐시를 삭제한 후 다시 시도해 주세요. 문제가 계속되면 알려주세요.",
			AnswererID:    "admin-01",
			AnsweredAt:    "2026-08-20T11:40:00Z",
		},
		{
			ID:          "INQ-0002",
			Category:    domain.CategoryPayment,
			UserType:    domain.UserTypeStudent,
			UserID:      "student-2210",
			UserName:    "Nguyen Thi Lan",
			UserEmail:   "lan.nguyen@example.com",
			UserCountry: "VN",
			UserGender:  "F",
			UserAge:     21,
			Title:       "Thanh toán bị trừ tiền hai lần",
			Content:     "Tôi đã bị trừ tiền hai lần cho cùng một khóa học.",
			CreatedAt:   "2026-08-22T03:30:00Z",
			Status:      domain.StatusPending,
		},
		{
			ID:            "INQ-0003",
			Category:      domain.CategoryInstructor,
			UserType:      domain.UserTypeInstructor,
			UserID:        "instructor-88",
			UserName:      "박서준",
			UserNickname:  "sjpark",
			UserEmail:     "sj.park@example.com",
			UserCountry:   "KR",
			UserGender:    "M",
			UserAge:       37,
			Title:         "정산 내역 확인 요청",
			Content:       "7월 정산 금액이 예상과 다릅니다. 상세 내역을 확인하고 싶습니다.",
			HasAttachment: true,
			Attachments: []domain.Attachment{
				{Filename: "settlement_july.xlsx", Size: 24576},
			},
			CreatedAt: "2026-08-23T14:05:00Z",
			Status:    domain.StatusPending,
		},
		{
			ID:            "INQ-0004",
			Category:      domain.CategoryAIChatbot,
			UserType:      domain.UserTypeStudent,
			UserID:        "student-3301",
			UserName:      "John Carter",
			UserEmail:     "j.carter@example.com",
			UserCountry:   "US",
			UserGender:    "M",
			UserAge:       29,
			Title:         "Chatbot gives answers in the wrong language",
			Content:       "I set my locale to English but the AI tutor keeps replying in Korean.",
			CreatedAt:     "2026-08-24T18:45:00Z",
			Status:        domain.StatusAnswered,
			AnswerContent: "We deployed a fix for the locale detection. Please sign out and back in.",
			AnswererID:    "admin-02",
			AnsweredAt:    "2026-08-25T02:10:00Z",
		},
		{
			ID:          "INQ-0005",
			Category:    domain.CategoryTest,
			UserType:    domain.UserTypeStudent,
			UserID:      "student-4092",
			UserName:    "Tran Van Minh",
			UserEmail:   "minh.tran@example.com",
			UserCountry: "VN",
			UserGender:  "M",
			UserAge:     19,
			Title:       "Bài kiểm tra không lưu kết quả",
			Content:     "Tôi đã hoàn thành bài kiểm tra cấp độ nhưng kết quả không được lưu.",
			CreatedAt:   "2026-08-25T07:20:00Z",
			Status:      domain.StatusPending,
		},
		{
			ID:          "INQ-0006",
			Category:    domain.CategoryDashboard,
			UserType:    domain.UserTypePartner,
			UserID:      "partner-12",
			UserName:    "이수현",
			UserEmail:   "sh.lee@example.com",
			UserCountry: "KR",
			UserGender:  "F",
			UserAge:     41,
			Title:       "대시보드 수강생 통계 오류",
			Content:     "파트너 대시보드의 수강생 수가 실제와 다르게 표시됩니다.",
			CreatedAt:   "2026-08-26T10:00:00Z",
			Status:      domain.StatusPending,
		},
		{
			ID:            "INQ-0007",
			Category:      domain.CategoryContent,
			UserType:      domain.UserTypeStudent,
			UserID:        "student-5120",
			UserName:      "Sato Yuki",
			UserEmail:     "yuki.sato@example.com",
			UserCountry:   "JP",
			UserGender:    "F",
			UserAge:       26,
			Title:         "자막 오타 제보",
			Content:       "12강 자막에 오타가 여러 군데 있습니다.",
			CreatedAt:     "2026-08-27T01:55:00Z",
			Status:        domain.StatusAnswered,
			AnswerContent: "제보 감사합니다. 자막을 수정하여 재업로드했습니다.",
			AnswererID:    "admin-01",
			AnsweredAt:    "2026-08-27T06:30:00Z",
		},
		{
			ID:          "INQ-0008",
			Category:    domain.CategoryPackageEvent,
			UserType:    domain.UserTypeStudent,
			UserID:      "student-6004",
			UserName:    "최다은",
			UserEmail:   "de.choi@example.com",
			UserCountry: "KR",
			UserGender:  "F",
			UserAge:     22,
			Title:       "이벤트 쿠폰이 적용되지 않아요",
			Content:     "여름 패키지 이벤트 쿠폰을 입력해도 할인이 적용되지 않습니다.",
			CreatedAt:   "2026-08-27T12:40:00Z",
			Status:      domain.StatusPending,
		},
	}
}
