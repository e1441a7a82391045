package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/analytics"
	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/events"
	"github.com/spec-kit/inquiry-console/internal/persistence"
	"github.com/spec-kit/inquiry-console/internal/repository"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

var serviceNow = time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return serviceNow }

func newInquiryFixture(t *testing.T, records []domain.Inquiry) (*InquiryService, repository.InquiryRepository, events.Dispatcher) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewInquiryRepository(ctx, persistence.NewMemoryStore(), zap.NewNop())
	if records != nil {
		repo.Replace(ctx, records)
	}
	dispatcher := events.NewInMemoryDispatcher()
	return NewInquiryService(repo, dispatcher, fixedClock), repo, dispatcher
}

func pendingRecord(id string) domain.Inquiry {
	return domain.Inquiry{
		ID:        id,
		Category:  domain.CategoryPayment,
		UserType:  domain.UserTypeStudent,
		UserID:    "user-" + id,
		UserName:  "User " + id,
		UserEmail: id + "@example.com",
		Title:     "title " + id,
		Content:   "content " + id,
		CreatedAt: "2026-08-27T10:00:00Z",
		Status:    domain.StatusPending,
	}
}

func TestListSummaryIgnoresStatusTab(t *testing.T) {
	records := []domain.Inquiry{pendingRecord("q-1"), pendingRecord("q-2")}
	answered := pendingRecord("q-3")
	answered.Status = domain.StatusAnswered
	records = append(records, answered)

	svc, _, _ := newInquiryFixture(t, records)

	result := svc.List(context.Background(), ListInput{
		Filter: analytics.Filter{Status: string(domain.StatusPending)},
	}, domain.LocaleKo)

	// the summary counts the whole filtered set, the tab narrows the rows
	assert.Equal(t, 3, result.Summary.Total)
	assert.Equal(t, 2, result.Summary.Pending)
	assert.Equal(t, 1, result.Summary.Answered)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.Total)
}

func TestListPaginatesAndReportsPageCount(t *testing.T) {
	var records []domain.Inquiry
	for i := 0; i < 25; i++ {
		records = append(records, pendingRecord(fmt.Sprintf("q-%02d", i)))
	}
	svc, _, _ := newInquiryFixture(t, records)

	result := svc.List(context.Background(), ListInput{Page: 2, PageSize: 10, Sort: "id", Dir: analytics.SortAsc}, domain.LocaleKo)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, 3, result.PageCount)
	assert.Equal(t, 25, result.Total)
	assert.Empty(t, result.Message)
}

func TestListEmptyResultCarriesLocalizedMessage(t *testing.T) {
	svc, _, _ := newInquiryFixture(t, []domain.Inquiry{})

	result := svc.List(context.Background(), ListInput{}, domain.LocaleKo)
	assert.Equal(t, "조회된 데이터가 없습니다.", result.Message)

	en := svc.List(context.Background(), ListInput{}, domain.LocaleEn)
	assert.NotEmpty(t, en.Message)
	assert.NotEqual(t, result.Message, en.Message)
}

func TestAnswerValidatesAndPublishes(t *testing.T) {
	svc, repo, dispatcher := newInquiryFixture(t, []domain.Inquiry{pendingRecord("q-1")})

	var published []events.Event
	dispatcher.Subscribe(events.EventInquiryAnswered, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	_, err := svc.Answer(context.Background(), "q-1", "   ", "admin-01")
	requireDomainCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Answer(context.Background(), "q-1", "content", "")
	requireDomainCode(t, err, "VALIDATION_FAILED")

	answered, err := svc.Answer(context.Background(), "q-1", "  resolved  ", "admin-01")
	require.NoError(t, err)
	assert.Equal(t, "resolved", answered.AnswerContent)
	assert.Equal(t, serviceNow.Format(time.RFC3339), answered.AnsweredAt)

	require.Len(t, published, 1)
	assert.Equal(t, "admin-01", published[0].Actor)

	// re-answering is a conflict, not an overwrite
	_, err = svc.Answer(context.Background(), "q-1", "again", "admin-02")
	requireDomainCode(t, err, "CONFLICT")

	q, err := repo.GetByID(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, "resolved", q.AnswerContent)

	_, err = svc.Answer(context.Background(), "missing", "content", "admin-01")
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestExportCSVRespectsFilterAndTab(t *testing.T) {
	records := []domain.Inquiry{pendingRecord("q-1")}
	answered := pendingRecord("q-2")
	answered.Status = domain.StatusAnswered
	records = append(records, answered)

	svc, _, _ := newInquiryFixture(t, records)

	out := svc.ExportCSV(context.Background(), ListInput{
		Filter: analytics.Filter{Status: string(domain.StatusAnswered)},
	}, domain.LocaleEn)

	assert.Contains(t, out, "q-2")
	assert.NotContains(t, out, "q-1,")
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, code, domainErr.Code)
}
