package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/inquiry-console/internal/analytics"
	"github.com/spec-kit/inquiry-console/internal/repository"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// AnalyticsService binds the repository state to the pure aggregators. All
// results are recomputed on read; record counts are small enough that no
// caching is needed.
type AnalyticsService struct {
	inquiries repository.InquiryRepository
	clock     func() time.Time
}

// NewAnalyticsService constructs the service. clock may be nil for wall time.
func NewAnalyticsService(inquiries repository.InquiryRepository, clock func() time.Time) *AnalyticsService {
	if clock == nil {
		clock = time.Now
	}
	return &AnalyticsService{inquiries: inquiries, clock: clock}
}

// Buckets computes the time-bucketed answered/pending series.
func (s *AnalyticsService) Buckets(ctx context.Context, opts analytics.BucketOptions) analytics.BucketSeries {
	return analytics.Buckets(s.inquiries.List(ctx), opts, s.clock())
}

// Drilldown breaks one bucket down by category, user type and country.
func (s *AnalyticsService) Drilldown(ctx context.Context, opts analytics.BucketOptions, index int) (analytics.BucketDrilldown, error) {
	records := s.inquiries.List(ctx)
	series := analytics.Buckets(records, opts, s.clock())
	if index < 0 || index >= len(series.IDs) {
		return analytics.BucketDrilldown{}, apperrors.NewValidationError("bucket index out of range", map[string]any{"index": index})
	}
	return analytics.Drilldown(records, series.IDs[index]), nil
}

// Hourly computes the hour-of-day distribution grid.
func (s *AnalyticsService) Hourly(ctx context.Context, opts analytics.BucketOptions, filter analytics.HourlyFilter) (analytics.HourlyGrid, error) {
	grid, err := analytics.Hourly(s.inquiries.List(ctx), opts, filter, s.clock())
	if err != nil {
		if errors.Is(err, analytics.ErrMultipleDimensions) {
			return analytics.HourlyGrid{}, apperrors.NewValidationError(err.Error(), nil)
		}
		return analytics.HourlyGrid{}, apperrors.MapError(err)
	}
	return grid, nil
}

// ProcessingTime computes per-category, per-responder resolution averages.
func (s *AnalyticsService) ProcessingTime(ctx context.Context, period analytics.ProcessingPeriod) []analytics.CategoryProcessing {
	return analytics.ProcessingTime(s.inquiries.List(ctx), period, s.clock())
}
