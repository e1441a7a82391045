package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

func TestPageBoundaries(t *testing.T) {
	records := make([]domain.Inquiry, 25)
	for i := range records {
		records[i] = makeInquiry(fmt.Sprintf("q-%02d", i), domain.CategoryPayment, "2026-08-15T10:00:00Z", false)
	}

	first := Page(records, 0, 10)
	require.Len(t, first, 10)
	assert.Equal(t, "q-00", first[0].ID)

	last := Page(records, 2, 10)
	require.Len(t, last, 5)
	assert.Equal(t, "q-20", last[0].ID)
	assert.Equal(t, "q-24", last[4].ID)

	assert.Empty(t, Page(records, 3, 10))
	assert.Empty(t, Page(records, -1, 10))
	assert.Empty(t, Page(records, 0, 0))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 3, PageCount(25, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 0, PageCount(10, 0))
}
