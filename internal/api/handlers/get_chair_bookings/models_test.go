package get_chair_bookings

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest_DateShorthand(t *testing.T) {
	query := url.Values{}
	query.Set("date", "2026-09-16")

	req := ToServiceRequest(1, query)

	require.NotNil(t, req.StartDate)
	require.NotNil(t, req.EndDate)
	assert.Equal(t, "2026-09-16", *req.StartDate)
	assert.Equal(t, "2026-09-16", *req.EndDate)
	assert.Nil(t, req.Status)
	assert.False(t, req.IncludeInactive)
}

func TestToServiceRequest_ExplicitRangeAndStatus(t *testing.T) {
	query := url.Values{}
	query.Set("startDate", "2026-09-01")
	query.Set("endDate", "2026-09-30")
	query.Set("status", "confirmed")
	query.Set("includeInactive", "true")

	req := ToServiceRequest(2, query)

	assert.Equal(t, int64(2), req.ChairID)
	require.NotNil(t, req.StartDate)
	require.NotNil(t, req.EndDate)
	assert.Equal(t, "2026-09-01", *req.StartDate)
	assert.Equal(t, "2026-09-30", *req.EndDate)
	require.NotNil(t, req.Status)
	assert.Equal(t, "confirmed", *req.Status)
	assert.True(t, req.IncludeInactive)
}

func TestToServiceRequest_NoFilters(t *testing.T) {
	req := ToServiceRequest(3, url.Values{})

	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
	assert.Nil(t, req.Status)
}
