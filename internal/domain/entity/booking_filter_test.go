package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingFilterNormalizeDefaults(t *testing.T) {
	f := &BookingFilter{}
	f.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, "created_at", f.SortBy)
	assert.Equal(t, "desc", f.SortOrder)
}

func TestBookingFilterNormalizeBounds(t *testing.T) {
	f := &BookingFilter{Page: -3, Limit: 500}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)

	f = &BookingFilter{Page: 4, Limit: 100}
	f.Normalize()
	assert.Equal(t, 4, f.Page)
	assert.Equal(t, 100, f.Limit)
	assert.Equal(t, 300, f.Offset())
}

func TestBookingFilterSortWhitelist(t *testing.T) {
	for _, col := range []string{"booking_date", "start_time", "status", "created_at"} {
		f := &BookingFilter{SortBy: col, SortOrder: "asc"}
		f.Normalize()
		assert.Equal(t, col, f.SortBy)
		assert.Equal(t, "asc", f.SortOrder)
	}

	// Anything outside the whitelist falls back, never reaches SQL
	f := &BookingFilter{SortBy: "payment_confirmation; DROP TABLE bookings", SortOrder: "sideways"}
	f.Normalize()
	assert.Equal(t, "created_at", f.SortBy)
	assert.Equal(t, "desc", f.SortOrder)
}
