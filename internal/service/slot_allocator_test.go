package service

import (
	"testing"

	"go-training-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotBooking(start string, durationHours float64) entity.Booking {
	return entity.Booking{
		ID:            uuid.New(),
		StartTime:     start,
		DurationHours: durationHours,
		Status:        entity.BookingStatusPendingApproval,
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 540, 660, 540, 660, true},
		{"contained", 540, 660, 570, 600, true},
		{"partial front", 540, 660, 500, 570, true},
		{"partial back", 540, 660, 630, 720, true},
		{"disjoint before", 540, 660, 400, 500, false},
		{"disjoint after", 540, 660, 700, 800, false},
		{"touching end to start", 540, 660, 660, 720, false},
		{"touching start to end", 540, 660, 480, 540, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Symmetric
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestFindConflictFreeDay(t *testing.T) {
	conflict, err := FindConflict(nil, 540, 660)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindConflictOverlap(t *testing.T) {
	existing := []entity.Booking{
		slotBooking("09:00", 2), // 540-660
		slotBooking("14:00", 1), // 840-900
	}

	// 10:00-11:00 collides with the 09:00 session
	conflict, err := FindConflict(existing, 600, 660)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, existing[0].ID, conflict.ID)

	// 12:00-13:00 fits between the two
	conflict, err = FindConflict(existing, 720, 780)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

// Back-to-back sessions are legal: one ends exactly when the next starts.
func TestFindConflictTouchingSlots(t *testing.T) {
	existing := []entity.Booking{
		slotBooking("09:00", 2), // 540-660
	}

	// 11:00-12:00 starts exactly at the existing end
	conflict, err := FindConflict(existing, 660, 720)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// 08:00-09:00 ends exactly at the existing start
	conflict, err = FindConflict(existing, 480, 540)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindConflictHalfHourGranularity(t *testing.T) {
	existing := []entity.Booking{
		slotBooking("10:00", 0.5), // 600-630
	}

	conflict, err := FindConflict(existing, 615, 645)
	require.NoError(t, err)
	require.NotNil(t, conflict)

	conflict, err = FindConflict(existing, 630, 660)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

// A session starting at 23:00 for 3 hours occupies minutes 1380-1560. A
// same-day midnight slot (00:00) does not collide with it, but a late request
// that runs into it does.
func TestFindConflictCrossMidnight(t *testing.T) {
	existing := []entity.Booking{
		slotBooking("23:00", 3), // 1380-1560, unwrapped
	}

	// 22:00-23:00 touches but does not overlap
	conflict, err := FindConflict(existing, 1320, 1380)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// 22:30-23:30 overlaps the head of the session
	conflict, err = FindConflict(existing, 1350, 1410)
	require.NoError(t, err)
	require.NotNil(t, conflict)

	// 00:00-01:00 of the same calendar date is minutes 0-60; no overlap in
	// the unwrapped space, so it is legal on this day.
	conflict, err = FindConflict(existing, 0, 60)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindConflictSecondsInStoredStartTime(t *testing.T) {
	// Persisted rows come back from the TIME column as HH:MM:SS.
	existing := []entity.Booking{
		{ID: uuid.New(), StartTime: "09:00:00", DurationHours: 2}, // 540-660
	}

	conflict, err := FindConflict(existing, 600, 660)
	require.NoError(t, err)
	require.NotNil(t, conflict)

	conflict, err = FindConflict(existing, 660, 720)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindConflictMalformedStartTime(t *testing.T) {
	existing := []entity.Booking{
		{ID: uuid.New(), StartTime: "bogus", DurationHours: 1},
	}

	_, err := FindConflict(existing, 540, 660)
	assert.Error(t, err)
}
