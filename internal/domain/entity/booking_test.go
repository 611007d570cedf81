package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"14:00", 840},
		{"23:59", 1439},
		// TIME columns read back with seconds attached
		{"09:00:00", 540},
		{"23:30:00", 1410},
	}
	for _, tc := range cases {
		got, err := ParseClockMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseClockMinutes("25:00")
	assert.Error(t, err)
	_, err = ParseClockMinutes("9am")
	assert.Error(t, err)
	_, err = ParseClockMinutes("")
	assert.Error(t, err)
	_, err = ParseClockMinutes("09:00:90")
	assert.Error(t, err)
}

func TestFormatClockMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatClockMinutes(0))
	assert.Equal(t, "09:30", FormatClockMinutes(570))
	assert.Equal(t, "23:59", FormatClockMinutes(1439))

	// Past-midnight values wrap for display
	assert.Equal(t, "00:00", FormatClockMinutes(1440))
	assert.Equal(t, "02:00", FormatClockMinutes(1560))
}

func TestBookingDurationMinutes(t *testing.T) {
	b := &Booking{StartTime: "23:00", DurationHours: 3}
	assert.Equal(t, 180, b.DurationMinutes())

	start, err := b.StartMinutes()
	require.NoError(t, err)
	// A session crossing midnight keeps its unwrapped end
	assert.Equal(t, 1560, start+b.DurationMinutes())

	half := &Booking{StartTime: "10:00", DurationHours: 0.5}
	assert.Equal(t, 30, half.DurationMinutes())
}

func TestOccupiesSlot(t *testing.T) {
	for _, status := range NonTerminalStatuses() {
		b := &Booking{Status: status}
		assert.True(t, b.OccupiesSlot(), string(status))
	}
	for _, status := range []BookingStatus{BookingStatusRejected, BookingStatusCancelled, BookingStatusCompleted} {
		b := &Booking{Status: status}
		assert.False(t, b.OccupiesSlot(), string(status))
	}
}

func TestPaymentConfirmationValidate(t *testing.T) {
	valid := &PaymentConfirmation{
		Mode:          "bank_transfer",
		TransactionID: "TX-2026-0001",
		Type:          "full",
		Amount:        decimal.NewFromInt(1500),
	}
	assert.NoError(t, valid.Validate())

	t.Run("nil confirmation", func(t *testing.T) {
		var p *PaymentConfirmation
		assert.Error(t, p.Validate())
	})

	t.Run("missing mode", func(t *testing.T) {
		p := *valid
		p.Mode = ""
		assert.Error(t, p.Validate())
	})

	t.Run("missing transaction id", func(t *testing.T) {
		p := *valid
		p.TransactionID = ""
		assert.Error(t, p.Validate())
	})

	t.Run("missing type", func(t *testing.T) {
		p := *valid
		p.Type = ""
		assert.Error(t, p.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		p := *valid
		p.Amount = decimal.NewFromInt(-1)
		assert.Error(t, p.Validate())
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		p := *valid
		p.Amount = decimal.Zero
		assert.NoError(t, p.Validate())
	})
}
