package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	instant := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c := NewFixed(instant)

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now())
}

func TestRealClockIsUTC(t *testing.T) {
	now := New().Now()
	assert.Equal(t, time.UTC, now.Location())
}
