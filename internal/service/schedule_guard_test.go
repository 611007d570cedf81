package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestScheduleGuardSerializesSameTrainerDate(t *testing.T) {
	guard := NewScheduleGuard(logrus.New())
	defer guard.Stop()

	trainerID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	const workers = 16
	var inRegion, maxInRegion int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := guard.Lock(trainerID, date)
			defer unlock()

			mu.Lock()
			inRegion++
			if inRegion > maxInRegion {
				maxInRegion = inRegion
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inRegion--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInRegion, "only one goroutine may hold a trainer+date at a time")
}

func TestScheduleGuardIndependentKeys(t *testing.T) {
	guard := NewScheduleGuard(logrus.New())
	defer guard.Stop()

	trainerA := uuid.New()
	trainerB := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	nextDay := date.AddDate(0, 0, 1)

	unlockA := guard.Lock(trainerA, date)
	defer unlockA()

	// Different trainer, same date: must not block
	done := make(chan struct{})
	go func() {
		unlock := guard.Lock(trainerB, date)
		unlock()
		// Same trainer, different date: must not block either
		unlock = guard.Lock(trainerA, nextDay)
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("independent trainer+date keys must not contend")
	}
}

func TestScheduleGuardStopIdempotent(t *testing.T) {
	guard := NewScheduleGuard(logrus.New())
	guard.Stop()
	guard.Stop()
}
