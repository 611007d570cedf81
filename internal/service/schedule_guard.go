package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Interval for cleaning up stale mutexes
	guardCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	guardStaleThreshold = 10 * time.Minute
)

// ScheduleGuard serializes every create/update that touches one trainer's
// schedule for one date. Holding the guard across the availability check and
// the insert/update closes the check-then-act race: of two concurrent
// conflicting requests, the second enters the region only after the first
// has committed, observes the new booking, and fails the check.
//
// Bookings for different trainers, or different dates of the same trainer,
// never contend with each other.
type ScheduleGuard struct {
	log *logrus.Logger

	// Per trainer+date mutex
	slotMu sync.Map // map[string]*mutexWithTimestamp

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// NewScheduleGuard starts the background cleanup goroutine.
// Call Stop() during graceful shutdown.
func NewScheduleGuard(log *logrus.Logger) *ScheduleGuard {
	g := &ScheduleGuard{
		log:      log,
		stopChan: make(chan struct{}),
	}

	g.wg.Add(1)
	go g.cleanupLoop()

	return g
}

// Stop gracefully shuts down the guard.
// Safe to call multiple times.
func (g *ScheduleGuard) Stop() {
	if g.stopped.CompareAndSwap(false, true) {
		close(g.stopChan)
		g.wg.Wait()
		g.log.Info("ScheduleGuard stopped")
	}
}

// Lock acquires the mutual-exclusion region for trainerID on date and returns
// the unlock function.
func (g *ScheduleGuard) Lock(trainerID uuid.UUID, date time.Time) func() {
	mt := g.getSlotMutex(slotKey(trainerID, date))
	mt.mu.Lock()
	return mt.mu.Unlock
}

func slotKey(trainerID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s:%s", trainerID, date.Format("2006-01-02"))
}

// getSlotMutex returns the mutex for a trainer+date key
func (g *ScheduleGuard) getSlotMutex(key string) *mutexWithTimestamp {
	mt, _ := g.slotMu.LoadOrStore(key, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// cleanupLoop runs in background to clean stale mutexes
func (g *ScheduleGuard) cleanupLoop() {
	defer g.wg.Done()

	ticker := time.NewTicker(guardCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-g.stopChan:
			g.log.Debug("ScheduleGuard cleanup goroutine stopping")
			return
		case <-ticker.C:
			g.cleanupStaleMutexes()
		}
	}
}

// cleanupStaleMutexes removes unused mutexes using TryLock for safety.
// The lastUsed check happens inside the lock so a waiter that just refreshed
// the timestamp cannot lose its mutex.
func (g *ScheduleGuard) cleanupStaleMutexes() {
	cutoffTime := time.Now().Add(-guardStaleThreshold).Unix()
	var cleaned int

	g.slotMu.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				g.slotMu.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		g.log.Debugf("Cleaned up %d stale schedule mutexes", cleaned)
	}
}
