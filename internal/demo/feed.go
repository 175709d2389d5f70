package demo

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	applog "github.com/agric-empower/portal/internal/platform/logging"
)

// DefaultInterval is the dashboard refresh period.
const DefaultInterval = 30 * time.Second

// Feed fans one telemetry reading per tick out to every subscriber.
type Feed struct {
	interval time.Duration
	generate func() Reading

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Reading
}

// NewFeed creates a feed. A non-positive interval uses DefaultInterval.
func NewFeed(interval time.Duration) *Feed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Feed{
		interval: interval,
		generate: GenerateTelemetry,
		subs:     make(map[int]chan Reading),
	}
}

// Interval is the tick period.
func (f *Feed) Interval() time.Duration {
	return f.interval
}

// Subscribe registers a receiver. The channel holds at most one pending
// reading; a subscriber that falls behind misses readings. Call cancel to
// unsubscribe; the channel is closed afterwards.
func (f *Feed) Subscribe() (<-chan Reading, func()) {
	ch := make(chan Reading, 1)
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			if c, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(c)
			}
			f.mu.Unlock()
		})
	}
	return ch, cancel
}

// Subscribers returns the number of live subscriptions.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Run ticks until ctx is done, then closes every subscription.
func (f *Feed) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	defer f.closeAll()

	applog.LogInfo(ctx, "telemetry feed started", zap.Duration("interval", f.interval))
	for {
		select {
		case <-ctx.Done():
			applog.LogInfo(ctx, "telemetry feed stopped")
			return
		case <-ticker.C:
			f.broadcast(f.generate())
		}
	}
}

func (f *Feed) broadcast(r Reading) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- r:
		default:
		}
	}
}

func (f *Feed) closeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}
