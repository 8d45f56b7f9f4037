package marketdata

import (
	"context"
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
)

// ReplayFeed plays pre-loaded bars through a channel in time order. It also
// implements Subscriber: bars that have been played are retrievable as
// history.
type ReplayFeed struct {
	mu            sync.Mutex
	pending       []BarUpdate
	history       map[types.BarType][]types.MarketData
	subscriptions map[types.BarType]bool
	updates       chan BarUpdate
}

var _ Subscriber = (*ReplayFeed)(nil)

// NewReplayFeed creates an empty replay feed.
func NewReplayFeed() *ReplayFeed {
	return &ReplayFeed{
		history:       make(map[types.BarType][]types.MarketData),
		subscriptions: make(map[types.BarType]bool),
		updates:       make(chan BarUpdate),
	}
}

// Load queues bars for playback under the given bar type. May be called for
// several bar types before Start; playback interleaves all loaded bars in
// time order.
func (f *ReplayFeed) Load(barType types.BarType, bars []types.MarketData) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, bar := range bars {
		f.pending = append(f.pending, BarUpdate{BarType: barType, Bar: bar})
	}
}

// SeedHistory records bars as already seen without playing them, so
// HistoricalBars can serve warmup requests made before playback starts.
func (f *ReplayFeed) SeedHistory(barType types.BarType, bars []types.MarketData) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.history[barType] = append(f.history[barType], bars...)
}

// Updates returns the playback channel. It is closed when playback finishes.
func (f *ReplayFeed) Updates() <-chan BarUpdate {
	return f.updates
}

// Start plays all loaded bars in time order, then closes the updates
// channel. Blocks until playback finishes or ctx is done.
func (f *ReplayFeed) Start(ctx context.Context) {
	f.mu.Lock()
	pending := make([]BarUpdate, len(f.pending))
	copy(pending, f.pending)
	f.pending = f.pending[:0]
	f.mu.Unlock()

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Bar.Time.Before(pending[j].Bar.Time)
	})

	defer close(f.updates)

	for _, update := range pending {
		select {
		case f.updates <- update:
			f.mu.Lock()
			f.history[update.BarType] = append(f.history[update.BarType], update.Bar)
			f.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// SubscribeBars implements Subscriber.
func (f *ReplayFeed) SubscribeBars(barType types.BarType) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.subscriptions[barType] = true

	return nil
}

// UnsubscribeBars implements Subscriber.
func (f *ReplayFeed) UnsubscribeBars(barType types.BarType) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.subscriptions[barType] {
		return errors.Newf(errors.ErrCodeNotSubscribed, "not subscribed to %s", barType)
	}

	delete(f.subscriptions, barType)

	return nil
}

// Subscribed implements Subscriber.
func (f *ReplayFeed) Subscribed(barType types.BarType) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.subscriptions[barType]
}

// HistoricalBars implements Subscriber. It returns bars already played for
// the bar type.
func (f *ReplayFeed) HistoricalBars(barType types.BarType, limit int) ([]types.MarketData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bars := f.history[barType]
	if limit > 0 && len(bars) > limit {
		bars = bars[len(bars)-limit:]
	}

	out := make([]types.MarketData, len(bars))
	copy(out, bars)

	return out, nil
}
