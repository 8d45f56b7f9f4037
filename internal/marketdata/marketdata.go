// Package marketdata provides the bar subscription surface strategies
// consume, a replay feed for paper sessions and tests, and a duckdb-backed
// historical source.
package marketdata

import (
	"github.com/rxtech-lab/argo-strategy/internal/types"
)

// BarUpdate is one bar tagged with the subscription it belongs to.
type BarUpdate struct {
	BarType types.BarType
	Bar     types.MarketData
}

// Subscriber manages the bar subscriptions owned by one strategy instance.
type Subscriber interface {
	// SubscribeBars starts delivery of bars for the given bar type.
	SubscribeBars(barType types.BarType) error
	// UnsubscribeBars stops delivery for the given bar type.
	UnsubscribeBars(barType types.BarType) error
	// Subscribed reports whether the bar type is currently subscribed.
	Subscribed(barType types.BarType) bool
	// HistoricalBars returns up to limit of the most recent bars already
	// seen for the bar type, oldest first. limit <= 0 means all.
	HistoricalBars(barType types.BarType, limit int) ([]types.MarketData, error)
}
