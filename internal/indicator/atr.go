package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
)

// ATR is a streaming Average True Range using Wilder smoothing.
type ATR struct {
	period    int
	value     float64
	prevClose float64
	count     int
}

// NewATR creates an ATR indicator with the given period.
func NewATR(period int) (*ATR, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	return &ATR{period: period}, nil
}

// Name returns the name of the indicator.
func (a *ATR) Name() types.IndicatorType {
	return types.IndicatorTypeATR
}

// Update feeds one bar into the range. The first period of true ranges is a
// simple average; afterwards Wilder smoothing applies.
func (a *ATR) Update(bar types.MarketData) {
	tr := bar.High - bar.Low
	if a.count > 0 {
		tr = math.Max(tr, math.Max(
			math.Abs(bar.High-a.prevClose),
			math.Abs(bar.Low-a.prevClose),
		))
	}

	a.count++

	switch {
	case a.count == 1:
		a.value = tr
	case a.count <= a.period:
		a.value = (a.value*float64(a.count-1) + tr) / float64(a.count)
	default:
		a.value = (a.value*float64(a.period-1) + tr) / float64(a.period)
	}

	a.prevClose = bar.Close
}

// Value returns the current average true range.
func (a *ATR) Value() float64 {
	return a.value
}

// Initialized reports true once a full period of bars has been seen.
func (a *ATR) Initialized() bool {
	return a.count >= a.period
}

// Reset clears all accumulated state.
func (a *ATR) Reset() {
	a.value = 0
	a.prevClose = 0
	a.count = 0
}

// Period returns the configured period.
func (a *ATR) Period() int {
	return a.period
}
