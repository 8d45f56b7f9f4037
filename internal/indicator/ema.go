package indicator

import (
	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
)

// EMA is a streaming Exponential Moving Average over bar closes.
type EMA struct {
	period int
	alpha  float64
	value  float64
	count  int
}

// NewEMA creates an EMA indicator with the given period.
func NewEMA(period int) (*EMA, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	return &EMA{
		period: period,
		alpha:  2.0 / (float64(period) + 1.0),
	}, nil
}

// Name returns the name of the indicator.
func (e *EMA) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Update feeds one bar into the average. The first bar seeds the value.
func (e *EMA) Update(bar types.MarketData) {
	e.count++

	if e.count == 1 {
		e.value = bar.Close

		return
	}

	e.value = e.alpha*bar.Close + (1.0-e.alpha)*e.value
}

// Value returns the current average.
func (e *EMA) Value() float64 {
	return e.value
}

// Initialized reports true once a full period of bars has been seen.
func (e *EMA) Initialized() bool {
	return e.count >= e.period
}

// Reset clears all accumulated state.
func (e *EMA) Reset() {
	e.value = 0
	e.count = 0
}

// Period returns the configured period.
func (e *EMA) Period() int {
	return e.period
}
