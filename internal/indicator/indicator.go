package indicator

import (
	"github.com/rxtech-lab/argo-strategy/internal/types"
)

// Indicator is the adapter contract the strategy core consumes. Indicator
// math lives behind it: the core only ever reads the current value and the
// initialized flag, and feeds bars in through Update.
type Indicator interface {
	// Name returns the name of the indicator.
	Name() types.IndicatorType
	// Update feeds one bar into the indicator.
	Update(bar types.MarketData)
	// Value returns the current indicator value. Meaningless until
	// Initialized reports true.
	Value() float64
	// Initialized reports whether the indicator has seen enough data.
	Initialized() bool
	// Reset clears all accumulated state.
	Reset()
}
