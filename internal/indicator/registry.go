package indicator

import (
	"sync"

	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
)

// Binding ties an indicator to the bar type that feeds it. Bindings are
// explicit so the runtime, not a captured closure, routes bars to indicators.
type Binding struct {
	Indicator Indicator
	BarType   types.BarType
}

// Registry holds the indicator bindings for one strategy instance and routes
// incoming bars to every indicator bound to their bar type.
type Registry struct {
	bindings []Binding
	mu       sync.RWMutex
}

// NewRegistry creates an empty binding registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make([]Binding, 0),
	}
}

// Bind registers an indicator for a bar type. Binding the same indicator
// instance to the same bar type twice is an error; distinct instances of the
// same kind (a fast and a slow EMA) may share a bar type.
func (r *Registry) Bind(ind Indicator, barType types.BarType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, binding := range r.bindings {
		if binding.Indicator == ind && binding.BarType == barType {
			return errors.Newf(errors.ErrCodeIndicatorAlreadyBound,
				"indicator %s already bound to %s", ind.Name(), barType)
		}
	}

	r.bindings = append(r.bindings, Binding{Indicator: ind, BarType: barType})

	return nil
}

// Update feeds a bar to every indicator bound to its bar type.
func (r *Registry) Update(barType types.BarType, bar types.MarketData) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, binding := range r.bindings {
		if binding.BarType == barType {
			binding.Indicator.Update(bar)
		}
	}
}

// Bindings returns a copy of the current bindings.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, len(r.bindings))
	copy(out, r.bindings)

	return out
}

// Initialized reports whether every bound indicator is initialized.
func (r *Registry) Initialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, binding := range r.bindings {
		if !binding.Indicator.Initialized() {
			return false
		}
	}

	return true
}

// Reset resets every bound indicator.
func (r *Registry) Reset() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, binding := range r.bindings {
		binding.Indicator.Reset()
	}
}

// Clear removes all bindings.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings = r.bindings[:0]
}
