// Package strategy defines the lifecycle hooks through which stimuli reach a
// strategy, and the context of collaborators a strategy acts through. The
// runtime delivers exactly one stimulus per hook call, strictly serialized
// per strategy instance, so strategy state needs no internal locking. Hooks
// must not block; blocking work belongs to an external component.
package strategy

import (
	"github.com/rxtech-lab/argo-strategy/internal/execution"
	"github.com/rxtech-lab/argo-strategy/internal/identity"
	"github.com/rxtech-lab/argo-strategy/internal/indicator"
	"github.com/rxtech-lab/argo-strategy/internal/logger"
	"github.com/rxtech-lab/argo-strategy/internal/marketdata"
	"github.com/rxtech-lab/argo-strategy/internal/order"
	"github.com/rxtech-lab/argo-strategy/internal/types"
)

// Context carries the external collaborators a strategy consumes. The core
// never implements these; it only calls them.
type Context struct {
	// Clock supplies the current time.
	Clock identity.Clock
	// Logger is the strategy's structured logger.
	Logger *logger.Logger
	// Orders constructs order value objects.
	Orders order.Factory
	// PositionIDs issues position identifiers.
	PositionIDs identity.IDGenerator
	// Execution is the order-routing boundary.
	Execution execution.Provider
	// MarketData manages bar subscriptions.
	MarketData marketdata.Subscriber
	// Indicators holds the indicator bindings the runtime updates before
	// each OnBar delivery.
	Indicators *indicator.Registry
}

// Strategy is the capability set the runtime invokes.
type Strategy interface {
	// Name returns the unique strategy tag.
	Name() string
	// OnStart runs once before any market data is delivered. Registration
	// of indicator bindings and bar subscriptions belongs here. An error
	// aborts the session before it starts.
	OnStart(ctx *Context) error
	// OnTick is called for each raw price update.
	OnTick(ctx *Context, tick types.Tick) error
	// OnBar is called for each completed bar on a subscribed bar type.
	OnBar(ctx *Context, barType types.BarType, bar types.MarketData) error
	// OnEvent is called for each execution event.
	OnEvent(ctx *Context, event types.OrderEvent) error
	// OnStop is called once when the session ends.
	OnStop(ctx *Context) error
	// OnReset returns the strategy to its freshly-constructed state.
	OnReset(ctx *Context) error
}
