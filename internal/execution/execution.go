// Package execution defines the order-routing boundary the strategy core
// talks to. The concrete matching engine lives outside this module; the
// Simulated provider exists for paper sessions and tests.
package execution

import (
	"github.com/rxtech-lab/argo-strategy/internal/types"
)

// Provider is the execution boundary consumed by strategies. Submissions are
// acknowledged asynchronously: rejections, fills, expirations and
// cancellations all flow back through Events.
type Provider interface {
	// SubmitOrder routes an order, correlated to the position it opens or
	// protects.
	SubmitOrder(order types.Order, positionID string) error
	// ModifyOrder amends the price of a resting order. Price is the only
	// amendable field.
	ModifyOrder(orderID string, newPrice float64) error
	// CancelAllOrders cancels every resting order for this strategy.
	CancelAllOrders(reason types.Reason) error
	// FlattenAllPositions immediately closes all open positions at market.
	FlattenAllPositions() error
	// Events exposes the stream of execution events, in occurrence order.
	Events() <-chan types.OrderEvent
}
