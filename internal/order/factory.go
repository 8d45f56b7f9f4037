// Package order constructs validated order value objects. The factory owns
// the order identifier generator, so every order it builds carries a fresh,
// reconstructable identifier.
package order

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategy/internal/identity"
	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
)

// Factory builds order value objects for a single strategy.
type Factory interface {
	// MarketOrder builds a market order. expireTime is only meaningful for
	// GTD orders.
	MarketOrder(symbol string, side types.PurchaseType, quantity float64, purpose types.OrderPurpose,
		tif types.TimeInForce, expireTime optional.Option[time.Time]) (types.Order, error)
	// StopMarketOrder builds a stop-market order triggered at triggerPrice.
	StopMarketOrder(symbol string, side types.PurchaseType, quantity float64, triggerPrice float64,
		purpose types.OrderPurpose) (types.Order, error)
}

type factory struct {
	strategyName string
	ids          identity.IDGenerator
	clock        identity.Clock
}

// NewFactory creates an order factory stamping orders with the given
// strategy name.
func NewFactory(strategyName string, ids identity.IDGenerator, clock identity.Clock) (Factory, error) {
	if strategyName == "" {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "strategy name must be non-empty")
	}

	if ids == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "identifier generator is required")
	}

	if clock == nil {
		clock = time.Now
	}

	return &factory{
		strategyName: strategyName,
		ids:          ids,
		clock:        clock,
	}, nil
}

// MarketOrder implements Factory.
func (f *factory) MarketOrder(symbol string, side types.PurchaseType, quantity float64, purpose types.OrderPurpose,
	tif types.TimeInForce, expireTime optional.Option[time.Time]) (types.Order, error) {
	id, err := f.ids.Generate()
	if err != nil {
		return types.Order{}, err
	}

	order := types.Order{
		OrderID:      id,
		Symbol:       symbol,
		Side:         side,
		Quantity:     quantity,
		Price:        optional.None[float64](),
		Purpose:      purpose,
		TimeInForce:  tif,
		ExpireTime:   expireTime,
		StrategyName: f.strategyName,
		Reason:       reasonForPurpose(purpose),
		Timestamp:    f.clock().UTC(),
	}

	if err := order.Validate(); err != nil {
		return types.Order{}, err
	}

	return order, nil
}

// StopMarketOrder implements Factory.
func (f *factory) StopMarketOrder(symbol string, side types.PurchaseType, quantity float64, triggerPrice float64,
	purpose types.OrderPurpose) (types.Order, error) {
	id, err := f.ids.Generate()
	if err != nil {
		return types.Order{}, err
	}

	order := types.Order{
		OrderID:      id,
		Symbol:       symbol,
		Side:         side,
		Quantity:     quantity,
		Price:        optional.Some(triggerPrice),
		Purpose:      purpose,
		TimeInForce:  types.TimeInForceGTC,
		ExpireTime:   optional.None[time.Time](),
		StrategyName: f.strategyName,
		Reason:       reasonForPurpose(purpose),
		Timestamp:    f.clock().UTC(),
	}

	if err := order.Validate(); err != nil {
		return types.Order{}, err
	}

	return order, nil
}

func reasonForPurpose(purpose types.OrderPurpose) types.Reason {
	switch purpose {
	case types.OrderPurposeStopLoss:
		return types.Reason{Reason: types.OrderReasonStopLoss}
	case types.OrderPurposeTakeProfit:
		return types.Reason{Reason: types.OrderReasonTakeProfit}
	default:
		return types.Reason{Reason: types.OrderReasonStrategy}
	}
}
