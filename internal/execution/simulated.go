package execution

import (
	"slices"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategy/internal/logger"
	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const eventBufferSize = 256

// pendingOrder is a resting order together with the position it belongs to.
type pendingOrder struct {
	order      types.Order
	positionID string
}

// Simulated is an execution provider that fills orders against the bar
// stream. Market orders fill at the average price of the next bar; stop
// orders trigger when the bar range crosses their price; GTD orders expire
// when a bar's time passes their expire time.
type Simulated struct {
	logger        *logger.Logger
	balance       decimal.Decimal
	marketData    types.MarketData
	hasMarketData bool
	pendingOrders []pendingOrder
	// positions maps symbol to signed quantity (negative = short).
	positions map[string]float64
	events    chan types.OrderEvent
}

// NewSimulated creates a simulated provider with the given starting balance.
func NewSimulated(initialBalance float64, log *logger.Logger) *Simulated {
	return &Simulated{
		logger:    log,
		balance:   decimal.NewFromFloat(initialBalance),
		positions: make(map[string]float64),
		events:    make(chan types.OrderEvent, eventBufferSize),
	}
}

// SubmitOrder implements Provider. Orders rest until the next market data
// update; rejections are delivered as events, not errors.
func (s *Simulated) SubmitOrder(order types.Order, positionID string) error {
	if err := order.Validate(); err != nil {
		return err
	}

	order.PositionID = positionID
	s.pendingOrders = append(s.pendingOrders, pendingOrder{order: order, positionID: positionID})

	return nil
}

// ModifyOrder implements Provider.
func (s *Simulated) ModifyOrder(orderID string, newPrice float64) error {
	if newPrice <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPrice, "modified price must be greater than zero: %f", newPrice)
	}

	for i := range s.pendingOrders {
		if s.pendingOrders[i].order.OrderID != orderID {
			continue
		}

		if s.pendingOrders[i].order.Price.IsNone() {
			return errors.Newf(errors.ErrCodeModifyFailed, "order %s has no price to amend", orderID)
		}

		s.pendingOrders[i].order.Price = optional.Some(newPrice)

		return nil
	}

	return errors.Newf(errors.ErrCodeOrderNotFound, "no resting order with id %s", orderID)
}

// CancelAllOrders implements Provider.
func (s *Simulated) CancelAllOrders(reason types.Reason) error {
	for _, pending := range s.pendingOrders {
		s.emit(types.OrderCanceled{
			OrderID:    pending.order.OrderID,
			PositionID: pending.positionID,
			Timestamp:  s.marketData.Time,
		})
	}

	s.pendingOrders = s.pendingOrders[:0]

	s.logger.Info("cancelled all orders", zap.String("reason", reason.Reason))

	return nil
}

// FlattenAllPositions implements Provider. Positions close at the last seen
// price; resting orders are left alone (cancellation is a separate call).
func (s *Simulated) FlattenAllPositions() error {
	if !s.hasMarketData && len(s.positions) > 0 {
		return errors.New(errors.ErrCodeDataNotFound, "cannot flatten before any market data has been seen")
	}

	price := decimal.NewFromFloat(s.marketData.Close)

	for symbol, quantity := range s.positions {
		if quantity == 0 {
			continue
		}

		proceeds := price.Mul(decimal.NewFromFloat(quantity))
		s.balance = s.balance.Add(proceeds)

		s.logger.Info("flattened position",
			zap.String("symbol", symbol),
			zap.Float64("quantity", quantity),
			zap.Float64("price", s.marketData.Close),
		)
	}

	clear(s.positions)

	return nil
}

// Events implements Provider.
func (s *Simulated) Events() <-chan types.OrderEvent {
	return s.events
}

// Balance returns the current cash balance.
func (s *Simulated) Balance() float64 {
	value, _ := s.balance.Float64()

	return value
}

// Position returns the signed open quantity for a symbol.
func (s *Simulated) Position(symbol string) float64 {
	return s.positions[symbol]
}

// OpenOrders returns the currently resting orders.
func (s *Simulated) OpenOrders() []types.Order {
	orders := make([]types.Order, 0, len(s.pendingOrders))
	for _, pending := range s.pendingOrders {
		orders = append(orders, pending.order)
	}

	return orders
}

// UpdateCurrentMarketData advances the simulation by one bar, expiring,
// triggering and filling resting orders against it.
func (s *Simulated) UpdateCurrentMarketData(data types.MarketData) {
	s.marketData = data
	s.hasMarketData = true

	remaining := s.pendingOrders[:0]

	for _, pending := range s.pendingOrders {
		if s.expireIfDue(pending) {
			continue
		}

		filled, fillPrice := s.tryFill(pending.order)
		if !filled {
			remaining = append(remaining, pending)

			continue
		}

		if s.rejectIfUnaffordable(pending, fillPrice) {
			continue
		}

		s.applyFill(pending, fillPrice)
	}

	s.pendingOrders = slices.Clip(remaining)
}

func (s *Simulated) expireIfDue(pending pendingOrder) bool {
	if pending.order.TimeInForce != types.TimeInForceGTD || pending.order.ExpireTime.IsNone() {
		return false
	}

	if !s.marketData.Time.After(pending.order.ExpireTime.Unwrap()) {
		return false
	}

	s.emit(types.OrderExpired{
		OrderID:    pending.order.OrderID,
		PositionID: pending.positionID,
		Timestamp:  s.marketData.Time,
	})

	return true
}

// tryFill decides whether the order executes on the current bar and at what
// price.
func (s *Simulated) tryFill(order types.Order) (bool, float64) {
	if order.Price.IsNone() {
		// Market order: fill at the average price of the bar.
		return true, (s.marketData.High + s.marketData.Low) / 2
	}

	trigger := order.Price.Unwrap()

	switch order.Side {
	case types.PurchaseTypeSell:
		if s.marketData.Low <= trigger {
			return true, trigger
		}
	case types.PurchaseTypeBuy:
		if s.marketData.High >= trigger {
			return true, trigger
		}
	}

	return false, 0
}

func (s *Simulated) rejectIfUnaffordable(pending pendingOrder, fillPrice float64) bool {
	if pending.order.Side != types.PurchaseTypeBuy {
		return false
	}

	cost := decimal.NewFromFloat(fillPrice).Mul(decimal.NewFromFloat(pending.order.Quantity))
	if cost.LessThanOrEqual(s.balance) {
		return false
	}

	s.emit(types.OrderRejected{
		OrderID:    pending.order.OrderID,
		PositionID: pending.positionID,
		Reason: types.Reason{
			Reason:  "insufficient_buying_power",
			Message: "order cost exceeds available balance",
		},
		Timestamp: s.marketData.Time,
	})

	return true
}

func (s *Simulated) applyFill(pending pendingOrder, fillPrice float64) {
	order := pending.order
	amount := decimal.NewFromFloat(fillPrice).Mul(decimal.NewFromFloat(order.Quantity))

	if order.Side == types.PurchaseTypeBuy {
		s.balance = s.balance.Sub(amount)
		s.positions[order.Symbol] += order.Quantity
	} else {
		s.balance = s.balance.Add(amount)
		s.positions[order.Symbol] -= order.Quantity
	}

	s.emit(types.OrderFilled{
		OrderID:    order.OrderID,
		PositionID: pending.positionID,
		Symbol:     order.Symbol,
		Side:       order.Side,
		Quantity:   order.Quantity,
		Price:      fillPrice,
		Timestamp:  s.marketData.Time,
	})
}

func (s *Simulated) emit(event types.OrderEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event buffer full, dropping event",
			zap.String("order_id", event.EventOrderID()),
		)
	}
}
