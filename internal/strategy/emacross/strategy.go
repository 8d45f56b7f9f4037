// Package emacross implements an EMA-crossover strategy with an ATR trailing
// stop. It enters in the crossover direction when flat, protects every fill
// with a stop-market order, and ratchets the stop in the position's favor bar
// by bar. The position lifecycle is a three-state machine: flat, entry
// pending, open.
package emacross

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategy/internal/indicator"
	"github.com/rxtech-lab/argo-strategy/internal/strategy"
	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/internal/utils"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
	"go.uber.org/zap"
)

type positionState int

const (
	stateFlat positionState = iota
	stateEntryPending
	stateOpen
)

func (s positionState) String() string {
	switch s {
	case stateFlat:
		return "flat"
	case stateEntryPending:
		return "entry_pending"
	case stateOpen:
		return "open"
	default:
		return "unknown"
	}
}

var _ strategy.Strategy = (*Strategy)(nil)

// Strategy is the emacross strategy. It is not safe for concurrent use; the
// runtime serializes all hook calls.
type Strategy struct {
	config  Config
	barType types.BarType

	fast *indicator.EMA
	slow *indicator.EMA
	atr  *indicator.ATR

	state       positionState
	positionID  string
	entryOrders map[string]types.Order
	stopOrders  map[string]types.Order
}

// New creates an emacross strategy from a validated config.
func New(config Config) (*Strategy, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	fast, err := indicator.NewEMA(config.FastPeriod)
	if err != nil {
		return nil, err
	}

	slow, err := indicator.NewEMA(config.SlowPeriod)
	if err != nil {
		return nil, err
	}

	atr, err := indicator.NewATR(config.AtrPeriod)
	if err != nil {
		return nil, err
	}

	return &Strategy{
		config:      config,
		barType:     types.NewBarType(config.Symbol, config.BarInterval),
		fast:        fast,
		slow:        slow,
		atr:         atr,
		state:       stateFlat,
		entryOrders: make(map[string]types.Order),
		stopOrders:  make(map[string]types.Order),
	}, nil
}

// Name implements strategy.Strategy.
func (s *Strategy) Name() string {
	return "emacross"
}

// OnStart binds the indicators, subscribes to the configured bar type, and
// seeds the indicators from historical bars when warmup is configured.
func (s *Strategy) OnStart(ctx *strategy.Context) error {
	if err := ctx.Indicators.Bind(s.fast, s.barType); err != nil {
		return err
	}

	if err := ctx.Indicators.Bind(s.slow, s.barType); err != nil {
		return err
	}

	if err := ctx.Indicators.Bind(s.atr, s.barType); err != nil {
		return err
	}

	if err := ctx.MarketData.SubscribeBars(s.barType); err != nil {
		return err
	}

	if s.config.WarmupBars > 0 {
		bars, err := ctx.MarketData.HistoricalBars(s.barType, s.config.WarmupBars)
		if err != nil {
			return err
		}

		for _, bar := range bars {
			ctx.Indicators.Update(s.barType, bar)
		}
	}

	ctx.Logger.Info("emacross started",
		zap.String("bar_type", string(s.barType)),
		zap.Int("fast_period", s.config.FastPeriod),
		zap.Int("slow_period", s.config.SlowPeriod),
	)

	return nil
}

// OnTick implements strategy.Strategy. The strategy trades on bars only.
func (s *Strategy) OnTick(ctx *strategy.Context, tick types.Tick) error {
	return nil
}

// OnBar evaluates the crossover when flat and trails the protective stops
// when a position is open. Bars for other bar types are ignored.
func (s *Strategy) OnBar(ctx *strategy.Context, barType types.BarType, bar types.MarketData) error {
	if barType != s.barType {
		return nil
	}

	switch s.state {
	case stateFlat:
		return s.maybeEnter(ctx, bar)
	case stateOpen:
		s.trailStops(ctx, bar)
	case stateEntryPending:
		// Waiting on the execution boundary; nothing to do.
	}

	return nil
}

func (s *Strategy) maybeEnter(ctx *strategy.Context, bar types.MarketData) error {
	if !s.fast.Initialized() || !s.slow.Initialized() || !s.atr.Initialized() {
		return nil
	}

	// Fast at or above slow is a long signal; the equality case buys.
	side := types.PurchaseTypeSell
	if s.fast.Value() >= s.slow.Value() {
		side = types.PurchaseTypeBuy
	}

	tif := types.TimeInForceGTC
	expireTime := optional.None[time.Time]()

	if s.config.EntryExpiry > 0 {
		tif = types.TimeInForceGTD
		expireTime = optional.Some(bar.Time.Add(s.config.EntryExpiry))
	}

	quantity := utils.RoundToDecimalPrecision(s.config.TradeSize, s.config.QuantityPrecision)

	entry, err := ctx.Orders.MarketOrder(s.config.Symbol, side, quantity,
		types.OrderPurposeEntry, tif, expireTime)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStrategyRuntimeError, "failed to build entry order", err)
	}

	positionID, err := ctx.PositionIDs.Generate()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStrategyRuntimeError, "failed to generate position id", err)
	}

	s.entryOrders[entry.OrderID] = entry
	s.positionID = positionID

	if err := ctx.Execution.SubmitOrder(entry, positionID); err != nil {
		delete(s.entryOrders, entry.OrderID)
		s.positionID = ""

		return errors.Wrap(errors.ErrCodeOrderFailed, "failed to submit entry order", err)
	}

	s.state = stateEntryPending

	ctx.Logger.Info("entry submitted",
		zap.String("order_id", entry.OrderID),
		zap.String("position_id", positionID),
		zap.String("side", string(side)),
	)

	return nil
}

// trailStops ratchets each protective stop toward the current bar. A stop
// only ever moves in the position's favor: sell stops up, buy stops down.
func (s *Strategy) trailStops(ctx *strategy.Context, bar types.MarketData) {
	offset := s.atr.Value() * s.config.TrailAtrMultiple

	for id, stop := range s.stopOrders {
		current := stop.Price.Unwrap()

		var candidate float64

		if stop.Side == types.PurchaseTypeSell {
			candidate = bar.Low - offset
			if candidate <= current {
				continue
			}
		} else {
			candidate = bar.High + offset
			if candidate >= current {
				continue
			}
		}

		if err := ctx.Execution.ModifyOrder(id, candidate); err != nil {
			ctx.Logger.Warn("failed to trail stop",
				zap.String("order_id", id),
				zap.Float64("candidate", candidate),
				zap.Error(err),
			)

			continue
		}

		stop.Price = optional.Some(candidate)
		s.stopOrders[id] = stop
	}
}

// OnEvent advances the lifecycle on execution events. Events for orders the
// strategy is not tracking are ignored.
func (s *Strategy) OnEvent(ctx *strategy.Context, event types.OrderEvent) error {
	switch ev := event.(type) {
	case types.OrderFilled:
		return s.handleFilled(ctx, ev)
	case types.OrderExpired:
		s.handleGone(ctx, ev.OrderID, "expired")
	case types.OrderRejected:
		s.handleGone(ctx, ev.OrderID, "rejected")
	case types.OrderCanceled:
		s.handleGone(ctx, ev.OrderID, "canceled")
	}

	return nil
}

func (s *Strategy) handleFilled(ctx *strategy.Context, ev types.OrderFilled) error {
	if entry, ok := s.entryOrders[ev.OrderID]; ok {
		delete(s.entryOrders, ev.OrderID)

		return s.protectFill(ctx, entry, ev)
	}

	if _, ok := s.stopOrders[ev.OrderID]; ok {
		delete(s.stopOrders, ev.OrderID)
		s.positionID = ""
		s.state = stateFlat

		ctx.Logger.Info("stop filled, position closed", zap.String("order_id", ev.OrderID))
	}

	return nil
}

// protectFill submits a stop-market order covering the filled quantity. The
// stop is sized to the fill, not the requested entry size, so partial fills
// stay fully protected and no more.
func (s *Strategy) protectFill(ctx *strategy.Context, entry types.Order, ev types.OrderFilled) error {
	offset := s.atr.Value() * s.config.TrailAtrMultiple

	stopSide := types.PurchaseTypeSell
	trigger := ev.Price - offset

	if entry.Side == types.PurchaseTypeSell {
		stopSide = types.PurchaseTypeBuy
		trigger = ev.Price + offset
	}

	// Fills arrive at the venue's quantity precision; rounding strips float
	// drift before validation.
	quantity := utils.RoundToDecimalPrecision(ev.Quantity, s.config.QuantityPrecision)

	stop, err := ctx.Orders.StopMarketOrder(entry.Symbol, stopSide, quantity, trigger,
		types.OrderPurposeStopLoss)
	if err != nil {
		s.protectiveFailure(ctx, "failed to build protective stop", err)

		return errors.Wrap(errors.ErrCodeStrategyRuntimeError, "failed to build protective stop", err)
	}

	s.stopOrders[stop.OrderID] = stop

	if err := ctx.Execution.SubmitOrder(stop, s.positionID); err != nil {
		delete(s.stopOrders, stop.OrderID)
		s.protectiveFailure(ctx, "failed to submit protective stop", err)

		return errors.Wrap(errors.ErrCodeOrderFailed, "failed to submit protective stop", err)
	}

	s.state = stateOpen

	ctx.Logger.Info("position opened",
		zap.String("position_id", s.positionID),
		zap.String("stop_order_id", stop.OrderID),
		zap.Float64("fill_price", ev.Price),
		zap.Float64("stop_trigger", trigger),
	)

	return nil
}

// handleGone processes a terminal non-fill outcome. A lost entry order just
// returns the strategy to flat. A lost protective stop leaves an open
// position unprotected, which escalates to a force-flatten.
func (s *Strategy) handleGone(ctx *strategy.Context, orderID string, outcome string) {
	if _, ok := s.entryOrders[orderID]; ok {
		delete(s.entryOrders, orderID)
		s.positionID = ""
		s.state = stateFlat

		ctx.Logger.Info("entry order gone without fill",
			zap.String("order_id", orderID),
			zap.String("outcome", outcome),
		)

		return
	}

	if _, ok := s.stopOrders[orderID]; ok {
		delete(s.stopOrders, orderID)
		s.protectiveFailure(ctx, "protective stop "+outcome, nil)
	}
}

// protectiveFailure flattens everything and resets tracking. Called whenever
// the position can no longer be protected by a working stop.
func (s *Strategy) protectiveFailure(ctx *strategy.Context, message string, cause error) {
	ctx.Logger.Error("protective failure, flattening all positions",
		zap.String("message", message),
		zap.Error(cause),
	)

	if err := ctx.Execution.FlattenAllPositions(); err != nil {
		ctx.Logger.Error("failed to flatten positions after protective failure", zap.Error(err))
	}

	clear(s.entryOrders)
	clear(s.stopOrders)
	s.positionID = ""
	s.state = stateFlat
}

// OnStop force-flattens any open exposure, cancels whatever is still
// outstanding, and clears tracking.
func (s *Strategy) OnStop(ctx *strategy.Context) error {
	if s.state != stateFlat {
		if err := ctx.Execution.FlattenAllPositions(); err != nil {
			ctx.Logger.Error("failed to flatten positions on stop", zap.Error(err))
		}

		if err := ctx.Execution.CancelAllOrders(types.Reason{Reason: types.OrderReasonStrategyStopped}); err != nil {
			ctx.Logger.Error("failed to cancel orders on stop", zap.Error(err))
		}
	}

	clear(s.entryOrders)
	clear(s.stopOrders)
	s.positionID = ""
	s.state = stateFlat

	ctx.Logger.Info("emacross stopped")

	return nil
}

// OnReset returns the strategy to its freshly-constructed state: no
// subscription, no tracked orders, indicators empty.
func (s *Strategy) OnReset(ctx *strategy.Context) error {
	if ctx.MarketData.Subscribed(s.barType) {
		if err := ctx.MarketData.UnsubscribeBars(s.barType); err != nil {
			ctx.Logger.Warn("failed to unsubscribe on reset", zap.Error(err))
		}
	}

	clear(s.entryOrders)
	clear(s.stopOrders)
	s.positionID = ""
	s.state = stateFlat

	s.fast.Reset()
	s.slow.Reset()
	s.atr.Reset()

	return nil
}
