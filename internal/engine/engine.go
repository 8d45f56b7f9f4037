// Package engine runs one strategy session. A single goroutine pulls bars
// from the replay feed and events from the execution provider and delivers
// them to the strategy one at a time, so strategies never see concurrent
// hook calls.
package engine

import (
	"context"

	"github.com/rxtech-lab/argo-strategy/internal/logger"
	"github.com/rxtech-lab/argo-strategy/internal/marketdata"
	"github.com/rxtech-lab/argo-strategy/internal/strategy"
	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
	"go.uber.org/zap"
)

// MarketDataAware is implemented by execution providers that advance their
// matching on each bar. The Simulated provider is one; a live provider
// matching at a venue would not be.
type MarketDataAware interface {
	UpdateCurrentMarketData(bar types.MarketData)
}

// Engine drives one strategy over one replay feed.
type Engine struct {
	logger   *logger.Logger
	strategy strategy.Strategy
	sctx     *strategy.Context
	feed     *marketdata.ReplayFeed
	events   <-chan types.OrderEvent

	barsProcessed   int
	eventsDelivered int
}

// New creates an engine for the given strategy and session context.
func New(log *logger.Logger, strat strategy.Strategy, sctx *strategy.Context, feed *marketdata.ReplayFeed) (*Engine, error) {
	if log == nil || strat == nil || sctx == nil || feed == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "logger, strategy, context and feed are required")
	}

	if sctx.Execution == nil || sctx.MarketData == nil || sctx.Indicators == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "context is missing execution, market data or indicators")
	}

	return &Engine{
		logger:   log,
		strategy: strat,
		sctx:     sctx,
		feed:     feed,
	}, nil
}

// Run starts the strategy, plays the feed to completion and stops the
// strategy. It blocks until the feed is exhausted or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.strategy.OnStart(e.sctx); err != nil {
		return errors.Wrap(errors.ErrCodeStrategyRuntimeError, "strategy failed to start", err)
	}

	e.events = e.sctx.Execution.Events()

	go e.feed.Start(ctx)

	updates := e.feed.Updates()

	for {
		select {
		case <-ctx.Done():
			return e.stop()
		case update, ok := <-updates:
			if !ok {
				return e.stop()
			}

			e.handleBar(update)
		}
	}
}

// handleBar advances the provider to the new bar, delivers whatever events
// that produced, then updates indicators and calls OnBar. Events caused by a
// bar therefore always reach the strategy before the bar itself.
func (e *Engine) handleBar(update marketdata.BarUpdate) {
	if aware, ok := e.sctx.Execution.(MarketDataAware); ok {
		aware.UpdateCurrentMarketData(update.Bar)
	}

	e.drainEvents()

	e.sctx.Indicators.Update(update.BarType, update.Bar)

	e.barsProcessed++

	if !e.sctx.MarketData.Subscribed(update.BarType) {
		return
	}

	if err := e.strategy.OnBar(e.sctx, update.BarType, update.Bar); err != nil {
		e.logger.Error("strategy OnBar failed",
			zap.String("strategy", e.strategy.Name()),
			zap.String("bar_type", string(update.BarType)),
			zap.Error(err),
		)
	}
}

// drainEvents delivers every event currently queued, without blocking.
func (e *Engine) drainEvents() {
	for {
		select {
		case event, ok := <-e.events:
			if !ok {
				return
			}

			e.eventsDelivered++

			if err := e.strategy.OnEvent(e.sctx, event); err != nil {
				e.logger.Error("strategy OnEvent failed",
					zap.String("strategy", e.strategy.Name()),
					zap.String("order_id", event.EventOrderID()),
					zap.Error(err),
				)
			}
		default:
			return
		}
	}
}

func (e *Engine) stop() error {
	// Deliver events produced by the final bar before stopping.
	e.drainEvents()

	if err := e.strategy.OnStop(e.sctx); err != nil {
		return errors.Wrap(errors.ErrCodeStrategyRuntimeError, "strategy failed to stop", err)
	}

	e.logger.Info("session finished",
		zap.String("strategy", e.strategy.Name()),
		zap.Int("bars_processed", e.barsProcessed),
		zap.Int("events_delivered", e.eventsDelivered),
	)

	return nil
}
