package execution

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategy/internal/logger"
	"github.com/rxtech-lab/argo-strategy/internal/types"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SimulatedTestSuite struct {
	suite.Suite
	provider *Simulated
}

func TestSimulatedSuite(t *testing.T) {
	suite.Run(t, new(SimulatedTestSuite))
}

func (suite *SimulatedTestSuite) SetupTest() {
	suite.provider = NewSimulated(100000, logger.NewNopLogger())
}

func drainEvents(provider *Simulated) []types.OrderEvent {
	var events []types.OrderEvent

	for {
		select {
		case event := <-provider.Events():
			events = append(events, event)
		default:
			return events
		}
	}
}

func (suite *SimulatedTestSuite) drainEvents() []types.OrderEvent {
	return drainEvents(suite.provider)
}

func marketOrder(id string, side types.PurchaseType, quantity float64) types.Order {
	return types.Order{
		OrderID:      id,
		Symbol:       "AAPL",
		Side:         side,
		Quantity:     quantity,
		Price:        optional.None[float64](),
		Purpose:      types.OrderPurposeEntry,
		TimeInForce:  types.TimeInForceGTC,
		StrategyName: "test",
		Reason:       types.Reason{Reason: types.OrderReasonStrategy},
		Timestamp:    time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	}
}

func stopOrder(id string, side types.PurchaseType, quantity float64, trigger float64) types.Order {
	order := marketOrder(id, side, quantity)
	order.Price = optional.Some(trigger)
	order.Purpose = types.OrderPurposeStopLoss
	order.Reason = types.Reason{Reason: types.OrderReasonStopLoss}

	return order
}

func testBar(t time.Time, high, low, close float64) types.MarketData {
	return types.MarketData{
		Symbol: "AAPL",
		Time:   t,
		Open:   close,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: 1000,
	}
}

func (suite *SimulatedTestSuite) TestMarketOrderFillsAtBarAverage() {
	suite.Require().NoError(suite.provider.SubmitOrder(marketOrder("o-1", types.PurchaseTypeBuy, 10), "p-1"))

	barTime := time.Date(2024, 1, 1, 9, 31, 0, 0, time.UTC)
	suite.provider.UpdateCurrentMarketData(testBar(barTime, 102, 98, 101))

	events := suite.drainEvents()
	suite.Require().Len(events, 1)

	filled, ok := events[0].(types.OrderFilled)
	suite.Require().True(ok)
	suite.Equal("o-1", filled.OrderID)
	suite.Equal("p-1", filled.PositionID)
	suite.Equal(100.0, filled.Price)
	suite.Equal(10.0, filled.Quantity)

	suite.Equal(10.0, suite.provider.Position("AAPL"))
	suite.InDelta(100000-1000, suite.provider.Balance(), 1e-6)
	suite.Empty(suite.provider.OpenOrders())
}

func (suite *SimulatedTestSuite) TestSellStopTriggersOnLow() {
	suite.Require().NoError(suite.provider.SubmitOrder(stopOrder("o-1", types.PurchaseTypeSell, 10, 95), "p-1"))

	// Bar stays above the trigger: order keeps resting.
	suite.provider.UpdateCurrentMarketData(testBar(time.Now(), 102, 96, 101))
	suite.Empty(suite.drainEvents())
	suite.Len(suite.provider.OpenOrders(), 1)

	// Bar trades through the trigger: fill at the stop price.
	suite.provider.UpdateCurrentMarketData(testBar(time.Now(), 99, 94, 94.5))

	events := suite.drainEvents()
	suite.Require().Len(events, 1)

	filled, ok := events[0].(types.OrderFilled)
	suite.Require().True(ok)
	suite.Equal(95.0, filled.Price)
	suite.Equal(-10.0, suite.provider.Position("AAPL"))
}

func (suite *SimulatedTestSuite) TestBuyStopTriggersOnHigh() {
	suite.Require().NoError(suite.provider.SubmitOrder(stopOrder("o-1", types.PurchaseTypeBuy, 5, 105), "p-1"))

	suite.provider.UpdateCurrentMarketData(testBar(time.Now(), 104, 100, 103))
	suite.Empty(suite.drainEvents())

	suite.provider.UpdateCurrentMarketData(testBar(time.Now(), 106, 101, 105.5))

	events := suite.drainEvents()
	suite.Require().Len(events, 1)
	suite.Equal(105.0, events[0].(types.OrderFilled).Price)
}

func (suite *SimulatedTestSuite) TestModifyOrder() {
	suite.Require().NoError(suite.provider.SubmitOrder(stopOrder("o-1", types.PurchaseTypeSell, 10, 95), "p-1"))

	suite.NoError(suite.provider.ModifyOrder("o-1", 97))

	// The old trigger no longer fills, the new one does.
	suite.provider.UpdateCurrentMarketData(testBar(time.Now(), 99, 96.5, 98))

	events := suite.drainEvents()
	suite.Require().Len(events, 1)
	suite.Equal(97.0, events[0].(types.OrderFilled).Price)
}

func (suite *SimulatedTestSuite) TestModifyOrderErrors() {
	err := suite.provider.ModifyOrder("missing", 97)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeOrderNotFound))

	suite.Require().NoError(suite.provider.SubmitOrder(marketOrder("o-1", types.PurchaseTypeBuy, 1), "p-1"))

	err = suite.provider.ModifyOrder("o-1", 97)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeModifyFailed))

	err = suite.provider.ModifyOrder("o-1", -5)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPrice))
}

func (suite *SimulatedTestSuite) TestGTDOrderExpires() {
	order := marketOrder("o-1", types.PurchaseTypeBuy, 10)
	order.TimeInForce = types.TimeInForceGTD
	order.ExpireTime = optional.Some(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	suite.Require().NoError(suite.provider.SubmitOrder(order, "p-1"))

	suite.provider.UpdateCurrentMarketData(testBar(time.Date(2024, 1, 1, 10, 1, 0, 0, time.UTC), 102, 98, 100))

	events := suite.drainEvents()
	suite.Require().Len(events, 1)

	expired, ok := events[0].(types.OrderExpired)
	suite.Require().True(ok)
	suite.Equal("o-1", expired.OrderID)
	suite.Equal("p-1", expired.PositionID)
	suite.Empty(suite.provider.OpenOrders())
}

func (suite *SimulatedTestSuite) TestBuyRejectedOnInsufficientBalance() {
	provider := NewSimulated(100, logger.NewNopLogger())
	suite.Require().NoError(provider.SubmitOrder(marketOrder("o-1", types.PurchaseTypeBuy, 10), "p-1"))

	provider.UpdateCurrentMarketData(testBar(time.Now(), 102, 98, 100))

	events := drainEvents(provider)
	suite.Require().Len(events, 1)

	rejected, ok := events[0].(types.OrderRejected)
	suite.Require().True(ok)
	suite.Equal("insufficient_buying_power", rejected.Reason.Reason)
	suite.Equal(0.0, provider.Position("AAPL"))
}

func (suite *SimulatedTestSuite) TestCancelAllOrders() {
	suite.Require().NoError(suite.provider.SubmitOrder(stopOrder("o-1", types.PurchaseTypeSell, 10, 95), "p-1"))
	suite.Require().NoError(suite.provider.SubmitOrder(stopOrder("o-2", types.PurchaseTypeSell, 10, 90), "p-2"))

	suite.NoError(suite.provider.CancelAllOrders(types.Reason{Reason: types.OrderReasonStrategyStopped}))

	events := suite.drainEvents()
	suite.Len(events, 2)

	for _, event := range events {
		_, ok := event.(types.OrderCanceled)
		suite.True(ok)
	}

	suite.Empty(suite.provider.OpenOrders())
}

func (suite *SimulatedTestSuite) TestFlattenAllPositions() {
	suite.Require().NoError(suite.provider.SubmitOrder(marketOrder("o-1", types.PurchaseTypeBuy, 10), "p-1"))
	suite.provider.UpdateCurrentMarketData(testBar(time.Now(), 102, 98, 100))
	suite.drainEvents()

	suite.Require().Equal(10.0, suite.provider.Position("AAPL"))

	suite.NoError(suite.provider.FlattenAllPositions())
	suite.Equal(0.0, suite.provider.Position("AAPL"))

	// Bought 10 at 100, closed 10 at the last close 100: balance is back.
	suite.InDelta(100000.0, suite.provider.Balance(), 1e-6)
}
