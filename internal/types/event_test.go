package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type EventTestSuite struct {
	suite.Suite
}

func TestEventSuite(t *testing.T) {
	suite.Run(t, new(EventTestSuite))
}

func (suite *EventTestSuite) TestEventOrderID() {
	events := []OrderEvent{
		OrderFilled{OrderID: "o-1", Quantity: 10, Price: 100},
		OrderExpired{OrderID: "o-2"},
		OrderRejected{OrderID: "o-3", Reason: Reason{Reason: "insufficient_margin"}},
		OrderCanceled{OrderID: "o-4"},
	}

	suite.Equal("o-1", events[0].EventOrderID())
	suite.Equal("o-2", events[1].EventOrderID())
	suite.Equal("o-3", events[2].EventOrderID())
	suite.Equal("o-4", events[3].EventOrderID())
}

func (suite *EventTestSuite) TestTypeSwitchDispatch() {
	now := time.Now()

	var filled, expired, rejected, canceled int

	events := []OrderEvent{
		OrderFilled{OrderID: "o-1", Timestamp: now},
		OrderRejected{OrderID: "o-2", Timestamp: now},
		OrderExpired{OrderID: "o-3", Timestamp: now},
		OrderCanceled{OrderID: "o-4", Timestamp: now},
		OrderFilled{OrderID: "o-5", Timestamp: now},
	}

	for _, event := range events {
		switch event.(type) {
		case OrderFilled:
			filled++
		case OrderExpired:
			expired++
		case OrderRejected:
			rejected++
		case OrderCanceled:
			canceled++
		}
	}

	suite.Equal(2, filled)
	suite.Equal(1, expired)
	suite.Equal(1, rejected)
	suite.Equal(1, canceled)
}
