package types

import "time"

// OrderEvent is the closed set of execution events delivered back to a
// strategy. The unexported marker method keeps the union closed: new kinds
// can only be added in this package, and consumers dispatch with a type
// switch over the concrete types below.
type OrderEvent interface {
	isOrderEvent()

	// EventOrderID returns the identifier of the order this event refers to.
	EventOrderID() string
}

// OrderFilled reports that an order has been completely filled.
type OrderFilled struct {
	OrderID    string
	PositionID string
	Symbol     string
	Side       PurchaseType
	Quantity   float64
	Price      float64
	Timestamp  time.Time
}

// OrderExpired reports that an order reached its expire time without filling.
type OrderExpired struct {
	OrderID    string
	PositionID string
	Timestamp  time.Time
}

// OrderRejected reports that the execution boundary refused an order.
type OrderRejected struct {
	OrderID    string
	PositionID string
	Reason     Reason
	Timestamp  time.Time
}

// OrderCanceled reports that an order was canceled before filling.
type OrderCanceled struct {
	OrderID    string
	PositionID string
	Timestamp  time.Time
}

func (OrderFilled) isOrderEvent()   {}
func (OrderExpired) isOrderEvent()  {}
func (OrderRejected) isOrderEvent() {}
func (OrderCanceled) isOrderEvent() {}

func (e OrderFilled) EventOrderID() string   { return e.OrderID }
func (e OrderExpired) EventOrderID() string  { return e.OrderID }
func (e OrderRejected) EventOrderID() string { return e.OrderID }
func (e OrderCanceled) EventOrderID() string { return e.OrderID }
