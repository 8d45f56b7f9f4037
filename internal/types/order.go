package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
)

type PurchaseType string

type OrderPurpose string

type TimeInForce string

const (
	PurchaseTypeBuy  PurchaseType = "BUY"
	PurchaseTypeSell PurchaseType = "SELL"
)

const (
	OrderPurposeNone       OrderPurpose = "NONE"
	OrderPurposeEntry      OrderPurpose = "ENTRY"
	OrderPurposeExit       OrderPurpose = "EXIT"
	OrderPurposeStopLoss   OrderPurpose = "STOP_LOSS"
	OrderPurposeTakeProfit OrderPurpose = "TAKE_PROFIT"
)

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceGTD TimeInForce = "GTD"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
)

const (
	OrderReasonStopLoss        string = "stop_loss"
	OrderReasonTakeProfit      string = "take_profit"
	OrderReasonStrategy        string = "strategy"
	OrderReasonStrategyStopped string = "strategy_stopped"
)

// Reason records why an order or order-management action happened.
type Reason struct {
	Reason  string `yaml:"reason" json:"reason" csv:"reason" validate:"required"`
	Message string `yaml:"message" json:"message" csv:"message"`
}

// Order is an order value object. Once submitted it is immutable except for
// Price, which may be amended through the execution boundary.
type Order struct {
	OrderID  string       `yaml:"order_id" json:"order_id" csv:"order_id" validate:"required"`
	Symbol   string       `yaml:"symbol" json:"symbol" csv:"symbol" validate:"required"`
	Side     PurchaseType `yaml:"side" json:"side" csv:"side" validate:"required,oneof=BUY SELL"`
	Quantity float64      `yaml:"quantity" json:"quantity" csv:"quantity" validate:"required,gt=0"`
	// Price is the limit or stop trigger price. None for market orders.
	Price optional.Option[float64] `yaml:"price" json:"price" csv:"price"`
	// Purpose records the role this order plays in the position lifecycle.
	Purpose     OrderPurpose `yaml:"purpose" json:"purpose" csv:"purpose" validate:"required,oneof=NONE ENTRY EXIT STOP_LOSS TAKE_PROFIT"`
	TimeInForce TimeInForce  `yaml:"time_in_force" json:"time_in_force" csv:"time_in_force" validate:"required,oneof=GTC GTD IOC FOK"`
	// ExpireTime must be set when TimeInForce is GTD.
	ExpireTime optional.Option[time.Time] `yaml:"expire_time" json:"expire_time" csv:"expire_time"`
	// PositionID correlates this order with the position it opens or protects.
	PositionID   string    `yaml:"position_id" json:"position_id" csv:"position_id"`
	StrategyName string    `yaml:"strategy_name" json:"strategy_name" csv:"strategy_name" validate:"required"`
	Reason       Reason    `yaml:"reason" json:"reason" csv:"reason" validate:"required"`
	Timestamp    time.Time `yaml:"timestamp" json:"timestamp" csv:"timestamp" validate:"required"`
}

// Validate validates the Order struct.
func (o *Order) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOrder, "invalid order", err)
	}

	if o.Price.IsSome() {
		price, err := o.Price.Take()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPrice, "failed to read order price", err)
		}

		if price <= 0 {
			return errors.Newf(errors.ErrCodeInvalidPrice, "order price must be greater than zero: %f", price)
		}
	}

	if o.TimeInForce == TimeInForceGTD && o.ExpireTime.IsNone() {
		return errors.New(errors.ErrCodeInvalidExpiry, "GTD order requires an expire time")
	}

	if o.TimeInForce != TimeInForceGTD && o.ExpireTime.IsSome() {
		return errors.Newf(errors.ErrCodeInvalidExpiry, "expire time set on %s order", o.TimeInForce)
	}

	return nil
}
