package emacross

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-strategy/internal/utils"
	"github.com/rxtech-lab/argo-strategy/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the emacross strategy configuration.
type Config struct {
	// Symbol is the instrument to trade.
	Symbol string `yaml:"symbol" validate:"required"`
	// BarInterval is the bar aggregation interval, e.g. "1m".
	BarInterval string `yaml:"bar_interval" validate:"required"`
	// FastPeriod is the fast EMA period.
	FastPeriod int `yaml:"fast_period" validate:"required,gt=0"`
	// SlowPeriod is the slow EMA period. Must exceed the fast period.
	SlowPeriod int `yaml:"slow_period" validate:"required,gtfield=FastPeriod"`
	// AtrPeriod is the ATR period used for the trailing stop distance.
	AtrPeriod int `yaml:"atr_period" validate:"required,gt=0"`
	// TrailAtrMultiple scales the ATR into the stop offset.
	TrailAtrMultiple float64 `yaml:"trail_atr_multiple" validate:"required,gt=0"`
	// TradeSize is the entry order quantity.
	TradeSize float64 `yaml:"trade_size" validate:"required,gt=0"`
	// QuantityPrecision is the number of decimal places the venue accepts in
	// order quantities. Zero means whole units.
	QuantityPrecision int `yaml:"quantity_precision" validate:"gte=0,lte=8"`
	// EntryExpiry, when positive, makes entry orders GTD with this
	// lifetime. Zero means GTC.
	EntryExpiry time.Duration `yaml:"entry_expiry" validate:"gte=0"`
	// WarmupBars is how many historical bars to request on start to seed
	// the indicators.
	WarmupBars int `yaml:"warmup_bars" validate:"gte=0"`
}

// Validate validates the Config struct.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeStrategyConfigError, "invalid emacross config", err)
	}

	if utils.RoundToDecimalPrecision(c.TradeSize, c.QuantityPrecision) <= 0 {
		return errors.Newf(errors.ErrCodeStrategyConfigError,
			"trade size %v rounds to zero at precision %d", c.TradeSize, c.QuantityPrecision)
	}

	return nil
}

// ParseConfig parses and validates a yaml config document.
func ParseConfig(raw []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeStrategyConfigError, "failed to parse emacross config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
