package emacross

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-strategy/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestParseValidConfig() {
	raw := `
symbol: AAPL
bar_interval: 1m
fast_period: 10
slow_period: 20
atr_period: 14
trail_atr_multiple: 2.5
trade_size: 100
entry_expiry: 5m
warmup_bars: 50
`

	config, err := ParseConfig([]byte(raw))
	suite.Require().NoError(err)
	suite.Equal("AAPL", config.Symbol)
	suite.Equal(10, config.FastPeriod)
	suite.Equal(20, config.SlowPeriod)
	suite.Equal(2.5, config.TrailAtrMultiple)
	suite.Equal(5*time.Minute, config.EntryExpiry)
}

func (suite *ConfigTestSuite) TestSlowPeriodMustExceedFast() {
	config := Config{
		Symbol:           "AAPL",
		BarInterval:      "1m",
		FastPeriod:       20,
		SlowPeriod:       10,
		AtrPeriod:        14,
		TrailAtrMultiple: 2.0,
		TradeSize:        100,
	}

	err := config.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyConfigError))
}

func (suite *ConfigTestSuite) TestEqualPeriodsRejected() {
	config := Config{
		Symbol:           "AAPL",
		BarInterval:      "1m",
		FastPeriod:       10,
		SlowPeriod:       10,
		AtrPeriod:        14,
		TrailAtrMultiple: 2.0,
		TradeSize:        100,
	}

	suite.Error(config.Validate())
}

func (suite *ConfigTestSuite) TestMissingSymbolRejected() {
	raw := `
bar_interval: 1m
fast_period: 10
slow_period: 20
atr_period: 14
trail_atr_multiple: 2.0
trade_size: 100
`

	_, err := ParseConfig([]byte(raw))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyConfigError))
}

func (suite *ConfigTestSuite) TestMalformedYamlRejected() {
	_, err := ParseConfig([]byte("symbol: [unterminated"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyConfigError))
}

func (suite *ConfigTestSuite) TestTradeSizeMustSurvivePrecisionRounding() {
	config := Config{
		Symbol:           "AAPL",
		BarInterval:      "1m",
		FastPeriod:       10,
		SlowPeriod:       20,
		AtrPeriod:        14,
		TrailAtrMultiple: 2.0,
		TradeSize:        0.5,
		// Whole units only, so 0.5 floors to zero.
		QuantityPrecision: 0,
	}

	err := config.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyConfigError))
}

func (suite *ConfigTestSuite) TestNewRejectsInvalidConfig() {
	_, err := New(Config{})
	suite.Error(err)
}
