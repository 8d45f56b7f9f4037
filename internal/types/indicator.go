package types

type IndicatorType string

const (
	IndicatorTypeEMA IndicatorType = "ema"
	IndicatorTypeATR IndicatorType = "atr"
)
