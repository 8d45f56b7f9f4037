package types

import (
	"fmt"
	"time"
)

// MarketData is a single OHLCV bar for a symbol.
type MarketData struct {
	Id     string    `yaml:"id" json:"id" csv:"id"`
	Symbol string    `yaml:"symbol" json:"symbol" csv:"symbol"`
	Time   time.Time `yaml:"time" json:"time" csv:"time"`
	Open   float64   `yaml:"open" json:"open" csv:"open"`
	High   float64   `yaml:"high" json:"high" csv:"high"`
	Low    float64   `yaml:"low" json:"low" csv:"low"`
	Close  float64   `yaml:"close" json:"close" csv:"close"`
	Volume float64   `yaml:"volume" json:"volume" csv:"volume"`
}

// Tick is a single raw price update for a symbol.
type Tick struct {
	Symbol string    `yaml:"symbol" json:"symbol" csv:"symbol"`
	Time   time.Time `yaml:"time" json:"time" csv:"time"`
	Price  float64   `yaml:"price" json:"price" csv:"price"`
	Volume float64   `yaml:"volume" json:"volume" csv:"volume"`
}

// BarType identifies a bar subscription as "SYMBOL-INTERVAL", e.g. "AAPL-1m".
type BarType string

// NewBarType builds a BarType from a symbol and an interval string.
func NewBarType(symbol string, interval string) BarType {
	return BarType(fmt.Sprintf("%s-%s", symbol, interval))
}

// Symbol returns the symbol component of the bar type.
func (b BarType) Symbol() string {
	s := string(b)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '-' {
			return s[:i]
		}
	}

	return s
}
