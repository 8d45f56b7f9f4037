package utils

import "math"

// CalculateMaxQuantity calculates the maximum quantity that can be bought
// with the given balance and respecting decimal precision.
func CalculateMaxQuantity(balance float64, price float64) float64 {
	if price <= 0 || balance <= 0 {
		return 0
	}

	return balance / price
}

// RoundToDecimalPrecision rounds the quantity down to the specified decimal
// precision. Flooring keeps a rounded buy quantity affordable.
func RoundToDecimalPrecision(quantity float64, decimalPrecision int) float64 {
	multiplier := math.Pow10(decimalPrecision)

	return math.Floor(quantity*multiplier) / multiplier
}

// CalculateOrderQuantityByPercentage calculates the quantity of an order by
// the given percentage of the balance.
func CalculateOrderQuantityByPercentage(balance float64, price float64, percentage float64) float64 {
	return CalculateMaxQuantity(balance*percentage, price)
}
