package utils

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite
}

func TestUtilsTestSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

func (suite *UtilsTestSuite) TestCalculateMaxQuantity() {
	tests := []struct {
		name        string
		balance     float64
		price       float64
		expectedQty float64
	}{
		{
			name:        "Simple case",
			balance:     1000.0,
			price:       100.0,
			expectedQty: 10,
		},
		{
			name:        "Zero balance",
			balance:     0.0,
			price:       100.0,
			expectedQty: 0,
		},
		{
			name:        "Zero price",
			balance:     1000.0,
			price:       0.0,
			expectedQty: 0,
		},
		{
			name:        "Balance less than price",
			balance:     50.0,
			price:       100.0,
			expectedQty: 0.5,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			qty := CalculateMaxQuantity(tc.balance, tc.price)
			suite.Assert().Equal(tc.expectedQty, qty, "Quantity mismatch")
		})
	}
}

func (suite *UtilsTestSuite) TestRoundToDecimalPrecision() {
	suite.Equal(10.12, RoundToDecimalPrecision(10.129, 2))
	suite.Equal(10.0, RoundToDecimalPrecision(10.9, 0))
	suite.Equal(0.0, RoundToDecimalPrecision(0.009, 2))
}

func (suite *UtilsTestSuite) TestCalculateOrderQuantityByPercentage() {
	qty := CalculateOrderQuantityByPercentage(1000.0, 100.0, 0.5)
	suite.Equal(5.0, qty)
}
