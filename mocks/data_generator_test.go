package mocks

import (
	"testing"
	"time"
)

func TestDataGenerator_Generate(t *testing.T) {
	gen := NewDataGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Count = 100

	data := gen.Generate(config)

	if len(data) != 100 {
		t.Errorf("expected 100 data points, got %d", len(data))
	}

	// Verify data is in chronological order
	for i := 1; i < len(data); i++ {
		if !data[i].Time.After(data[i-1].Time) {
			t.Errorf("data not in chronological order at index %d", i)
		}
	}

	// Verify symbol and id are set
	for i, d := range data {
		if d.Symbol != config.Symbol {
			t.Errorf("expected symbol %s at index %d, got %s", config.Symbol, i, d.Symbol)
		}

		if d.Id == "" {
			t.Errorf("missing id at index %d", i)
		}
	}

	// Verify OHLC values are positive and consistent
	for i, d := range data {
		if d.Open <= 0 || d.High <= 0 || d.Low <= 0 || d.Close <= 0 {
			t.Errorf("invalid OHLC values at index %d: O=%f H=%f L=%f C=%f",
				i, d.Open, d.High, d.Low, d.Close)
		}

		if d.High < d.Low {
			t.Errorf("high below low at index %d", i)
		}
	}
}

func TestDataGenerator_GenerateTrending(t *testing.T) {
	gen := NewDataGenerator(42)
	config := DefaultConfig()
	config.Count = 200
	config.Trend = 0.5

	data := gen.GenerateTrending(config)

	if len(data) != 200 {
		t.Fatalf("expected 200 data points, got %d", len(data))
	}

	for i := 1; i < len(data); i++ {
		if !data[i].Time.After(data[i-1].Time) {
			t.Errorf("data not in chronological order at index %d", i)
		}
	}
}

func TestDataGenerator_Deterministic(t *testing.T) {
	config := DefaultConfig()
	config.Count = 50
	config.StartTime = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	first := NewDataGenerator(7).Generate(config)
	second := NewDataGenerator(7).Generate(config)

	for i := range first {
		if first[i].Close != second[i].Close {
			t.Fatalf("same seed produced different closes at index %d", i)
		}
	}
}
