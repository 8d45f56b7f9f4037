package identity

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-strategy/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func (suite *GeneratorTestSuite) newGenerator() *Generator {
	g, err := NewOrderIDGenerator("TRADER-001", "EMACROSS", fixedClock(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)))
	suite.Require().NoError(err)

	return g
}

func (suite *GeneratorTestSuite) TestNewGeneratorValidation() {
	_, err := NewGenerator("", "TRADER-001", "EMACROSS", nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	_, err = NewOrderIDGenerator("", "EMACROSS", nil)
	suite.Error(err)

	_, err = NewPositionIDGenerator("TRADER-001", "", nil)
	suite.Error(err)
}

func (suite *GeneratorTestSuite) TestGenerateFormat() {
	g := suite.newGenerator()

	id, err := g.Generate()
	suite.NoError(err)
	suite.Equal("O-TRADER-001-EMACROSS-20240101093000-000001", id)

	id, err = g.Generate()
	suite.NoError(err)
	suite.Equal("O-TRADER-001-EMACROSS-20240101093000-000002", id)
}

func (suite *GeneratorTestSuite) TestPositionPrefix() {
	g, err := NewPositionIDGenerator("TRADER-001", "EMACROSS", fixedClock(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)))
	suite.Require().NoError(err)

	id, err := g.Generate()
	suite.NoError(err)
	suite.Equal("P-TRADER-001-EMACROSS-20240101093000-000001", id)
}

func (suite *GeneratorTestSuite) TestGeneratePairwiseDistinct() {
	// Even with a frozen clock, the counter keeps identifiers distinct.
	g := suite.newGenerator()
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id, err := g.Generate()
		suite.Require().NoError(err)
		suite.False(seen[id], "duplicate identifier: %s", id)
		seen[id] = true
	}
}

func (suite *GeneratorTestSuite) TestGenerateSortableByIssuance() {
	now := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	current := now
	g, err := NewOrderIDGenerator("TRADER-001", "EMACROSS", func() time.Time { return current })
	suite.Require().NoError(err)

	var previous string

	for i := 0; i < 100; i++ {
		id, err := g.Generate()
		suite.Require().NoError(err)

		if previous != "" {
			suite.Less(previous, id)
		}

		previous = id
		current = current.Add(time.Second)
	}
}

func (suite *GeneratorTestSuite) TestSetCountResumesAfterBaseline() {
	g := suite.newGenerator()

	issued := make(map[string]bool)

	for i := 0; i < 5; i++ {
		id, err := g.Generate()
		suite.Require().NoError(err)
		issued[id] = true
	}

	// Simulate a restart that restores the highest issued counter.
	restarted := suite.newGenerator()
	suite.NoError(restarted.SetCount(5))

	id, err := restarted.Generate()
	suite.NoError(err)
	suite.Equal(int64(6), restarted.Count())
	suite.False(issued[id], "restored generator reissued %s", id)
}

func (suite *GeneratorTestSuite) TestSetCountRejectsInvalid() {
	g := suite.newGenerator()

	err := g.SetCount(-1)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidCount))

	err = g.SetCount(maxCount + 1)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidCount))
}

func (suite *GeneratorTestSuite) TestReset() {
	g := suite.newGenerator()

	first, err := g.Generate()
	suite.Require().NoError(err)

	g.Reset()
	suite.Equal(int64(0), g.Count())

	// A new epoch starts from the same counter values.
	second, err := g.Generate()
	suite.NoError(err)
	suite.Equal(first, second)
}

func (suite *GeneratorTestSuite) TestGenerateFailsFastOnExhaustion() {
	g := suite.newGenerator()
	suite.Require().NoError(g.SetCount(maxCount))

	_, err := g.Generate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIdentifierExhausted))

	// The counter does not wrap: repeated calls keep failing.
	_, err = g.Generate()
	suite.Error(err)
	suite.Equal(maxCount, g.Count())
}

func (suite *GeneratorTestSuite) TestSharedGeneratorConcurrentUniqueness() {
	g := suite.newGenerator()
	shared := g.Shared()

	const goroutines = 8

	const perGoroutine = 200

	var (
		mu  sync.Mutex
		ids = make(map[string]bool)
		wg  sync.WaitGroup
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < perGoroutine; j++ {
				id, err := shared.Generate()
				if err != nil {
					panic(fmt.Sprintf("generate failed: %v", err))
				}

				mu.Lock()
				ids[id] = true
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	suite.Len(ids, goroutines*perGoroutine)
	suite.Equal(int64(goroutines*perGoroutine), shared.Count())
}
