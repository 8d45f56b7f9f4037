// Package identity issues the unique, reconstructable identifiers carried by
// every order and position. An identifier is
//
//	{prefix}-{traderTag}-{strategyTag}-{timeTag}-{counter}
//
// where the time tag is the UTC clock reading formatted as a fixed-width
// YYYYMMDDHHMMSS string and the counter is zero-padded. With a fixed tag pair
// and a non-decreasing clock, identifiers sort by issuance order.
package identity

import (
	"fmt"
	"sync"
	"time"

	"github.com/rxtech-lab/argo-strategy/pkg/errors"
)

const (
	// OrderIDPrefix prefixes order identifiers.
	OrderIDPrefix = "O"
	// PositionIDPrefix prefixes position identifiers.
	PositionIDPrefix = "P"

	timeTagLayout = "20060102150405"

	counterWidth = 6
	// maxCount is the largest counter value representable in the zero-padded
	// field. Generate fails once the counter would pass it; it never wraps.
	maxCount int64 = 999999
)

// Clock supplies the current time. Injected so issuance is deterministic
// under test and in replay.
type Clock func() time.Time

// IDGenerator is the issuance contract consumed by the order factory and the
// strategy lifecycle.
type IDGenerator interface {
	// Generate issues the next identifier and increments the counter.
	Generate() (string, error)
	// SetCount sets the counter baseline, used to resume after a restart
	// without reissuing identifiers already held by outstanding orders.
	// Callers must supply the highest previously issued counter value.
	SetCount(count int64) error
	// Count returns the number of identifiers issued in the current epoch.
	Count() int64
	// Reset zeroes the counter and starts a new generation epoch. Only safe
	// when no identifier from the prior epoch can still be referenced.
	Reset()
}

// Generator issues identifiers for a single (trader tag, strategy tag) pair.
// It is not safe for concurrent use; wrap it with Shared when one generator
// serves multiple concurrently-running strategies.
type Generator struct {
	prefix      string
	traderTag   string
	strategyTag string
	clock       Clock
	count       int64
}

// NewGenerator creates a generator with an explicit prefix.
func NewGenerator(prefix string, traderTag string, strategyTag string, clock Clock) (*Generator, error) {
	if prefix == "" || traderTag == "" || strategyTag == "" {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "prefix, trader tag and strategy tag must be non-empty")
	}

	if clock == nil {
		clock = time.Now
	}

	return &Generator{
		prefix:      prefix,
		traderTag:   traderTag,
		strategyTag: strategyTag,
		clock:       clock,
		count:       0,
	}, nil
}

// NewOrderIDGenerator creates a generator for order identifiers.
func NewOrderIDGenerator(traderTag string, strategyTag string, clock Clock) (*Generator, error) {
	return NewGenerator(OrderIDPrefix, traderTag, strategyTag, clock)
}

// NewPositionIDGenerator creates a generator for position identifiers.
func NewPositionIDGenerator(traderTag string, strategyTag string, clock Clock) (*Generator, error) {
	return NewGenerator(PositionIDPrefix, traderTag, strategyTag, clock)
}

// Generate implements IDGenerator.
func (g *Generator) Generate() (string, error) {
	if g.count >= maxCount {
		return "", errors.Newf(errors.ErrCodeIdentifierExhausted,
			"identifier counter for %s-%s-%s exhausted at %d", g.prefix, g.traderTag, g.strategyTag, g.count)
	}

	g.count++
	timeTag := g.clock().UTC().Format(timeTagLayout)

	return fmt.Sprintf("%s-%s-%s-%s-%0*d", g.prefix, g.traderTag, g.strategyTag, timeTag, counterWidth, g.count), nil
}

// SetCount implements IDGenerator.
func (g *Generator) SetCount(count int64) error {
	if count < 0 {
		return errors.Newf(errors.ErrCodeInvalidCount, "count must be non-negative, got %d", count)
	}

	if count > maxCount {
		return errors.Newf(errors.ErrCodeInvalidCount, "count %d exceeds the maximum representable counter %d", count, maxCount)
	}

	g.count = count

	return nil
}

// Count implements IDGenerator.
func (g *Generator) Count() int64 {
	return g.count
}

// Reset implements IDGenerator.
func (g *Generator) Reset() {
	g.count = 0
}

// TraderTag returns the trader tag this generator issues for.
func (g *Generator) TraderTag() string {
	return g.traderTag
}

// StrategyTag returns the strategy tag this generator issues for.
func (g *Generator) StrategyTag() string {
	return g.strategyTag
}

// Prefix returns the identifier prefix.
func (g *Generator) Prefix() string {
	return g.prefix
}

// SharedGenerator serializes access to a Generator shared across strategies,
// preserving the uniqueness guarantee under concurrent issuance.
type SharedGenerator struct {
	mu sync.Mutex
	g  *Generator
}

// Shared wraps the generator with mutual exclusion.
func (g *Generator) Shared() *SharedGenerator {
	return &SharedGenerator{g: g}
}

// Generate implements IDGenerator.
func (s *SharedGenerator) Generate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.Generate()
}

// SetCount implements IDGenerator.
func (s *SharedGenerator) SetCount(count int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.SetCount(count)
}

// Count implements IDGenerator.
func (s *SharedGenerator) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.Count()
}

// Reset implements IDGenerator.
func (s *SharedGenerator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.g.Reset()
}
