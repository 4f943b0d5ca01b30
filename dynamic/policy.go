package dynamic

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default values for a resize policy.
const (
	DefaultInitialCapacity = 4
	DefaultGrowthThreshold = 1.0
	DefaultGrowthFactor    = 2.0
	DefaultShrinkThreshold = 0.5
	DefaultShrinkFactor    = 0.5
)

// Errors returned from validating a policy.
var (
	ErrInitialCapacity = errors.New("dynamic: initial capacity must be positive")
	ErrGrowth          = errors.New("dynamic: growth factor must be greater than 1")
	ErrShrink          = errors.New("dynamic: shrink factor must be in (0,1)")
	ErrThresholds      = errors.New("dynamic: thresholds must satisfy 0 < shrink < growth ≤ 1")
	ErrNoHysteresis    = errors.New("dynamic: thresholds and factors leave no hysteresis band")
)

// Policy governs when and how the buffer of a sequence is resized.
//
// Before an insertion, if the load factor is at or above GrowthThreshold, capacity
// is multiplied by GrowthFactor. Before a removal, if the load factor after removal
// would be below ShrinkThreshold, capacity is multiplied by ShrinkFactor. Capacity
// never drops below InitialCapacity.
//
// A policy is copied into each sequence at creation time and cannot be changed
// afterwards.
type Policy struct {
	InitialCapacity int     `yaml:"initial_capacity"`
	GrowthThreshold float64 `yaml:"growth_threshold"`
	GrowthFactor    float64 `yaml:"growth_factor"`
	ShrinkThreshold float64 `yaml:"shrink_threshold"`
	ShrinkFactor    float64 `yaml:"shrink_factor"`
}

// DefaultPolicy returns a policy with initial capacity 4, doubling at a
// load factor of 1.0 and halving below 0.5.
func DefaultPolicy() Policy {
	return Policy{
		InitialCapacity: DefaultInitialCapacity,
		GrowthThreshold: DefaultGrowthThreshold,
		GrowthFactor:    DefaultGrowthFactor,
		ShrinkThreshold: DefaultShrinkThreshold,
		ShrinkFactor:    DefaultShrinkFactor,
	}
}

// Validate checks a policy for consistency. Apart from the range checks for every
// field, thresholds and factors have to leave a hysteresis band: a buffer which
// has just grown must not be eligible for shrinking after the next removal, and
// a buffer which has just shrunk must not be eligible for growing before the
// next insertion.
func (p Policy) Validate() error {
	if p.InitialCapacity <= 0 {
		return ErrInitialCapacity
	}
	if !finite(p.GrowthFactor) || p.GrowthFactor <= 1.0 {
		return ErrGrowth
	}
	if !finite(p.ShrinkFactor) || p.ShrinkFactor <= 0 || p.ShrinkFactor >= 1.0 {
		return ErrShrink
	}
	if !finite(p.GrowthThreshold) || !finite(p.ShrinkThreshold) {
		return ErrThresholds
	}
	if p.ShrinkThreshold <= 0 || p.ShrinkThreshold >= p.GrowthThreshold || p.GrowthThreshold > 1.0 {
		return ErrThresholds
	}
	if p.ShrinkThreshold > p.GrowthThreshold/p.GrowthFactor ||
		p.ShrinkThreshold/p.ShrinkFactor > p.GrowthThreshold {
		return ErrNoHysteresis
	}
	return nil
}

// finite is false for NaN and ±Inf; neither compares usefully against a bound.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LoadPolicy reads a policy from a YAML document. Keys not present in the
// document keep their default values:
//
//	initial_capacity: 16
//	growth_factor: 1.5
//
// The resulting policy is validated before it is returned.
func LoadPolicy(r io.Reader) (Policy, error) {
	p := DefaultPolicy()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF { // empty document
			return p, nil
		}
		tracer().Errorf("cannot decode resize policy: %v", err)
		return DefaultPolicy(), errors.Wrap(err, "dynamic: reading resize policy")
	}
	if err := p.Validate(); err != nil {
		tracer().Errorf("invalid resize policy %+v: %v", p, err)
		return DefaultPolicy(), errors.WithMessagef(err, "policy %+v", p)
	}
	return p, nil
}

// Option is a type to help initializing sequences at creation time.
type Option struct {
	config func(Policy) Policy
}

// InitialCapacity sets the capacity a new sequence starts with. It is also
// the minimum capacity the sequence will ever shrink to.
//
// Use it like this:
//
//	seq := dynamic.New[*string](dynamic.InitialCapacity(64))
func InitialCapacity(n int) Option {
	conf := func(p Policy) Policy {
		p.InitialCapacity = n
		return p
	}
	return Option{config: conf}
}

// WithPolicy replaces the complete resize policy of a new sequence.
func WithPolicy(policy Policy) Option {
	conf := func(Policy) Policy {
		return policy
	}
	return Option{config: conf}
}
