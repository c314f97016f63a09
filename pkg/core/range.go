package core

import "math"

// Range is a closed interval [Min, Max] over doubles. A Range is valid iff
// Min <= Max (enforced by construction helpers, not the zero value).
type Range struct {
	Min, Max float64
}

// NewRange builds a Range from explicit bounds.
func NewRange(min, max float64) Range { return Range{Min: min, Max: max} }

// NewRangeUnion builds the smallest Range containing both a and b,
// regardless of their relative order. Grounded on the original source's
// two-argument Range constructor (include/util/Range.hpp).
func NewRangeUnion(a, b float64) Range {
	if a <= b {
		return Range{Min: a, Max: b}
	}
	return Range{Min: b, Max: a}
}

// Empty is the canonical empty range, Union-neutral only as a starting
// accumulator (it must never be treated as valid geometry).
var Empty = Range{Min: math.Inf(1), Max: math.Inf(-1)}

func (r Range) Length() float64 { return r.Max - r.Min }

func (r Range) Contains(x float64) bool { return x >= r.Min && x <= r.Max }

// Surrounds is like Contains but with open bounds, used for strict self-
// intersection avoidance.
func (r Range) Surrounds(x float64) bool { return x > r.Min && x < r.Max }

func (r Range) Clamp(x float64) float64 {
	if x < r.Min {
		return r.Min
	}
	if x > r.Max {
		return r.Max
	}
	return x
}

// Offset shifts both bounds by delta.
func (r Range) Offset(delta float64) Range {
	return Range{Min: r.Min + delta, Max: r.Max + delta}
}

// Expand grows the range by amount in both directions.
func (r Range) Expand(amount float64) Range {
	return Range{Min: r.Min - amount, Max: r.Max + amount}
}

// Union returns the smallest Range containing both ranges.
func (r Range) Union(o Range) Range {
	return Range{Min: minF(r.Min, o.Min), Max: maxF(r.Max, o.Max)}
}

func (r Range) IsValid() bool { return r.Min <= r.Max }

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
