package transform

import (
	"fmt"
	"math"
)

// logisticMinGap stands in for a zero distance to a bound (smallest normal
// float64), so y == lower and y == upper map to large finite values.
const logisticMinGap = 0x1p-1022

// Logistic maps x onto [lower, upper] through a scaled sigmoid:
// F(x) = lower + (upper - lower) / (1 + exp(-x)).
//
// Two Logistic values are Equal iff their bounds match.
type Logistic struct {
	lower      float64
	upper      float64
	difference float64
}

func newLogistic(lower, upper float64) (*Logistic, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidBounds, lower, upper)
	}
	if lower >= upper {
		return nil, fmt.Errorf("%w: lower must be < upper, got [%v, %v]", ErrInvalidBounds, lower, upper)
	}
	diff := upper - lower
	if math.IsInf(diff, 0) {
		return nil, fmt.Errorf("%w: interval [%v, %v] is wider than float64 range", ErrInvalidBounds, lower, upper)
	}
	return &Logistic{lower: lower, upper: upper, difference: diff}, nil
}

// Lower returns the lower bound.
func (t *Logistic) Lower() float64 { return t.lower }

// Upper returns the upper bound.
func (t *Logistic) Upper() float64 { return t.upper }

// F clamps its result to [lower, upper] to absorb rounding in the last step.
// exp(-x) overflowing to +Inf yields lower.
func (t *Logistic) F(x float64) float64 {
	y := t.lower + t.difference/(1+math.Exp(-x))
	return max(t.lower, min(t.upper, y))
}

func (t *Logistic) Finv(y float64) (float64, error) {
	if !t.Contains(y) {
		return math.NaN(), domainError(t, y)
	}
	below, above := t.gaps(y)
	if r := below / above; r >= logisticMinGap && r <= math.MaxFloat64 {
		return math.Log(r), nil
	}
	// ratio left the normal range; take the logs separately
	return math.Log(below) - math.Log(above), nil
}

// Gradfactor uses dF/dx = (y - lower)(upper - y) / (upper - lower).
func (t *Logistic) Gradfactor(y, dy float64) float64 {
	return dy * (y - t.lower) * (t.upper - y) / t.difference
}

func (t *Logistic) LogJacobian(y float64) float64 {
	below, above := t.gaps(y)
	return math.Log(below) + math.Log(above) - math.Log(t.difference)
}

func (t *Logistic) LogJacobianGrad(y float64) float64 {
	below, above := t.gaps(y)
	return 1/below - 1/above
}

// Initialize returns the interval midpoint F(0) for values outside the bounds.
func (t *Logistic) Initialize(y float64) float64 { return initialize(t, y, nil) }

func (t *Logistic) Contains(y float64) bool { return y >= t.lower && y <= t.upper }

// Equal reports whether both instances share the same bounds.
func (t *Logistic) Equal(other *Logistic) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.lower == other.lower && t.upper == other.upper
}

// gaps returns the distances from y to each bound. Only an exact zero is
// replaced, so points arbitrarily close to a bound still invert exactly.
func (t *Logistic) gaps(y float64) (below, above float64) {
	below, above = y-t.lower, t.upper-y
	if below == 0 {
		below = logisticMinGap
	}
	if above == 0 {
		above = logisticMinGap
	}
	return below, above
}

func (*Logistic) Domain() Domain { return Bounded }
func (*Logistic) Kind() Kind     { return KindLogistic }
func (t *Logistic) String() string {
	return fmt.Sprintf("%v,%v", t.lower, t.upper)
}
func (*Logistic) sealed() {}
