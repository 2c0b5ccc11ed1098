package transform

import "math"

// expLimit caps the argument of exp so F stays finite.
const expLimit = 709.0

// maxExp is the largest value F can produce. Finv rejects larger magnitudes
// because they could not round-trip.
var maxExp = math.Exp(expLimit)

// clampedExp saturates at maxExp; very negative x underflows to 0.
func clampedExp(x float64) float64 {
	return math.Exp(min(expLimit, x))
}

// Exponent maps x to exp(x).
type Exponent struct {
	_ byte
}

// F saturates at exp(709) instead of overflowing to +Inf.
func (*Exponent) F(x float64) float64 { return clampedExp(x) }

func (t *Exponent) Finv(y float64) (float64, error) {
	if !t.Contains(y) {
		return math.NaN(), domainError(t, y)
	}
	return math.Log(y), nil
}

func (*Exponent) Gradfactor(y, dy float64) float64 { return dy * y }
func (*Exponent) LogJacobian(y float64) float64     { return math.Log(y) }
func (*Exponent) LogJacobianGrad(y float64) float64 { return 1 / y }

func (t *Exponent) Initialize(y float64) float64 { return initialize(t, y, math.Abs) }

func (*Exponent) Contains(y float64) bool { return y > 0 && y <= maxExp }

func (*Exponent) Domain() Domain { return Positive }
func (*Exponent) Kind() Kind     { return KindExponent }
func (*Exponent) String() string { return "+ve" }
func (*Exponent) sealed()        {}

// NegativeExponent maps x to -exp(x).
type NegativeExponent struct {
	_ byte
}

func (*NegativeExponent) F(x float64) float64 { return -clampedExp(x) }

func (t *NegativeExponent) Finv(y float64) (float64, error) {
	if !t.Contains(y) {
		return math.NaN(), domainError(t, y)
	}
	return math.Log(-y), nil
}

// Gradfactor uses dF/dx = -exp(x) = y.
func (*NegativeExponent) Gradfactor(y, dy float64) float64 { return dy * y }
func (*NegativeExponent) LogJacobian(y float64) float64     { return math.Log(-y) }
func (*NegativeExponent) LogJacobianGrad(y float64) float64 { return 1 / y }

func (t *NegativeExponent) Initialize(y float64) float64 { return initialize(t, y, negAbs) }

func (*NegativeExponent) Contains(y float64) bool { return y < 0 && y >= -maxExp }

func (*NegativeExponent) Domain() Domain { return Negative }
func (*NegativeExponent) Kind() Kind     { return KindNegativeExponent }
func (*NegativeExponent) String() string { return "-ve" }
func (*NegativeExponent) sealed()        {}
