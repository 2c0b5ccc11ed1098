package transform

import "math"

// softplusLimit is the point past which log1p(exp(x)) equals x in float64.
const softplusLimit = 36.0

// softplus computes log(1 + exp(x)) without overflow.
func softplus(x float64) float64 {
	if x > softplusLimit {
		return x
	}
	return math.Log1p(math.Exp(x))
}

// softplusInv computes log(exp(y) - 1) for y > 0 without overflow.
func softplusInv(y float64) float64 {
	if y > softplusLimit {
		return y
	}
	return math.Log(math.Expm1(y))
}

// Logexp is the softplus transformation onto the positive reals.
type Logexp struct {
	_ byte // non-zero size, so each registry gets its own address
}

func (*Logexp) F(x float64) float64 { return softplus(x) }

func (t *Logexp) Finv(y float64) (float64, error) {
	if !t.Contains(y) {
		return math.NaN(), domainError(t, y)
	}
	return softplusInv(y), nil
}

// Gradfactor uses dF/dx = sigmoid(x) = 1 - exp(-y).
func (*Logexp) Gradfactor(y, dy float64) float64 {
	return dy * -math.Expm1(-y)
}

func (*Logexp) LogJacobian(y float64) float64 {
	return math.Log(-math.Expm1(-y))
}

func (*Logexp) LogJacobianGrad(y float64) float64 {
	return 1 / math.Expm1(y)
}

func (t *Logexp) Initialize(y float64) float64 { return initialize(t, y, math.Abs) }

func (*Logexp) Contains(y float64) bool { return y > 0 && y <= math.MaxFloat64 }

func (*Logexp) Domain() Domain { return Positive }
func (*Logexp) Kind() Kind     { return KindLogexp }
func (*Logexp) String() string { return "+ve" }
func (*Logexp) sealed()        {}

// NegativeLogexp mirrors Logexp onto the negative reals: F(x) = -softplus(x).
type NegativeLogexp struct {
	_ byte
}

func (*NegativeLogexp) F(x float64) float64 { return -softplus(x) }

func (t *NegativeLogexp) Finv(y float64) (float64, error) {
	if !t.Contains(y) {
		return math.NaN(), domainError(t, y)
	}
	return softplusInv(-y), nil
}

// Gradfactor uses dF/dx = -sigmoid(x) = exp(y) - 1.
func (*NegativeLogexp) Gradfactor(y, dy float64) float64 {
	return dy * math.Expm1(y)
}

func (*NegativeLogexp) LogJacobian(y float64) float64 {
	return math.Log(-math.Expm1(y))
}

func (*NegativeLogexp) LogJacobianGrad(y float64) float64 {
	return -1 / math.Expm1(-y)
}

func (t *NegativeLogexp) Initialize(y float64) float64 { return initialize(t, y, negAbs) }

func (*NegativeLogexp) Contains(y float64) bool { return y < 0 && y >= -math.MaxFloat64 }

func (*NegativeLogexp) Domain() Domain { return Negative }
func (*NegativeLogexp) Kind() Kind     { return KindNegativeLogexp }
func (*NegativeLogexp) String() string { return "-ve" }
func (*NegativeLogexp) sealed()        {}
