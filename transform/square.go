package transform

import "math"

// Square maps x to x². Finv returns the non-negative root, so the
// unconstrained parameter lives on x >= 0. F overflows to +Inf for
// |x| > sqrt(MaxFloat64) (about 1.3e154).
type Square struct {
	_ byte
}

func (*Square) F(x float64) float64 { return x * x }

func (t *Square) Finv(y float64) (float64, error) {
	if !t.Contains(y) {
		return math.NaN(), domainError(t, y)
	}
	return math.Sqrt(y), nil
}

func (*Square) Gradfactor(y, dy float64) float64 { return dy * 2 * math.Sqrt(y) }

func (*Square) LogJacobian(y float64) float64 { return math.Ln2 + 0.5*math.Log(y) }

func (*Square) LogJacobianGrad(y float64) float64 { return 0.5 / y }

func (t *Square) Initialize(y float64) float64 { return initialize(t, y, math.Abs) }

func (*Square) Contains(y float64) bool { return y >= 0 && y <= math.MaxFloat64 }

func (*Square) Domain() Domain { return Positive }
func (*Square) Kind() Kind     { return KindSquare }
func (*Square) String() string { return "+sq" }
func (*Square) sealed()        {}
