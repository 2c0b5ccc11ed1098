package transform

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paramz-go/paramz/transform/internal/testutil"
)

// centralDiff approximates dF/dx at x.
func centralDiff(f func(float64) float64, x float64) float64 {
	const h = 1e-6
	return (f(x+h) - f(x-h)) / (2 * h)
}

func gradientCases(t *testing.T) []struct {
	tr Transformation
	ys []float64
} {
	t.Helper()
	r := NewRegistry(nil)
	logistic, err := r.Logistic(-1, 3)
	require.NoError(t, err)
	return []struct {
		tr Transformation
		ys []float64
	}{
		{r.Logexp(), []float64{0.1, 0.7, 1.234, 4, 12}},
		{r.Exponent(), []float64{0.1, 0.7, 1.234, 4, 12}},
		{r.Square(), []float64{0.1, 0.7, 1.234, 4, 12}},
		{r.NegativeLogexp(), []float64{-0.1, -0.7, -2.345, -4, -12}},
		{r.NegativeExponent(), []float64{-0.1, -0.7, -2.345, -4, -12}},
		{logistic, []float64{-0.9, 0, 1, 2.5, 2.95}},
	}
}

func TestGradfactor_MatchesFiniteDifference(t *testing.T) {
	for _, tc := range gradientCases(t) {
		for _, y := range tc.ys {
			t.Run(fmt.Sprintf("%s/%v", tc.tr.Kind(), y), func(t *testing.T) {
				x, err := tc.tr.Finv(y)
				require.NoError(t, err)
				want := centralDiff(tc.tr.F, x)
				testutil.AssertFloat64Equal(t, "gradfactor", want, tc.tr.Gradfactor(y, 1), 1e-5)
				testutil.AssertFloat64Equal(t, "gradfactor scales dy", 2.5*want, tc.tr.Gradfactor(y, 2.5), 1e-5)
			})
		}
	}
}

func TestLogJacobian_ConsistentWithGradfactor(t *testing.T) {
	for _, tc := range gradientCases(t) {
		for _, y := range tc.ys {
			t.Run(fmt.Sprintf("%s/%v", tc.tr.Kind(), y), func(t *testing.T) {
				want := math.Log(math.Abs(tc.tr.Gradfactor(y, 1)))
				testutil.AssertFloat64Equal(t, "log jacobian", want, tc.tr.LogJacobian(y), 1e-9)

				grad := centralDiff(tc.tr.LogJacobian, y)
				testutil.AssertFloat64Equal(t, "log jacobian grad", grad, tc.tr.LogJacobianGrad(y), 1e-4)
			})
		}
	}
}
