package transform

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// Transformation is a monotone bijection between an unconstrained real and a
// constrained value, together with the derivatives an optimizer needs.
//
// The set of implementations is closed: Logexp, Exponent, Square,
// NegativeLogexp, NegativeExponent and Logistic. Obtain instances from a
// Registry.
type Transformation interface {
	// F maps an unconstrained x into the domain.
	F(x float64) float64
	// Finv maps an in-domain y back to the unconstrained line.
	// Out-of-domain or NaN input returns a *DomainError.
	Finv(y float64) (float64, error)
	// Gradfactor returns dy * dF/dx evaluated at x = Finv(y).
	Gradfactor(y, dy float64) float64
	// LogJacobian returns log|dF/dx| evaluated at x = Finv(y).
	LogJacobian(y float64) float64
	// LogJacobianGrad returns d LogJacobian / dy.
	LogJacobianGrad(y float64) float64
	// Initialize coerces an arbitrary starting value into the domain.
	Initialize(y float64) float64
	// Contains reports whether y is a valid input to Finv.
	Contains(y float64) bool
	Domain() Domain
	Kind() Kind
	String() string

	sealed()
}

// Kind names one of the closed set of transformation variants.
type Kind int

const (
	KindLogexp Kind = iota
	KindExponent
	KindSquare
	KindNegativeLogexp
	KindNegativeExponent
	KindLogistic
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{KindLogexp, KindExponent, KindSquare, KindNegativeLogexp, KindNegativeExponent, KindLogistic}

var kindNames = map[Kind]string{
	KindLogexp:           "logexp",
	KindExponent:         "exponent",
	KindSquare:           "square",
	KindNegativeLogexp:   "negative-logexp",
	KindNegativeExponent: "negative-exponent",
	KindLogistic:         "logistic",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Parameterized reports whether instances of this kind carry bounds.
func (k Kind) Parameterized() bool {
	return k == KindLogistic
}

// ValidTransforms is the set of recognized transformation names.
// Shared by ConstraintBundle.Validate() and Registry.ByName().
var ValidTransforms = map[string]bool{
	"logexp": true, "exponent": true, "square": true,
	"negative-logexp": true, "negative-exponent": true, "logistic": true,
}

// IsValidTransform returns true if name is a recognized transformation.
func IsValidTransform(name string) bool {
	return ValidTransforms[name]
}

// TransformNames returns the recognized names, sorted.
func TransformNames() []string {
	names := make([]string, 0, len(ValidTransforms))
	for name := range ValidTransforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseKind resolves a transformation name to its Kind.
func ParseKind(name string) (Kind, error) {
	if !IsValidTransform(name) {
		return 0, fmt.Errorf("%w %q; valid: %v", ErrUnknownTransform, name, TransformNames())
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	panic(fmt.Sprintf("unhandled transformation name %q", name))
}

// Equal reports whether a and b describe the same transformation: same kind
// and, for bounded variants, the same bounds.
func Equal(a, b Transformation) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	la, ok := a.(*Logistic)
	if !ok {
		return true
	}
	return la.Equal(b.(*Logistic))
}

// initialize returns y when t accepts it. Otherwise it folds y with fold and,
// if that still misses the domain, falls back to F(0).
func initialize(t Transformation, y float64, fold func(float64) float64) float64 {
	if t.Contains(y) {
		return y
	}
	logrus.Warnf("%s: changing parameter %v to satisfy %s constraint", t.Kind(), y, t.Domain())
	if fold != nil {
		if v := fold(y); t.Contains(v) {
			return v
		}
	}
	return t.F(0)
}

func negAbs(y float64) float64 { return -math.Abs(y) }
