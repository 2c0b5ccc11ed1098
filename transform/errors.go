package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned (wrapped in *DomainError) when Finv receives a
	// value outside the transformation's domain.
	ErrDomain = errors.New("value outside transformation domain")

	// ErrInvalidBounds is returned when a bounded transformation is
	// configured with lower >= upper or a non-finite bound.
	ErrInvalidBounds = errors.New("invalid transformation bounds")

	// ErrUnknownTransform is returned for unrecognized transformation names.
	ErrUnknownTransform = errors.New("unknown transformation")
)

// DomainError reports the offending value and the transformation it was
// passed to. It unwraps to ErrDomain.
type DomainError struct {
	Transform string
	Domain    Domain
	Value     float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v is not in the %s domain", e.Transform, e.Value, e.Domain)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

func domainError(t Transformation, y float64) error {
	return &DomainError{Transform: t.Kind().String(), Domain: t.Domain(), Value: y}
}
