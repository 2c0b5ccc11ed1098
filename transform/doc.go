// Package transform provides scalar bijective transformations used to
// constrain optimization parameters.
//
// # Reading Guide
//
//   - transform.go: the sealed Transformation interface, Kind tags and name table
//   - domain.go: Domain markers (real, positive, negative, bounded)
//   - logexp.go, exponent.go, square.go, logistic.go: the variants
//   - registry.go: per-session instance cache (singletons and bounded variants)
//
// # Conventions
//
// F maps an unconstrained real x onto the constrained domain; Finv maps a
// constrained value y back. Gradfactor(y, dy) returns dy * dF/dx at
// x = Finv(y), which is how a gradient w.r.t. the constrained value is carried
// back to the unconstrained one. LogJacobian(y) is log|dF/dx| at the same
// point.
//
// Instances are obtained from a Registry rather than constructed directly so
// that parameterless variants are shared and bounded variants are reused per
// (lower, upper) pair. A Registry is owned by whatever builds the model; there
// is no package-level cache.
package transform
