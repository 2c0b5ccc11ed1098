// Package testutil provides shared test infrastructure for the transform
// package: golden value loading and float comparison helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// RoundTripTol is the absolute round-trip tolerance at unit magnitude.
const RoundTripTol = 5e-16

// GoldenDataset represents the structure of testdata/golden_transforms.json.
type GoldenDataset struct {
	Cases []GoldenCase `json:"cases"`
}

// GoldenCase is one reference evaluation of a transformation.
type GoldenCase struct {
	Transform string   `json:"transform"`
	Lower     float64  `json:"lower"`
	Upper     float64  `json:"upper"`
	X         float64  `json:"x"`
	F         float64  `json:"f"`
	Finv      *float64 `json:"finv"` // nil where the inverse is too ill-conditioned to pin
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: transform/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_transforms.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance,
// falling back to an absolute tolerance of relTol*1e-3 near zero.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(want, got, relTol*1e-3, relTol) {
		diff := math.Abs(want - got)
		t.Errorf("%s: got %v, want %v (diff=%v)", name, got, want, diff)
	}
}

// AssertRoundTrip checks |got - want| <= RoundTripTol * max(1, |want|).
func AssertRoundTrip(t *testing.T, name string, want, got float64) {
	t.Helper()
	tol := RoundTripTol * math.Max(1, math.Abs(want))
	if math.Abs(want-got) > tol {
		t.Errorf("%s: round trip gave %v, want %v (diff=%v, tol=%v)", name, got, want, math.Abs(want-got), tol)
	}
}
