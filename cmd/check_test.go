package cmd

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramz-go/paramz/transform"
)

const checkBundle = `
parameters:
  - {name: lengthscale, transform: logexp, value: 1.5}
  - {name: variance, transform: exponent}
  - {name: amplitude, transform: square, value: 4}
  - {name: shift, transform: negative-logexp}
  - {name: decay, transform: negative-exponent, value: -0.25}
  - {name: mix, transform: logistic, lower: 0, upper: 1}
  - {name: weight, transform: logistic, lower: -3.5, upper: 2.25, value: 1}
`

func buildCheckParams(t *testing.T, reg prometheus.Registerer) []transform.Constrained {
	t.Helper()
	bundle, err := transform.ParseConstraintBundle([]byte(checkBundle))
	require.NoError(t, err)
	params, err := bundle.Build(transform.NewRegistry(transform.NewMetrics(reg)))
	require.NoError(t, err)
	return params
}

func TestSweepAll_AllTransformsRoundTrip(t *testing.T) {
	params := buildCheckParams(t, prometheus.NewRegistry())
	results := sweepAll(params, 201, 30, 1e-9)
	require.Len(t, results, len(params))
	for _, r := range results {
		assert.True(t, r.OK(), "%s (%s): %d failures, max error %v at x=%v", r.Name, r.Transform, r.Failures, r.MaxError, r.WorstX)
		assert.LessOrEqual(t, r.MaxError, 1e-9)
	}
}

func TestSweep_CountsFinvFailures(t *testing.T) {
	params := buildCheckParams(t, prometheus.NewRegistry())
	// softplus underflows to 0 far left, which Finv rejects
	res := sweep(params[0], []float64{-800, 0, 1}, 1e-9)
	assert.Equal(t, 1, res.Failures)
	assert.False(t, res.OK())
}

func TestWriteSweep_Table(t *testing.T) {
	var buf bytes.Buffer
	err := writeSweep(&buf, []sweepResult{
		{Name: "a", Transform: "logexp", Value: 1, Raw: 0.5},
		{Name: "b", Transform: "logistic", Failures: 3},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "PARAMETER")
	assert.Contains(t, out, "logexp")
	assert.Contains(t, out, "FAIL(3)")
}

func TestWriteMetrics_PrometheusText(t *testing.T) {
	reg := prometheus.NewRegistry()
	buildCheckParams(t, reg)

	var buf bytes.Buffer
	require.NoError(t, writeMetrics(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, "paramz_transform_constructions_total")
	assert.Contains(t, out, `paramz_transform_cached_instances{kind="logistic"} 2`)
	assert.Contains(t, out, `paramz_transform_constructions_total{kind="logexp",result="miss"} 1`)
}
