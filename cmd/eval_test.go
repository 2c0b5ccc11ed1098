package cmd

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramz-go/paramz/transform"
)

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"1.5", "-2", "1e-3"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 1e-3}, values)

	_, err = parseValues([]string{"1", "abc"})
	assert.Error(t, err)
}

func TestWriteEval_ForwardAndInverseRoundTrip(t *testing.T) {
	tr, err := transform.NewRegistry(nil).ByName("logistic", 5, 10)
	require.NoError(t, err)

	var fwd bytes.Buffer
	require.NoError(t, writeEval(&fwd, tr, evalForward, []float64{0, 2}))
	lines := strings.Split(strings.TrimSpace(fwd.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0\t7.5", lines[0])

	y, err := strconv.ParseFloat(strings.Split(lines[1], "\t")[1], 64)
	require.NoError(t, err)

	var inv bytes.Buffer
	require.NoError(t, writeEval(&inv, tr, evalInverse, []float64{y}))
	x, err := strconv.ParseFloat(strings.TrimSpace(strings.Split(inv.String(), "\t")[1]), 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x, 1e-12)
}

func TestWriteEval_Grad(t *testing.T) {
	tr, err := transform.NewRegistry(nil).ByName("exponent", 0, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeEval(&buf, tr, evalGrad, []float64{3}))
	assert.Equal(t, "3\t3\n", buf.String())
}

func TestWriteEval_OutOfDomain(t *testing.T) {
	tr, err := transform.NewRegistry(nil).ByName("negative-logexp", 0, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = writeEval(&buf, tr, evalInverse, []float64{-1, 2})
	assert.ErrorIs(t, err, transform.ErrDomain)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "values before the failure are still written")

	err = writeEval(&bytes.Buffer{}, tr, evalGrad, []float64{2})
	assert.ErrorIs(t, err, transform.ErrDomain)
}
