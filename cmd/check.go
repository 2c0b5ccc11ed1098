package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/paramz-go/paramz/transform"
)

var (
	checkConfigPath  string
	checkPoints      int
	checkSpan        float64
	checkTolerance   float64
	checkShowMetrics bool
)

// sweepResult is the round-trip outcome for one parameter.
type sweepResult struct {
	Name      string  // parameter name from the bundle
	Transform string  // transformation kind
	Value     float64 // constrained starting value
	Raw       float64 // unconstrained starting value
	WorstX    float64 // sweep point with the largest error
	MaxError  float64 // max |F(Finv(F(x))) - F(x)| / max(1, |F(x)|)
	Failures  int     // sweep points with Finv errors or error above tolerance
}

// OK reports whether every sweep point stayed within tolerance.
func (s sweepResult) OK() bool { return s.Failures == 0 }

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Round-trip check every parameter of a constraint bundle",
	Run: func(cmd *cobra.Command, args []string) {
		if checkConfigPath == "" {
			logrus.Fatalf("--config is required")
		}
		if checkPoints < 2 {
			logrus.Fatalf("--points must be >= 2, got %d", checkPoints)
		}
		if !(checkSpan > 0) || math.IsInf(checkSpan, 0) {
			logrus.Fatalf("--span must be a positive finite number, got %v", checkSpan)
		}
		bundle, err := transform.LoadConstraintBundle(checkConfigPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		promReg := prometheus.NewRegistry()
		registry := transform.NewRegistry(transform.NewMetrics(promReg))
		params, err := bundle.Build(registry)
		if err != nil {
			logrus.Fatalf("Invalid constraint bundle %s: %v", checkConfigPath, err)
		}
		logrus.Infof("Checking %d parameters over %d points in [%v, %v]", len(params), checkPoints, -checkSpan, checkSpan)

		results := sweepAll(params, checkPoints, checkSpan, checkTolerance)
		out := cmd.OutOrStdout()
		if err := writeSweep(out, results); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
		if checkShowMetrics {
			if err := writeMetrics(out, promReg); err != nil {
				logrus.Fatalf("Writing metrics: %v", err)
			}
		}
		for _, r := range results {
			if !r.OK() {
				logrus.Errorf("Parameter %q exceeded tolerance %v at %d points", r.Name, checkTolerance, r.Failures)
				os.Exit(1)
			}
		}
	},
}

// sweepAll runs sweep for every parameter in bundle order.
func sweepAll(params []transform.Constrained, points int, span, tol float64) []sweepResult {
	grid := floats.Span(make([]float64, points), -span, span)
	results := make([]sweepResult, len(params))
	for i, p := range params {
		results[i] = sweep(p, grid, tol)
	}
	return results
}

// sweep maps each grid point through F, back through Finv and forward again,
// and records the worst relative discrepancy in constrained space.
func sweep(p transform.Constrained, grid []float64, tol float64) sweepResult {
	res := sweepResult{Name: p.Name, Transform: p.Transform.Kind().String(), Value: p.Value, Raw: p.Raw}
	for _, x := range grid {
		y := p.Transform.F(x)
		back, err := p.Transform.Finv(y)
		if err != nil {
			logrus.Debugf("%s: Finv(%v) failed: %v", p.Name, y, err)
			res.Failures++
			continue
		}
		again := p.Transform.F(back)
		relErr := math.Abs(again-y) / math.Max(1, math.Abs(y))
		if relErr > res.MaxError {
			res.MaxError = relErr
			res.WorstX = x
		}
		if !scalar.EqualWithinAbsOrRel(again, y, tol, tol) {
			res.Failures++
		}
	}
	return res
}

func writeSweep(w io.Writer, results []sweepResult) error {
	if _, err := fmt.Fprintf(w, "%-20s %-18s %14s %14s %12s %10s %s\n",
		"PARAMETER", "TRANSFORM", "VALUE", "RAW", "MAX_ERR", "WORST_X", "STATUS"); err != nil {
		return err
	}
	for _, r := range results {
		status := "ok"
		if !r.OK() {
			status = fmt.Sprintf("FAIL(%d)", r.Failures)
		}
		if _, err := fmt.Fprintf(w, "%-20s %-18s %14.6g %14.6g %12.3g %10.4g %s\n",
			r.Name, r.Transform, r.Value, r.Raw, r.MaxError, r.WorstX, status); err != nil {
			return err
		}
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to constraint bundle YAML")
	checkCmd.Flags().IntVar(&checkPoints, "points", 201, "Number of sweep points in unconstrained space")
	checkCmd.Flags().Float64Var(&checkSpan, "span", 30, "Sweep covers [-span, span] in unconstrained space")
	checkCmd.Flags().Float64Var(&checkTolerance, "tolerance", 1e-9, "Absolute or relative round-trip tolerance")
	checkCmd.Flags().BoolVar(&checkShowMetrics, "metrics", false, "Print registry metrics in Prometheus text format")
}
