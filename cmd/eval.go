package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/paramz-go/paramz/transform"
)

// evalMode selects which function of a transformation eval applies.
type evalMode int

const (
	evalForward evalMode = iota
	evalInverse
	evalGrad
)

var (
	evalTransform string
	evalLower     float64
	evalUpper     float64
	evalInverseF  bool
	evalGradF     bool
)

var evalCmd = &cobra.Command{
	Use:   "eval VALUE...",
	Short: "Apply a transformation to values",
	Long: "Apply F (default), Finv (--inverse) or the gradient factor (--grad) of a transformation to each VALUE. " +
		"With --grad, VALUE is a constrained value and the gradient w.r.t. it is taken as 1.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if evalInverseF && evalGradF {
			logrus.Fatalf("--inverse and --grad are mutually exclusive")
		}
		mode := evalForward
		switch {
		case evalInverseF:
			mode = evalInverse
		case evalGradF:
			mode = evalGrad
		}

		values, err := parseValues(args)
		if err != nil {
			logrus.Fatalf("Invalid value: %v", err)
		}
		tr, err := transform.NewRegistry(nil).ByName(evalTransform, evalLower, evalUpper)
		if err != nil {
			logrus.Fatalf("Cannot build transformation: %v", err)
		}
		logrus.Infof("Evaluating %s (%s domain) on %d values", tr.Kind(), tr.Domain(), len(values))
		if err := writeEval(cmd.OutOrStdout(), tr, mode, values); err != nil {
			logrus.Fatalf("Evaluation failed: %v", err)
		}
	},
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// writeEval prints "input<TAB>output" for every value. Out-of-domain inputs
// to Finv or the gradient factor stop at the first offending value.
func writeEval(w io.Writer, tr transform.Transformation, mode evalMode, values []float64) error {
	for _, v := range values {
		var out float64
		switch mode {
		case evalForward:
			out = tr.F(v)
		case evalInverse:
			x, err := tr.Finv(v)
			if err != nil {
				return err
			}
			out = x
		case evalGrad:
			if !tr.Contains(v) {
				_, err := tr.Finv(v)
				return err
			}
			out = tr.Gradfactor(v, 1)
		default:
			panic(fmt.Sprintf("unhandled eval mode %d", mode))
		}
		if _, err := fmt.Fprintf(w, "%g\t%.17g\n", v, out); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	evalCmd.Flags().StringVar(&evalTransform, "transform", "logexp", "Transformation name (logexp, exponent, square, negative-logexp, negative-exponent, logistic)")
	evalCmd.Flags().Float64Var(&evalLower, "lower", 0, "Lower bound (logistic only)")
	evalCmd.Flags().Float64Var(&evalUpper, "upper", 1, "Upper bound (logistic only)")
	evalCmd.Flags().BoolVar(&evalInverseF, "inverse", false, "Apply the inverse Finv instead of F")
	evalCmd.Flags().BoolVar(&evalGradF, "grad", false, "Print the gradient factor dF/dx at x = Finv(VALUE)")
}
