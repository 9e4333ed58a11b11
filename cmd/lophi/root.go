package main

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the lophi command tree: the root command runs the
// full reduction pipeline (spec.md §6's default mode), and "convert" is a
// separate subcommand for bare format conversion.
func NewRootCommand() *cobra.Command {
	opts := DefaultRunOptions()
	var useSolverFlag, noSolverFlag bool

	cmd := &cobra.Command{
		Use:   "lophi",
		Short: "Reduce a credit-risk feature table by missing/IV/correlation screening",
		Long: `lophi ingests a CSV, Parquet or SAS7BDAT dataset, scores every feature by
weighted missing ratio, weight-of-evidence information value and pairwise
correlation, drops what fails each threshold in turn, and writes the
surviving table plus a report archive documenting every decision.

EXAMPLES:
  # Reduce a dataset with default thresholds
  lophi --input loans.csv --target bad_flag

  # Custom thresholds and an explicit weight column
  lophi --input loans.sas7bdat --target bad_flag --weight-column wt \
    --missing-threshold 0.25 --correlation-threshold 0.5

  # Convert a file between supported formats without running the pipeline
  lophi convert loans.sas7bdat loans.parquet`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("no-solver") {
				opts.UseSolver = !noSolverFlag
			} else if cmd.Flags().Changed("use-solver") {
				opts.UseSolver = useSolverFlag
			}

			return runPipeline(cmd, opts)
		},
	}

	bindRunFlags(cmd, opts, &useSolverFlag, &noSolverFlag)
	cmd.AddCommand(NewConvertCommand())

	return cmd
}

func bindRunFlags(cmd *cobra.Command, opts *RunOptions, useSolverFlag, noSolverFlag *bool) {
	flags := cmd.Flags()

	flags.StringVar(&opts.Input, "input", "", "input dataset path (required)")
	flags.StringVar(&opts.Target, "target", "", "binary target column name (required)")
	flags.StringVar(&opts.Output, "output", "", "output path prefix (default: derived from --input)")
	flags.Float64Var(&opts.EventValue, "event-value", 0, "raw target value mapped to the event class")
	flags.Float64Var(&opts.NonEventValue, "non-event-value", 0, "raw target value mapped to the non-event class")

	flags.Float64Var(&opts.MissingThreshold, "missing-threshold", opts.MissingThreshold, "weighted missing-ratio ceiling")
	flags.Float64Var(&opts.GiniThreshold, "gini-threshold", opts.GiniThreshold, "minimum information value to survive the IV stage")
	flags.Float64Var(&opts.CorrelationThreshold, "correlation-threshold", opts.CorrelationThreshold, "pairwise |rho| ceiling")

	flags.StringVar(&opts.BinningStrategy, "binning-strategy", opts.BinningStrategy, "prebinning strategy: quantile or cart")
	flags.IntVar(&opts.GiniBins, "gini-bins", opts.GiniBins, "target bin count after the greedy merge")
	flags.IntVar(&opts.Prebins, "prebins", opts.Prebins, "initial quantile/CART leaf count")
	flags.Float64Var(&opts.CartMinBinPct, "cart-min-bin-pct", opts.CartMinBinPct, "minimum CART child share of the finite bucket, percent")
	flags.Float64Var(&opts.MinCategorySamples, "min-category-samples", opts.MinCategorySamples, "rare-category merge threshold for the OTHER bucket")

	flags.BoolVar(useSolverFlag, "use-solver", opts.UseSolver, "refine WoE sequences with the MIP solver")
	flags.BoolVar(noSolverFlag, "no-solver", !opts.UseSolver, "disable the MIP solver")
	flags.StringVar(&opts.SolverTrend, "solver-trend", opts.SolverTrend, "solver trend constraint: none, asc, desc, peak, valley, auto")
	flags.Float64Var(&opts.SolverTimeout, "solver-timeout", opts.SolverTimeout, "per-feature solver timeout, seconds")
	flags.Float64Var(&opts.SolverGap, "solver-gap", opts.SolverGap, "solver optimality gap tolerance")

	flags.StringVar(&opts.WeightColumn, "weight-column", "", "optional row-weight column name")
	flags.StringVar(&opts.DropColumns, "drop-columns", "", "comma-separated list of columns to drop before scoring")
	flags.IntVar(&opts.InferSchemaLength, "infer-schema-length", opts.InferSchemaLength, "CSV schema-inference sample size (0 = scan entire file)")

	flags.BoolVar(&opts.NoConfirm, "no-confirm", false, "skip the interactive confirmation prompt")
	flags.StringVar(&opts.Compression, "compression", opts.Compression, "report archive codec: zstd, none, s2, lz4")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagsMutuallyExclusive("use-solver", "no-solver")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("event-value") {
			opts.HasEventValue = true
		}
		if cmd.Flags().Changed("non-event-value") {
			opts.HasNonEvent = true
		}

		return nil
	}
}
