package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lophi-data/lophi/loaders"
)

// NewConvertCommand builds the "convert" subcommand (spec.md §6 "convert
// SRC [DST] subcommand for format conversion"): it loads SRC, auto-detects
// DST's format by extension, and writes it back out untouched. No scoring
// stage runs.
func NewConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert SRC [DST]",
		Short: "Convert a CSV, Parquet or SAS7BDAT dataset to CSV or Parquet without running the pipeline",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args)
		},
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	src := args[0]
	dst := args[1:]

	dstPath := defaultConvertTarget(src)
	if len(dst) == 1 {
		dstPath = dst[0]
	}

	store, err := loaders.Load(src, 0)
	if err != nil {
		return fmt.Errorf("load %q: %w", src, err)
	}

	if err := loaders.Write(store, dstPath); err != nil {
		return fmt.Errorf("write %q: %w", dstPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "converted %s (%d rows, %d cols) -> %s\n", src, store.Rows(), store.NumCols(), dstPath)

	return nil
}

// defaultConvertTarget swaps SRC's extension for its sibling csv/parquet
// extension when no DST is given, since SAS7BDAT is read-only here.
func defaultConvertTarget(src string) string {
	ext := filepath.Ext(src)
	base := strings.TrimSuffix(src, ext)

	switch strings.ToLower(ext) {
	case ".csv":
		return base + ".parquet"
	default:
		return base + ".csv"
	}
}
