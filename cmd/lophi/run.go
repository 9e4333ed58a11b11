package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/loaders"
	"github.com/lophi-data/lophi/pipeline"
	"github.com/lophi-data/lophi/report"
)

const reportArchiveSuffix = "_report.lphi"

func runPipeline(cmd *cobra.Command, opts *RunOptions) error {
	cfg, err := opts.pipelineConfig()
	if err != nil {
		return err
	}
	ctype, err := parseCompression(opts.Compression)
	if err != nil {
		return err
	}

	store, err := loaders.Load(opts.Input, opts.InferSchemaLength)
	if err != nil {
		return fmt.Errorf("load %q: %w", opts.Input, err)
	}

	outPrefix := opts.Output
	if outPrefix == "" {
		outPrefix = defaultOutputPrefix(opts.Input)
	}
	reducedPath := reducedOutputPath(opts.Input, outPrefix)
	archivePath := outPrefix + reportArchiveSuffix

	if !opts.NoConfirm {
		if !confirmRun(cmd, store, opts, reducedPath, archivePath) {
			fmt.Fprintln(cmd.OutOrStdout(), "aborted")

			return nil
		}
	}

	logger := newPipelineLogger(cmd)
	controller := pipeline.NewController(cfg, logger)

	result, err := controller.Run(context.Background(), store)
	if err != nil {
		return err
	}

	if err := loaders.Write(result.Store, reducedPath); err != nil {
		return fmt.Errorf("write %q: %w", reducedPath, err)
	}

	archive, err := report.Build(result, cfg, ctype, time.Now())
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("create %q: %w", archivePath, err)
	}
	defer f.Close()

	if _, err := archive.WriteTo(f); err != nil {
		return fmt.Errorf("write %q: %w", archivePath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "reduced %d -> %d columns\nwrote %s\nwrote %s\n",
		result.InitialColumnCount, result.Store.NumCols(), reducedPath, archivePath)

	return nil
}

// defaultOutputPrefix derives "{input}_reduced" minus its original
// extension, per spec.md §6's output naming convention.
func defaultOutputPrefix(input string) string {
	ext := filepath.Ext(input)

	return strings.TrimSuffix(input, ext) + "_reduced"
}

// reducedOutputPath picks the surviving-table extension: sas7bdat inputs
// fall back to CSV since writing sas7bdat is a non-goal.
func reducedOutputPath(input, prefix string) string {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".parquet":
		return prefix + ".parquet"
	default:
		return prefix + ".csv"
	}
}

func confirmRun(cmd *cobra.Command, store *columnstore.Store, opts *RunOptions, reducedPath, archivePath string) bool {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "input:  %s (%d rows, %d cols)\n", opts.Input, store.Rows(), store.NumCols())
	fmt.Fprintf(out, "target: %s\n", opts.Target)
	fmt.Fprintf(out, "writes: %s\n        %s\n", reducedPath, archivePath)
	fmt.Fprint(out, "proceed? [y/N] ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))

	return answer == "y" || answer == "yes"
}
