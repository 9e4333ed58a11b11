package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lophi-data/lophi/format"
	"github.com/lophi-data/lophi/pipeline"
)

// GiniAnalysisFile, ReductionReportJSONFile and ReductionReportCSVFile
// are the three document names spec.md §6 gives the report bundle.
const (
	GiniAnalysisFile        = "gini_analysis.json"
	ReductionReportJSONFile = "reduction_report.json"
	ReductionReportCSVFile  = "reduction_report.csv"
)

// Build assembles every report document from a completed pipeline run
// and packs them into a single compressed Archive, ready to write to
// disk alongside the reduced dataset.
func Build(result *pipeline.Result, cfg pipeline.Config, ctype format.CompressionType, now time.Time) (*Archive, error) {
	meta := NewMetadata(cfg.WoE, cfg.MissingThreshold, cfg.CorrelationThreshold, now)

	gini := BuildGiniAnalysis(meta, result.IV)
	giniJSON, err := json.MarshalIndent(gini, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", GiniAnalysisFile, err)
	}

	reduction := BuildReductionReport(meta, result)
	reductionJSON, err := json.MarshalIndent(reduction, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ReductionReportJSONFile, err)
	}

	rows := BuildSummaryRows(result)
	reductionCSV, err := EncodeSummaryCSV(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ReductionReportCSVFile, err)
	}

	archive, err := NewArchive(ctype)
	if err != nil {
		return nil, err
	}
	if err := archive.AddFile(GiniAnalysisFile, giniJSON); err != nil {
		return nil, err
	}
	if err := archive.AddFile(ReductionReportJSONFile, reductionJSON); err != nil {
		return nil, err
	}
	if err := archive.AddFile(ReductionReportCSVFile, reductionCSV); err != nil {
		return nil, err
	}

	return archive, nil
}
