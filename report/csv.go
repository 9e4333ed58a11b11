package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

var csvHeader = []string{"name", "initial_status", "missing_ratio", "iv", "gini", "dropped_by", "correlated_with"}

// EncodeSummaryCSV renders rows as reduction_report.csv (spec.md §6's
// "name, initial_status, missing_ratio, iv, gini, dropped_by,
// correlated_with" schema). Metrics the run never computed for a row
// (e.g. IV for a feature the missing stage already dropped) are left
// blank rather than written as 0.
func EncodeSummaryCSV(rows []SummaryRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			row.Name,
			row.InitialStatus,
			floatOrBlank(row.MissingRatio, row.HasMissing),
			floatOrBlank(row.IV, row.HasIV),
			floatOrBlank(row.Gini, row.HasGini),
			row.DroppedBy,
			row.CorrelatedWith,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func floatOrBlank(v float64, present bool) string {
	if !present {
		return ""
	}

	return fmt.Sprintf("%.6f", v)
}
