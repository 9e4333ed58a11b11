package sas7bdat

import "fmt"

// columnMeta describes one resolved column: its name, its byte slice
// within a row, its storage kind, and (for numeric columns) the SAS
// format family that selects date/datetime/time conversion.
type columnMeta struct {
	Name         string
	RowOffset    int
	Length       int
	Numeric      bool
	FormatFamily string // "", "DATE", "DATETIME", "TIME"
}

// assembleColumns resolves column names and formats through the
// gathered Column Text blocks and joins them against the Column
// Attributes array by position (spec §4.1: "After all meta is gathered,
// columns are assembled").
func assembleColumns(acc *metaAccumulator) ([]columnMeta, error) {
	n := len(acc.attrs)
	if len(acc.nameRefs) < n {
		n = len(acc.nameRefs)
	}

	cols := make([]columnMeta, n)
	for i := 0; i < n; i++ {
		name, err := acc.resolveText(acc.nameRefs[i])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}

		cols[i] = columnMeta{
			Name:      name,
			RowOffset: acc.attrs[i].rowOffset,
			Length:    acc.attrs[i].length,
			Numeric:   acc.attrs[i].typeCode == columnTypeNumeric,
		}

		if i < len(acc.fmtLabel) {
			formatStr, err := acc.resolveText(acc.fmtLabel[i].format)
			if err == nil {
				cols[i].FormatFamily = formatFamily(formatStr)
			}
		}
	}

	return cols, nil
}
