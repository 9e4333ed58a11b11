package loaders

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lophi-data/lophi/columnstore"
)

// columnKind is the type inference engine's working guess for one column,
// widened as more sample rows are seen.
type columnKind uint8

const (
	kindInt64 columnKind = iota
	kindFloat64
	kindBool
	kindUtf8
)

// LoadCSV reads path into a Store. inferSchemaLength bounds how many data
// rows are sampled to infer each column's type (spec.md §6 "Schema
// inference for CSV is bounded by a configurable row count (default
// 10 000; 0 = scan entire file)"); the full file is always read into the
// Store regardless of the sample size.
func LoadCSV(path string, inferSchemaLength int) (*columnstore.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}

	sampleLen := len(rows)
	if inferSchemaLength > 0 && inferSchemaLength < sampleLen {
		sampleLen = inferSchemaLength
	}

	kinds := make([]columnKind, len(header))
	for c := range header {
		kinds[c] = inferColumnKind(rows, c, sampleLen)
	}

	cols := make([]*columnstore.Column, len(header))
	for c, name := range header {
		cols[c] = buildColumn(name, kinds[c], rows, c)
	}

	return columnstore.New(cols...)
}

func cellAt(rows [][]string, row, col int) string {
	if col >= len(rows[row]) {
		return ""
	}

	return rows[row][col]
}

// inferColumnKind infers a column's type over its sample rows: it starts
// at the most specific kind (Int64) and widens whenever a value fails to
// parse at the current kind, never narrowing back.
func inferColumnKind(rows [][]string, col, sampleLen int) columnKind {
	kind := kindInt64
	for r := 0; r < sampleLen; r++ {
		v := strings.TrimSpace(cellAt(rows, r, col))
		if v == "" {
			continue
		}

		for kind != kindUtf8 && !fitsKind(v, kind) {
			kind++
		}
	}

	return kind
}

func fitsKind(v string, kind columnKind) bool {
	switch kind {
	case kindInt64:
		_, err := strconv.ParseInt(v, 10, 64)

		return err == nil
	case kindFloat64:
		_, err := strconv.ParseFloat(v, 64)

		return err == nil
	case kindBool:
		_, err := strconv.ParseBool(v)

		return err == nil
	default:
		return true
	}
}

func buildColumn(name string, kind columnKind, rows [][]string, col int) *columnstore.Column {
	n := len(rows)
	valid := make([]bool, n)

	switch kind {
	case kindInt64:
		data := make([]int64, n)
		for r := 0; r < n; r++ {
			v := strings.TrimSpace(cellAt(rows, r, col))
			if v == "" {
				continue
			}
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				continue
			}
			data[r], valid[r] = parsed, true
		}

		return columnstore.NewInt64Column(name, data, valid)
	case kindFloat64:
		data := make([]float64, n)
		for r := 0; r < n; r++ {
			v := strings.TrimSpace(cellAt(rows, r, col))
			if v == "" {
				continue
			}
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			data[r], valid[r] = parsed, true
		}

		return columnstore.NewFloat64Column(name, data, valid)
	case kindBool:
		data := make([]bool, n)
		for r := 0; r < n; r++ {
			v := strings.TrimSpace(cellAt(rows, r, col))
			if v == "" {
				continue
			}
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				continue
			}
			data[r], valid[r] = parsed, true
		}

		return columnstore.NewBoolColumn(name, data, valid)
	default:
		data := make([]string, n)
		for r := 0; r < n; r++ {
			v := cellAt(rows, r, col)
			data[r] = v
			valid[r] = v != ""
		}

		return columnstore.NewUtf8Column(name, data, valid)
	}
}
