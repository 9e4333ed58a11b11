package loaders

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/lophi-data/lophi/columnstore"
)

// WriteCSV writes store to path, one row per Store row, in Store column
// order. Null cells are written as empty fields.
func WriteCSV(store *columnstore.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	cols := store.Columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := w.Write(header); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for row := 0; row < store.Rows(); row++ {
		for i, c := range cols {
			record[i] = cellValue(c, row)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("csv row %d: %w", row, err)
		}
	}

	w.Flush()

	return w.Error()
}

func cellValue(c *columnstore.Column, row int) string {
	if c.IsNull(row) {
		return ""
	}

	switch c.Type {
	case columnstore.Float64:
		v, _ := c.Float64At(row)

		return strconv.FormatFloat(v, 'g', -1, 64)
	case columnstore.Int64, columnstore.Date, columnstore.Datetime, columnstore.Time:
		v, _ := c.Int64At(row)

		return strconv.FormatInt(v, 10)
	case columnstore.Bool:
		v, _ := c.BoolAt(row)

		return strconv.FormatBool(v)
	case columnstore.Utf8:
		v, _ := c.Utf8At(row)

		return v
	default:
		return ""
	}
}
