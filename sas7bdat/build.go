package sas7bdat

import (
	"github.com/lophi-data/lophi/columnstore"
)

// columnBuilder accumulates one column's decoded values across all rows
// before handing them to columnstore as a single typed Column.
type columnBuilder struct {
	meta  columnMeta
	typ   columnstore.LogicalType
	valid []bool

	f64 []float64
	i64 []int64
	str []string
}

func newColumnBuilder(meta columnMeta, rows int) columnBuilder {
	b := columnBuilder{meta: meta, typ: logicalTypeOf(meta), valid: make([]bool, rows)}
	switch b.typ {
	case columnstore.Utf8:
		b.str = make([]string, rows)
	default:
		if b.typ == columnstore.Float64 {
			b.f64 = make([]float64, rows)
		} else {
			b.i64 = make([]int64, rows)
		}
	}

	return b
}

func (b *columnBuilder) set(row int, field []byte, h *Header) error {
	if !b.meta.Numeric {
		s, err := decodeText(field, h.Encoding)
		if err != nil {
			return err
		}
		b.str[row] = s
		b.valid[row] = true

		return nil
	}

	v, missing := decodeTruncatedFloat(field, len(field), h.LittleEndian)
	if missing {
		return nil // Valid[row] stays false
	}

	switch b.typ {
	case columnstore.Date:
		b.i64[row] = sasDaysToUnixDays(v)
	case columnstore.Datetime:
		b.i64[row] = sasSecondsToUnixMillis(v)
	case columnstore.Time:
		b.i64[row] = sasSecondsOfDayToNanos(v)
	default:
		b.f64[row] = v
	}
	b.valid[row] = true

	return nil
}

func (b columnBuilder) finish() *columnstore.Column {
	switch b.typ {
	case columnstore.Utf8:
		return columnstore.NewUtf8Column(b.meta.Name, b.str, b.valid)
	case columnstore.Date:
		return columnstore.NewDateColumn(b.meta.Name, b.i64, b.valid)
	case columnstore.Datetime:
		return columnstore.NewDatetimeColumn(b.meta.Name, b.i64, b.valid)
	case columnstore.Time:
		return columnstore.NewTimeColumn(b.meta.Name, b.i64, b.valid)
	default:
		return columnstore.NewFloat64Column(b.meta.Name, b.f64, b.valid)
	}
}
