package columnstore

import "github.com/lophi-data/lophi/internal/errs"

// Column is a single named, typed, null-aware column. Exactly one of the
// typed backing slices is populated, selected by Type; this mirrors the
// teacher's fixed-width-field-per-type approach in section.NumericHeader,
// generalized from "one type" to "one of seven".
type Column struct {
	Name  string
	Type  LogicalType
	Valid []bool // Valid[i] == false means row i is null.

	f64 []float64 // Float64
	i64 []int64   // Int64, Date (days), Datetime (ms), Time (ns)
	b   []bool    // Bool
	str []string  // Utf8
}

// NewFloat64Column builds a Float64 column. data[i] is ignored where
// valid[i] is false.
func NewFloat64Column(name string, data []float64, valid []bool) *Column {
	return &Column{Name: name, Type: Float64, f64: data, Valid: valid}
}

// NewInt64Column builds an Int64 column.
func NewInt64Column(name string, data []int64, valid []bool) *Column {
	return &Column{Name: name, Type: Int64, i64: data, Valid: valid}
}

// NewBoolColumn builds a Bool column.
func NewBoolColumn(name string, data []bool, valid []bool) *Column {
	return &Column{Name: name, Type: Bool, b: data, Valid: valid}
}

// NewUtf8Column builds a Utf8 column.
func NewUtf8Column(name string, data []string, valid []bool) *Column {
	return &Column{Name: name, Type: Utf8, str: data, Valid: valid}
}

// NewDateColumn builds a Date column; values are days since the Unix epoch.
func NewDateColumn(name string, days []int64, valid []bool) *Column {
	return &Column{Name: name, Type: Date, i64: days, Valid: valid}
}

// NewDatetimeColumn builds a Datetime column; values are milliseconds since
// the Unix epoch.
func NewDatetimeColumn(name string, millis []int64, valid []bool) *Column {
	return &Column{Name: name, Type: Datetime, i64: millis, Valid: valid}
}

// NewTimeColumn builds a Time column; values are nanoseconds since midnight.
func NewTimeColumn(name string, nanos []int64, valid []bool) *Column {
	return &Column{Name: name, Type: Time, i64: nanos, Valid: valid}
}

// Len returns the column's row count.
func (c *Column) Len() int {
	return len(c.Valid)
}

// IsNull reports whether row i is null.
func (c *Column) IsNull(i int) bool {
	return !c.Valid[i]
}

// NullCount returns the number of null rows.
func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.Valid {
		if !v {
			n++
		}
	}

	return n
}

// Utf8At returns the string value at row i and whether it is valid. Panics
// (via the underlying slice) if the column is not Utf8 — callers check
// Type first, matching the teacher's "typed accessor, caller already knows
// the type" convention (see blob.NumericDecoder's per-type getters).
func (c *Column) Utf8At(i int) (string, bool) {
	return c.str[i], c.Valid[i]
}

// BoolAt returns the bool value at row i and whether it is valid.
func (c *Column) BoolAt(i int) (bool, bool) {
	return c.b[i], c.Valid[i]
}

// Int64At returns the int64 value at row i and whether it is valid. Valid
// for Int64, Date, Datetime, and Time columns.
func (c *Column) Int64At(i int) (int64, bool) {
	return c.i64[i], c.Valid[i]
}

// Float64At returns the float64 value at row i and whether it is valid.
// Valid only for Float64 columns; use AsFloat64 to cast other numeric
// types.
func (c *Column) Float64At(i int) (float64, bool) {
	return c.f64[i], c.Valid[i]
}

// AsFloat64 materializes the column as a []float64 plus validity mask,
// casting Int64/Bool/Date/Datetime/Time as needed. Returns
// ErrColumnTypeMismatch for Utf8 columns.
//
// This is the numeric pipeline's single entry point (spec.md §3: "features
// are partitioned into numeric ... castable to Float64"); the woe and
// correlation packages never branch on LogicalType themselves, they call
// AsFloat64 once per feature.
func (c *Column) AsFloat64() ([]float64, []bool, error) {
	switch c.Type {
	case Float64:
		return c.f64, c.Valid, nil
	case Int64, Date, Datetime, Time:
		out := make([]float64, len(c.i64))
		for i, v := range c.i64 {
			out[i] = float64(v)
		}

		return out, c.Valid, nil
	case Bool:
		out := make([]float64, len(c.b))
		for i, v := range c.b {
			if v {
				out[i] = 1
			}
		}

		return out, c.Valid, nil
	default:
		return nil, nil, errs.ErrColumnTypeMismatch
	}
}

// AsUtf8 materializes a categorical column's values as strings, for use by
// the categorical WoE/IV pipeline. Int64 low-cardinality columns are
// stringified; Float64/Bool/time-like columns return ErrColumnTypeMismatch
// since spec.md restricts categorical analysis to "Utf8 or low-cardinality
// Int".
func (c *Column) AsUtf8() ([]string, []bool, error) {
	switch c.Type {
	case Utf8:
		return c.str, c.Valid, nil
	case Int64:
		out := make([]string, len(c.i64))
		for i, v := range c.i64 {
			out[i] = int64ToString(v)
		}

		return out, c.Valid, nil
	default:
		return nil, nil, errs.ErrColumnTypeMismatch
	}
}

func int64ToString(v int64) string {
	// Avoid pulling in strconv at every call site; kept as a tiny local
	// helper since it is only ever used for interning category labels.
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}

// Clone returns a deep copy of the column sharing no backing arrays with
// c.
func (c *Column) Clone() *Column {
	out := &Column{Name: c.Name, Type: c.Type}
	out.Valid = append([]bool(nil), c.Valid...)
	out.f64 = append([]float64(nil), c.f64...)
	out.i64 = append([]int64(nil), c.i64...)
	out.b = append([]bool(nil), c.b...)
	out.str = append([]string(nil), c.str...)

	return out
}

// Select returns a new column containing only the rows at the given
// indices, preserving order. Used when materializing a row-filtered store.
func (c *Column) Select(indices []int) *Column {
	out := &Column{Name: c.Name, Type: c.Type, Valid: make([]bool, len(indices))}
	switch c.Type {
	case Float64:
		out.f64 = make([]float64, len(indices))
	case Int64, Date, Datetime, Time:
		out.i64 = make([]int64, len(indices))
	case Bool:
		out.b = make([]bool, len(indices))
	case Utf8:
		out.str = make([]string, len(indices))
	}

	for j, i := range indices {
		out.Valid[j] = c.Valid[i]
		switch c.Type {
		case Float64:
			out.f64[j] = c.f64[i]
		case Int64, Date, Datetime, Time:
			out.i64[j] = c.i64[i]
		case Bool:
			out.b[j] = c.b[i]
		case Utf8:
			out.str[j] = c.str[i]
		}
	}

	return out
}
