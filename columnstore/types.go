// Package columnstore implements the abstract columnar table described in
// spec.md §3: named, typed columns with per-row null bitmaps, shared by the
// SAS7BDAT decoder, the CSV/Parquet loaders, and the three analytic stages
// (missing filter, IV engine, correlation engine).
//
// The design follows the teacher's section/blob split: a small fixed set of
// logical types (mirroring section.NumericHeader's fixed-width field
// philosophy) and a validity mask per column (mirroring the
// kshedden/datareader consumer's Missing() []bool convention).
package columnstore

import "fmt"

// LogicalType identifies a column's logical data type.
type LogicalType uint8

const (
	Float64 LogicalType = iota + 1
	Int64
	Bool
	Utf8
	Date
	Datetime
	Time
)

func (t LogicalType) String() string {
	switch t {
	case Float64:
		return "Float64"
	case Int64:
		return "Int64"
	case Bool:
		return "Bool"
	case Utf8:
		return "Utf8"
	case Date:
		return "Date"
	case Datetime:
		return "Datetime"
	case Time:
		return "Time"
	default:
		return fmt.Sprintf("LogicalType(%d)", uint8(t))
	}
}

// IsNumeric reports whether values of this type can be cast to Float64 for
// analysis purposes (spec.md §3 "partitioned into numeric and categorical").
func (t LogicalType) IsNumeric() bool {
	switch t {
	case Float64, Int64, Bool, Date, Datetime, Time:
		return true
	default:
		return false
	}
}
