package loaders

import (
	"path/filepath"
	"strings"

	"github.com/lophi-data/lophi/internal/errs"
)

// Format is one of the three input/output formats spec.md §6 names.
type Format uint8

const (
	FormatCSV Format = iota + 1
	FormatParquet
	FormatSAS7BDAT
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatParquet:
		return "parquet"
	case FormatSAS7BDAT:
		return "sas7bdat"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file's extension to a Format. Detection is
// extension-only per spec.md §6; content sniffing is out of scope.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".parquet":
		return FormatParquet, nil
	case ".sas7bdat":
		return FormatSAS7BDAT, nil
	default:
		return 0, errs.ErrUnknownInputFormat
	}
}
