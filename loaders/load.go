package loaders

import (
	"fmt"

	"github.com/lophi-data/lophi/columnstore"
)

// Load auto-detects path's format by extension and materializes it into
// a Store. inferSchemaLength only affects CSV inputs.
func Load(path string, inferSchemaLength int) (*columnstore.Store, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatCSV:
		return LoadCSV(path, inferSchemaLength)
	case FormatParquet:
		return LoadParquet(path)
	case FormatSAS7BDAT:
		return loadSAS7BDAT(path)
	default:
		return nil, fmt.Errorf("loaders: unhandled format %s", f)
	}
}

// Write auto-detects path's format by extension and writes store to it.
// Writing SAS7BDAT is out of scope (spec.md's Non-goals).
func Write(store *columnstore.Store, path string) error {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}

	switch f {
	case FormatCSV:
		return WriteCSV(store, path)
	case FormatParquet:
		return WriteParquet(store, path)
	default:
		return fmt.Errorf("loaders: writing format %s is not supported", f)
	}
}
