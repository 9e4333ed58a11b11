package sas7bdat

import (
	"fmt"

	"github.com/lophi-data/lophi/internal/errs"
)

// rowDecompressor mirrors compress.Decompressor's shape but decompresses
// into a caller-supplied, exactly-sized buffer: SAS7BDAT rows decompress to
// a known fixed length (row_length), so there is no need to guess an output
// size the way the report archive's codec.Decompress does.
type rowDecompressor interface {
	Decompress(in []byte, out []byte) error
}

type rleDecompressor struct{}

func (rleDecompressor) Decompress(in []byte, out []byte) error { return rleDecompress(in, out) }

type rdcDecompressor struct{}

func (rdcDecompressor) Decompress(in []byte, out []byte) error { return rdcDecompress(in, out) }

// pickRowDecompressor dispatches on the compression marker found in the
// first Column Text block, the same factory-by-identifier shape as
// compress.CreateCodec.
func pickRowDecompressor(marker string) (rowDecompressor, error) {
	switch marker {
	case compressionMarkerRLE:
		return rleDecompressor{}, nil
	case compressionMarkerRDC:
		return rdcDecompressor{}, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: compression marker %q", errs.ErrUnknownSubheaderSig, marker)
	}
}
