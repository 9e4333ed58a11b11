package errs

import "errors"

// SAS7BDAT decode errors. Each is reported with the byte offset or page
// index that triggered it, per spec's "Failure model" for the decoder.
var (
	ErrBadMagic              = errors.New("lophi: sas7bdat: invalid magic prefix")
	ErrTruncatedHeader       = errors.New("lophi: sas7bdat: file shorter than declared header length")
	ErrZeroRows              = errors.New("lophi: sas7bdat: zero-row file")
	ErrUnsupportedEncoding   = errors.New("lophi: sas7bdat: unsupported character encoding")
	ErrUnknownPageType       = errors.New("lophi: sas7bdat: unknown page type")
	ErrUnknownSubheaderSig   = errors.New("lophi: sas7bdat: unknown subheader signature")
	ErrDecompressionOverflow = errors.New("lophi: sas7bdat: decompression output overflowed row buffer")
	ErrTruncatedPage         = errors.New("lophi: sas7bdat: page shorter than declared size")
	ErrUnresolvedTextRef     = errors.New("lophi: sas7bdat: column name/format reference into missing text block")
)
