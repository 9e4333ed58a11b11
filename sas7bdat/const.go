// Package sas7bdat decodes the legacy SAS7BDAT columnar binary file format
// into a columnstore.Store. The format predates any public specification;
// this decoder follows the layout documented by the community-maintained
// readstat/pandas/datareader projects: fixed magic prefix, self-declaring
// header, then page_count equal-sized pages of subheader metadata and
// packed row data, optionally RLE- or RDC-compressed.
package sas7bdat

// magic is the fixed 32-byte prefix every SAS7BDAT file begins with.
var magic = [32]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xc2, 0xea, 0x81, 0x60,
	0xb3, 0x14, 0x11, 0xcf, 0xbd, 0x92, 0x08, 0x00,
	0x09, 0xc7, 0x31, 0x8c, 0x18, 0x1f, 0x10, 0x11,
}

// Alignment byte offsets and values.
const (
	align1Offset = 32 // byte offset of the 32/64-bit alignment marker
	align1Value  = 0x33

	align2Offset = 35 // byte offset of the secondary alignment marker
	align2Value  = 0x33

	endianOffset = 37 // byte offset of the endianness marker
	endianLittle = 0x01
	endianBig    = 0x00

	encodingOffset = 70 // byte offset of the character-encoding id
)

// Header sizes in bytes, for the two alignment variants.
const (
	header32Size = 1024
	header64Size = 1024 + 20 // 64-bit offsets widen several fixed fields
)

// Page type codes (2-byte little/big-endian uint16 per header endianness).
const (
	pageTypeMeta  = 0x0000
	pageTypeData  = 0x0100
	pageTypeMix   = 0x0200
	pageTypeAMD   = 0x0400
	pageTypeMeta2 = 0x4000
	pageTypeComp  = 0x9000
)

// pageTypeMask isolates the bits that carry the page type; some dialects
// OR extra flag bits (e.g. 0x8000) into the word.
const pageTypeMask = 0x0f00

func pageKind(raw uint16) uint16 {
	if raw == pageTypeComp {
		return pageTypeComp
	}

	return raw & pageTypeMask
}

// Subheader signatures, read as the first 4 or 8 bytes of a subheader block
// depending on alignment.
var (
	sigRowSize       = []uint32{0xF7F7F7F7}
	sigColumnSize    = []uint32{0xF6F6F6F6}
	sigColumnText    = []uint32{0xFFFFFFFD}
	sigColumnName    = []uint32{0xFFFFFFFF}
	sigColumnAttrs   = []uint32{0xFFFFFFFC}
	sigFormatLabel   = []uint32{0xFFFFFFFB, 0xFFFFFFFE}
	sigColumnListSig = []uint32{0xFFFFFFFE}
)

// Compression markers, found as the first 8 bytes of the first Column Text
// block.
const (
	compressionMarkerRLE = "SASYZCRL"
	compressionMarkerRDC = "SASYZCR2"
)

// Column type codes from Column Attributes subheaders.
const (
	columnTypeNumeric   = 1
	columnTypeCharacter = 2
)

// sasEpochDateOffsetDays is sas_days such that sas_days-3653 == 0, i.e. the
// SAS epoch (1960-01-01) expressed as days before the Unix epoch.
const sasEpochDateOffsetDays = 3653

// sasEpochDatetimeOffsetSeconds is the SAS epoch (1960-01-01 00:00:00)
// expressed as seconds before the Unix epoch.
const sasEpochDatetimeOffsetSeconds = 315619200
