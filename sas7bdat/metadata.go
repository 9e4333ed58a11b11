package sas7bdat

import (
	"fmt"
	"strings"

	"github.com/lophi-data/lophi/endian"
	"github.com/lophi-data/lophi/internal/errs"
)

// textRef is a (text-block index, offset, length) pointer into the
// gathered Column Text blocks, used to resolve column names and
// format/label strings (spec §4.1 "Subheader dispatch").
type textRef struct {
	blockIdx int
	offset   int
	length   int
}

// columnAttr is one entry of a Column Attributes subheader.
type columnAttr struct {
	rowOffset int
	length    int
	typeCode  byte // columnTypeNumeric or columnTypeCharacter
}

// columnFormatLabel is the resolved format and label references for one
// column, in column-encounter order.
type columnFormatLabel struct {
	format textRef
	label  textRef
}

// metaAccumulator gathers the scattered subheader contents of a file's
// Meta/Mix pages before columns are assembled.
type metaAccumulator struct {
	rowLength        int
	rowCount         int
	maxRowsOnMixPage int
	columnCountHint  int

	textBlocks        [][]byte
	compressionMarker string

	nameRefs []textRef
	attrs    []columnAttr
	fmtLabel []columnFormatLabel
}

func newMetaAccumulator() *metaAccumulator {
	return &metaAccumulator{}
}

// consumeSubheader dispatches one subheader block to the matching
// accumulator field. block is the raw page-body slice for this pointer.
func (m *metaAccumulator) consumeSubheader(h *Header, block []byte, ptr subheaderPointer) error {
	if ptr.compression == subheaderCompressionTruncated {
		return nil // truncated subheaders carry no usable payload
	}

	sig, err := subheaderSignature(h, block)
	if err != nil {
		return err
	}

	ptrSize := 4
	if h.Wide {
		ptrSize = 8
	}

	switch {
	case matchesSig(sig, sigRowSize):
		return m.consumeRowSize(block, ptrSize, h.Endian)
	case matchesSig(sig, sigColumnSize):
		return m.consumeColumnSize(block, ptrSize, h.Endian)
	case matchesSig(sig, sigColumnText):
		return m.consumeColumnText(block, ptrSize, h.Endian)
	case matchesSig(sig, sigColumnName):
		return m.consumeColumnName(block, ptrSize, h.Endian)
	case matchesSig(sig, sigColumnAttrs):
		return m.consumeColumnAttrs(block, ptrSize, h.Endian)
	case matchesSig(sig, sigFormatLabel):
		return m.consumeFormatLabel(block, ptrSize, h.Endian)
	default:
		// Unknown subheaders outside the documented table (e.g. a column
		// list or subheader-counts block some writers emit) are ignored
		// rather than rejected; only page types are hard failures.
		return nil
	}
}

func fieldAt(block []byte, ptrSize, fieldIndex int, e endian.EndianEngine) (uint64, error) {
	off := fieldIndex * ptrSize
	if off+ptrSize > len(block) {
		return 0, fmt.Errorf("%w: subheader field %d out of range", errs.ErrTruncatedPage, fieldIndex)
	}

	return readUint(block[off:], ptrSize, e), nil
}

func (m *metaAccumulator) consumeRowSize(block []byte, ptrSize int, e endian.EndianEngine) error {
	// Field layout, in ptrSize-wide slots counting from the signature:
	// slots 1-4 unused padding/flags, slot 5 is row_length, slot 6 is
	// row_count, slot 15 is max_rows_on_mix_page.
	rl, err := fieldAt(block, ptrSize, 5, e)
	if err != nil {
		return err
	}
	rc, err := fieldAt(block, ptrSize, 6, e)
	if err != nil {
		return err
	}

	m.rowLength = int(rl)
	m.rowCount = int(rc)

	if mr, err := fieldAt(block, ptrSize, 15, e); err == nil {
		m.maxRowsOnMixPage = int(mr)
	}

	return nil
}

func (m *metaAccumulator) consumeColumnSize(block []byte, ptrSize int, e endian.EndianEngine) error {
	cc, err := fieldAt(block, ptrSize, 1, e)
	if err != nil {
		return err
	}
	m.columnCountHint = int(cc)

	return nil
}

func (m *metaAccumulator) consumeColumnText(block []byte, ptrSize int, e endian.EndianEngine) error {
	if len(block) < ptrSize+2 {
		return fmt.Errorf("%w: column text block too short", errs.ErrTruncatedPage)
	}
	textLen := int(e.Uint16(block[ptrSize : ptrSize+2]))
	start := ptrSize + 2
	if start+textLen > len(block) {
		textLen = len(block) - start
	}
	text := block[start : start+textLen]

	if len(m.textBlocks) == 0 && len(text) >= 8 {
		marker := string(text[:8])
		if marker == compressionMarkerRLE || marker == compressionMarkerRDC {
			m.compressionMarker = marker
		}
	}

	m.textBlocks = append(m.textBlocks, text)

	return nil
}

const columnNameEntrySize = 8

func (m *metaAccumulator) consumeColumnName(block []byte, ptrSize int, e endian.EndianEngine) error {
	start := ptrSize + 8 // signature + a fixed 8-byte reserved region
	for off := start; off+columnNameEntrySize <= len(block); off += columnNameEntrySize {
		m.nameRefs = append(m.nameRefs, readTextRef(block[off:], e))
	}

	return nil
}

func attrEntrySize(ptrSize int) int { return ptrSize + 8 }

func (m *metaAccumulator) consumeColumnAttrs(block []byte, ptrSize int, e endian.EndianEngine) error {
	entrySize := attrEntrySize(ptrSize)
	start := ptrSize + 8 // signature + a fixed reserved region
	for off := start; off+entrySize <= len(block); off += entrySize {
		rowOffset := readUint(block[off:], ptrSize, e)
		length := int(e.Uint16(block[off+ptrSize : off+ptrSize+2]))
		typeCode := block[off+ptrSize+6]

		m.attrs = append(m.attrs, columnAttr{rowOffset: int(rowOffset), length: length, typeCode: typeCode})
	}

	return nil
}

func readTextRef(b []byte, e endian.EndianEngine) textRef {
	idx := int(e.Uint16(b[0:2]))
	offset := int(e.Uint16(b[2:4]))
	length := int(e.Uint16(b[4:6]))

	return textRef{blockIdx: idx, offset: offset, length: length}
}

func (m *metaAccumulator) consumeFormatLabel(block []byte, ptrSize int, e endian.EndianEngine) error {
	// One Format and Label subheader describes exactly one column: a
	// leading region of numeric format-width/decimals fields, then the
	// format text ref and the label text ref.
	leading := 3 * ptrSize
	if leading+12 > len(block) {
		return nil // short/degenerate subheader, nothing to resolve
	}

	format := readTextRef(block[leading:], e)
	label := readTextRef(block[leading+6:], e)

	m.fmtLabel = append(m.fmtLabel, columnFormatLabel{format: format, label: label})

	return nil
}

func (m *metaAccumulator) resolveText(ref textRef) (string, error) {
	if ref.blockIdx < 0 || ref.blockIdx >= len(m.textBlocks) {
		return "", fmt.Errorf("%w: block %d", errs.ErrUnresolvedTextRef, ref.blockIdx)
	}
	block := m.textBlocks[ref.blockIdx]
	if ref.offset+ref.length > len(block) {
		return "", fmt.Errorf("%w: block %d offset %d len %d", errs.ErrUnresolvedTextRef, ref.blockIdx, ref.offset, ref.length)
	}

	return strings.TrimRight(string(block[ref.offset:ref.offset+ref.length]), " \x00"), nil
}
