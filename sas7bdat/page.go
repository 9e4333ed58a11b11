package sas7bdat

import (
	"fmt"

	"github.com/lophi-data/lophi/internal/errs"
)

// subheaderPointer is one entry of a Meta/Mix page's subheader directory
// (spec §4.1 "Subheader dispatch"): an (offset, length, compression flag,
// type) pointer into the page body.
type subheaderPointer struct {
	offset      int
	length      int
	compression byte
	subType     byte
}

const (
	subheaderCompressionNone      = 0
	subheaderCompressionTruncated = 1
)

// page holds one decoded page: its type and, for Meta/Mix pages, the
// subheader directory plus the raw body bytes needed to read each entry.
type page struct {
	index     int
	kind      uint16
	body      []byte // the whole raw page, including the 8-byte page-level header
	pointers  []subheaderPointer
	blockRows int // number of row "blocks" declared on this page (Data/Mix)
	dataStart int // byte offset within body where packed rows begin
}

// parsePage decodes one fixed-size page. raw is exactly h.PageSize bytes.
func parsePage(h *Header, raw []byte, index int) (*page, error) {
	if len(raw) < 8 {
		return nil, fmt.Errorf("%w: page %d has %d bytes", errs.ErrTruncatedPage, index, len(raw))
	}

	rawType := h.Endian.Uint16(raw[0:2])
	kind := pageKind(rawType)

	p := &page{index: index, kind: kind, body: raw}

	switch kind {
	case pageTypeAMD:
		return p, nil // skipped with a warning by the caller
	case pageTypeData:
		p.blockRows = int(h.Endian.Uint16(raw[4:6]))
		p.dataStart = 8

		return p, nil
	case pageTypeMeta, pageTypeMix, pageTypeMeta2, pageTypeComp:
		// fall through to subheader directory parsing
	default:
		return nil, fmt.Errorf("%w: page %d type 0x%04x", errs.ErrUnknownPageType, index, rawType)
	}

	p.blockRows = int(h.Endian.Uint16(raw[4:6]))
	subCount := int(h.Endian.Uint16(raw[6:8]))

	ptrSize := 4
	if h.Wide {
		ptrSize = 8
	}
	entrySize := 2*ptrSize + 4

	const dirStart = 8
	need := dirStart + subCount*entrySize
	if len(raw) < need {
		return nil, fmt.Errorf("%w: page %d subheader directory needs %d bytes, has %d", errs.ErrTruncatedPage, index, need, len(raw))
	}

	p.pointers = make([]subheaderPointer, 0, subCount)
	for i := 0; i < subCount; i++ {
		entry := raw[dirStart+i*entrySize:]
		off := int(readUint(entry, ptrSize, h.Endian))
		length := int(readUint(entry[ptrSize:], ptrSize, h.Endian))
		compression := entry[2*ptrSize]
		subType := entry[2*ptrSize+1]

		if length == 0 {
			continue // empty directory slot, per spec "each non-empty block"
		}

		p.pointers = append(p.pointers, subheaderPointer{
			offset:      off,
			length:      length,
			compression: compression,
			subType:     subType,
		})
	}

	p.dataStart = need

	return p, nil
}

// subheaderSignature reads the leading signature word of a subheader block,
// used to dispatch on its kind (spec §4.1 table).
func subheaderSignature(h *Header, block []byte) (uint32, error) {
	ptrSize := 4
	if h.Wide {
		ptrSize = 8
	}
	if len(block) < ptrSize {
		return 0, fmt.Errorf("%w: subheader block has %d bytes", errs.ErrTruncatedPage, len(block))
	}

	if !h.Wide {
		return h.Endian.Uint32(block[:4]), nil
	}

	// 64-bit files store the 4-byte signature in the low-order word; SAS
	// keeps the high word reserved/zero.
	full := h.Endian.Uint64(block[:8])

	return uint32(full & 0xffffffff), nil
}

func matchesSig(sig uint32, candidates []uint32) bool {
	for _, c := range candidates {
		if sig == c {
			return true
		}
	}

	return false
}
