package sas7bdat

import (
	"fmt"
	"math"
	"time"

	"github.com/lophi-data/lophi/endian"
	"github.com/lophi-data/lophi/internal/errs"
)

// Header is the fixed, self-declaring prefix of a SAS7BDAT file (spec §4.1
// "File layout"). Offsets below are relative to the start of the file and
// hold for both the 32-bit and 64-bit pointer-width variants unless noted.
type Header struct {
	Wide         bool // true when pointers/lengths are 8 bytes instead of 4 (byte offset 32)
	Endian       endian.EndianEngine
	LittleEndian bool
	Encoding     byte // byte offset 70

	DatasetName      string // byte offset 104, 64 bytes, space-padded
	CreationTime     time.Time
	ModificationTime time.Time
	HeaderLength     int
	PageSize         int
	PageCount        int
	ColumnCountHint  int // preliminary column count, confirmed by the Column Size subheader
}

// ParseHeader parses and validates the fixed header at the start of data.
// data must contain at least enough bytes to cover the header (the caller
// reads header32Size first, then re-reads header64Size more if Wide).
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < align1Offset+1 {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrTruncatedHeader, len(data))
	}

	for i := 0; i < 32; i++ {
		if data[i] != magic[i] {
			return nil, fmt.Errorf("%w: byte %d is 0x%02x", errs.ErrBadMagic, i, data[i])
		}
	}

	h := &Header{Wide: data[align1Offset] == align1Value}

	minLen := header32Size
	if h.Wide {
		minLen = header64Size
	}
	if len(data) < minLen {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrTruncatedHeader, minLen, len(data))
	}
	h.HeaderLength = minLen

	if len(data) <= endianOffset {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrTruncatedHeader, len(data))
	}
	switch data[endianOffset] {
	case endianLittle:
		h.Endian = endian.GetLittleEndianEngine()
		h.LittleEndian = true
	case endianBig:
		h.Endian = endian.GetBigEndianEngine()
	default:
		return nil, fmt.Errorf("%w: endian byte 0x%02x", errs.ErrBadMagic, data[endianOffset])
	}

	if len(data) <= encodingOffset {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrTruncatedHeader, len(data))
	}
	h.Encoding = data[encodingOffset]

	const nameOffset = 104
	const nameLen = 64
	if len(data) < nameOffset+nameLen {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrTruncatedHeader, len(data))
	}
	h.DatasetName = trimTrailingSpaces(data[nameOffset : nameOffset+nameLen])

	ptrSize := 4
	if h.Wide {
		ptrSize = 8
	}

	// Creation and modification timestamps are stored as SAS datetime
	// doubles (seconds since 1960-01-01) immediately after the dataset
	// name and file-type fields.
	const timeBlockOffset = 168
	if len(data) < timeBlockOffset+16 {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrTruncatedHeader, len(data))
	}
	h.CreationTime = sasDatetimeToTime(h.Endian.Uint64(data[timeBlockOffset : timeBlockOffset+8]))
	h.ModificationTime = sasDatetimeToTime(h.Endian.Uint64(data[timeBlockOffset+8 : timeBlockOffset+16]))

	tail := timeBlockOffset + 16 + 8 // skip the third (unused) timestamp slot
	need := tail + 4*ptrSize
	if len(data) < need {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrTruncatedHeader, len(data))
	}

	h.HeaderLength = int(readUint(data[tail:], ptrSize, h.Endian))
	h.PageSize = int(readUint(data[tail+ptrSize:], ptrSize, h.Endian))
	h.PageCount = int(readUint(data[tail+2*ptrSize:], ptrSize, h.Endian))
	h.ColumnCountHint = int(readUint(data[tail+3*ptrSize:], ptrSize, h.Endian))

	if h.PageSize <= 0 || h.PageCount < 0 {
		return nil, fmt.Errorf("%w: page_size=%d page_count=%d", errs.ErrTruncatedHeader, h.PageSize, h.PageCount)
	}

	return h, nil
}

func readUint(b []byte, size int, e endian.EndianEngine) uint64 {
	if size == 4 {
		return uint64(e.Uint32(b[:4]))
	}

	return e.Uint64(b[:8])
}

func trimTrailingSpaces(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == ' ' || b[end-1] == 0) {
		end--
	}

	return string(b[:end])
}

// sasDatetimeToTime converts a SAS datetime double (seconds since
// 1960-01-01) to a time.Time, per spec §4.1 "Date/time conversion".
func sasDatetimeToTime(bits uint64) time.Time {
	seconds := math.Float64frombits(bits)
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return time.Time{}
	}

	unixSeconds := seconds - sasEpochDatetimeOffsetSeconds

	return time.Unix(int64(unixSeconds), 0).UTC()
}
