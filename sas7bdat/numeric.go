package sas7bdat

import "math"

// decodeTruncatedFloat reconstructs an IEEE-754 double from `length`
// (3-8) stored bytes, which are the most-significant bytes of the
// double; the missing low bytes are implicitly zero (spec §4.1
// "Truncated numerics"). Returns (value, isMissing).
func decodeTruncatedFloat(raw []byte, length int, littleEndian bool) (float64, bool) {
	var buf [8]byte

	if littleEndian {
		// The stored bytes are the most-significant bytes of the double
		// in the file's own byte order; for little-endian files that
		// means they occupy the *high* end of the 8-byte field, so copy
		// them to the top and zero-fill the low end.
		copy(buf[8-length:], raw[:length])
	} else {
		copy(buf[:length], raw[:length])
	}

	var bits uint64
	if littleEndian {
		for i := 7; i >= 0; i-- {
			bits = bits<<8 | uint64(buf[i])
		}
	} else {
		for i := 0; i < 8; i++ {
			bits = bits<<8 | uint64(buf[i])
		}
	}

	v := math.Float64frombits(bits)
	if isMissingBitPattern(bits) {
		return 0, true
	}

	return v, false
}

// isMissingBitPattern detects a missing-value sentinel from the
// reconstructed double's most-significant byte: SAS encodes '.' as
// 0x2E in that position, 'A'-'Z' as their ASCII codes, and '_' as 0x5F,
// with the remaining 7 bytes unused.
func isMissingBitPattern(bits uint64) bool {
	top := byte(bits >> 56)
	if top == '.' || top == '_' {
		return true
	}

	return top >= 'A' && top <= 'Z'
}

// formatFamily extracts the leading alphabetic run of a SAS format
// string, case-insensitively uppercased (spec §4.1 "Date/time
// conversion": "DATE9." -> "DATE", "DATETIME20." -> "DATETIME").
func formatFamily(format string) string {
	end := 0
	for end < len(format) {
		c := format[end]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			end++

			continue
		}

		break
	}

	out := make([]byte, end)
	for i := 0; i < end; i++ {
		c := format[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}

	return string(out)
}

// sasDaysToUnixDays converts a SAS date value (days since 1960-01-01) to
// days since the Unix epoch (spec §4.1 "Date/time conversion").
func sasDaysToUnixDays(sasDays float64) int64 {
	return int64(sasDays) - sasEpochDateOffsetDays
}

// sasSecondsToUnixMillis converts a SAS datetime value (seconds since
// 1960-01-01) to milliseconds since the Unix epoch.
func sasSecondsToUnixMillis(sasSeconds float64) int64 {
	return int64((sasSeconds - sasEpochDatetimeOffsetSeconds) * 1000)
}

// sasSecondsOfDayToNanos converts a SAS time-of-day value (seconds since
// midnight) to nanoseconds since midnight.
func sasSecondsOfDayToNanos(sasSeconds float64) int64 {
	return int64(sasSeconds * 1e9)
}
