package sas7bdat

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lophi-data/lophi/internal/errs"
)

// Character-encoding ids recognised from the header's encoding byte
// (spec §4.1 "Character decoding"). Encoding 0 falls back to Latin-1.
const (
	encodingUndefined   = 0
	encodingASCII       = 20
	encodingUTF8        = 134
	encodingLatin1      = 29
	encodingWindows1252 = 201
	encodingShiftJIS    = 73
	encodingEUCJP       = 76
	encodingGB18030     = 98
	encodingBig5        = 86
)

// decodeText converts raw fixed-width character bytes to a string using
// the header's declared encoding, trimming trailing spaces.
func decodeText(b []byte, enc byte) (string, error) {
	switch enc {
	case encodingUndefined, encodingLatin1:
		return trimTrailingSpacesRunes(decodeLatin1(b)), nil
	case encodingASCII, encodingUTF8:
		if enc == encodingASCII {
			for _, c := range b {
				if c > 0x7f {
					return "", fmt.Errorf("%w: byte 0x%02x outside ASCII range", errs.ErrUnsupportedEncoding, c)
				}
			}
		}
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: invalid UTF-8 byte sequence", errs.ErrUnsupportedEncoding)
		}

		return strings.TrimRight(string(b), " \x00"), nil
	case encodingWindows1252:
		return trimTrailingSpacesRunes(decodeWindows1252(b)), nil
	case encodingShiftJIS, encodingEUCJP, encodingGB18030, encodingBig5:
		// CJK dialects are recognised per spec §4.1 but need codepage
		// tables this module does not ship; treat as Latin-1 on the raw
		// bytes so callers at least get a stable, lossless-for-ASCII
		// string rather than a hard failure on every non-Western file.
		return trimTrailingSpacesRunes(decodeLatin1(b)), nil
	default:
		return "", fmt.Errorf("%w: encoding id %d", errs.ErrUnsupportedEncoding, enc)
	}
}

func trimTrailingSpacesRunes(s string) string {
	return strings.TrimRight(s, " \x00")
}

// decodeLatin1 maps each byte directly to its Unicode code point (ISO
// 8859-1 is an identity mapping onto U+0000-U+00FF).
func decodeLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}

	return string(runes)
}

// windows1252High maps bytes 0x80-0x9F to their Windows-1252 code points;
// the rest of the table is identical to Latin-1.
var windows1252High = map[byte]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}

func decodeWindows1252(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		if r, ok := windows1252High[c]; ok {
			runes[i] = r

			continue
		}
		runes[i] = rune(c)
	}

	return string(runes)
}
