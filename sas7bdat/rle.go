package sas7bdat

import (
	"fmt"

	"github.com/lophi-data/lophi/internal/errs"
)

// rleDecompress implements the SASYZCRL run-length dialect (spec §4.1
// "Compression"). The high nibble of each control byte selects one of 16
// commands; the low nibble either extends a length or is itself the
// payload. out must be pre-sized to the page's declared uncompressed
// length; writes past its end are reported as ErrDecompressionOverflow.
// Decoding stops once out is full, so page padding after the compressed
// stream is not read.
func rleDecompress(in []byte, out []byte) error {
	ip := 0
	op := 0

	put := func(b byte) error {
		if op >= len(out) {
			return errs.ErrDecompressionOverflow
		}
		out[op] = b
		op++

		return nil
	}

	need := func(n int) error {
		if ip+n > len(in) {
			return fmt.Errorf("%w: RLE input truncated at byte %d", errs.ErrTruncatedPage, ip)
		}

		return nil
	}

	for ip < len(in) && op < len(out) {
		control := in[ip]
		hi := control & 0xF0
		lo := int(control & 0x0F)
		ip++

		switch hi {
		case 0x00: // literal copy, length = next byte + 64
			if err := need(1); err != nil {
				return err
			}
			n := int(in[ip]) + 64
			ip++
			if err := need(n); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := put(in[ip+i]); err != nil {
					return err
				}
			}
			ip += n
		case 0x40: // byte fill, count = lo*256+next+18, value = next-but-one byte
			if err := need(2); err != nil {
				return err
			}
			n := lo*256 + int(in[ip]) + 18
			val := in[ip+1]
			ip += 2
			for i := 0; i < n; i++ {
				if err := put(val); err != nil {
					return err
				}
			}
		case 0x60: // space fill, count = lo*256+next+17
			if err := need(1); err != nil {
				return err
			}
			n := lo*256 + int(in[ip]) + 17
			ip++
			for i := 0; i < n; i++ {
				if err := put(' '); err != nil {
					return err
				}
			}
		case 0x70: // zero fill, count = lo*256+next+17
			if err := need(1); err != nil {
				return err
			}
			n := lo*256 + int(in[ip]) + 17
			ip++
			for i := 0; i < n; i++ {
				if err := put(0); err != nil {
					return err
				}
			}
		case 0x80: // literal copy, length = lo+1
			n := lo + 1
			if err := need(n); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := put(in[ip+i]); err != nil {
					return err
				}
			}
			ip += n
		case 0x90: // literal copy, length = lo+17
			n := lo + 17
			if err := need(n); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := put(in[ip+i]); err != nil {
					return err
				}
			}
			ip += n
		case 0xA0: // literal copy, length = lo+33
			n := lo + 33
			if err := need(n); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := put(in[ip+i]); err != nil {
					return err
				}
			}
			ip += n
		case 0xB0: // literal copy, length = lo+49
			n := lo + 49
			if err := need(n); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := put(in[ip+i]); err != nil {
					return err
				}
			}
			ip += n
		case 0xC0: // insert: one literal byte repeated lo+3 times
			if err := need(1); err != nil {
				return err
			}
			n := lo + 3
			val := in[ip]
			ip++
			for i := 0; i < n; i++ {
				if err := put(val); err != nil {
					return err
				}
			}
		case 0xD0: // short fill with '@', count = lo+2
			n := lo + 2
			for i := 0; i < n; i++ {
				if err := put('@'); err != nil {
					return err
				}
			}
		case 0xE0: // short fill with space, count = lo+2
			n := lo + 2
			for i := 0; i < n; i++ {
				if err := put(' '); err != nil {
					return err
				}
			}
		case 0xF0: // short fill with zero, count = lo+1
			n := lo + 1
			for i := 0; i < n; i++ {
				if err := put(0); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: RLE control byte 0x%02x", errs.ErrUnknownSubheaderSig, control)
		}
	}

	return nil
}
