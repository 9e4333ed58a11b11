package sas7bdat

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildMinimalHeader(wide bool) []byte {
	size := header32Size
	if wide {
		size = header64Size
	}
	buf := make([]byte, size)
	copy(buf, magic[:])

	if wide {
		buf[align1Offset] = align1Value
	}
	buf[endianOffset] = endianLittle
	buf[encodingOffset] = encodingUTF8

	copy(buf[104:104+64], []byte("mydata"))
	for i := 104 + 6; i < 104+64; i++ {
		buf[i] = ' '
	}

	ptrSize := 4
	if wide {
		ptrSize = 8
	}

	const tail = 168 + 16 + 8
	putUint := func(off int, v uint64) {
		if ptrSize == 4 {
			binary.LittleEndian.PutUint32(buf[off:], uint32(v))
		} else {
			binary.LittleEndian.PutUint64(buf[off:], v)
		}
	}

	putUint(tail, uint64(size))  // header length
	putUint(tail+ptrSize, 65536) // page size
	putUint(tail+2*ptrSize, 3)   // page count
	putUint(tail+3*ptrSize, 5)   // column count hint

	return buf
}

func TestParseHeader_Narrow(t *testing.T) {
	buf := buildMinimalHeader(false)
	h, err := ParseHeader(buf)
	require.NoError(t, err)
	require.False(t, h.Wide)
	require.True(t, h.LittleEndian)
	require.Equal(t, byte(encodingUTF8), h.Encoding)
	require.Equal(t, "mydata", h.DatasetName)
	require.Equal(t, 65536, h.PageSize)
	require.Equal(t, 3, h.PageCount)
	require.Equal(t, 5, h.ColumnCountHint)
}

func TestParseHeader_Wide(t *testing.T) {
	buf := buildMinimalHeader(true)
	h, err := ParseHeader(buf)
	require.NoError(t, err)
	require.True(t, h.Wide)
	require.Equal(t, 65536, h.PageSize)
}

func TestParseHeader_BadMagic(t *testing.T) {
	buf := buildMinimalHeader(false)
	buf[0] = 0xff
	_, err := ParseHeader(buf)
	require.Error(t, err)
}

func TestParseHeader_Truncated(t *testing.T) {
	buf := buildMinimalHeader(false)
	_, err := ParseHeader(buf[:40])
	require.Error(t, err)
}

func TestParseHeader_BadEndianByte(t *testing.T) {
	buf := buildMinimalHeader(false)
	buf[endianOffset] = 0x7f
	_, err := ParseHeader(buf)
	require.Error(t, err)
}
