package sas7bdat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeText_UTF8(t *testing.T) {
	s, err := decodeText([]byte("caf\xc3\xa9  "), encodingUTF8)
	require.NoError(t, err)
	require.Equal(t, "café", s)
}

func TestDecodeText_ASCIIRejectsHighBytes(t *testing.T) {
	_, err := decodeText([]byte{0xff}, encodingASCII)
	require.Error(t, err)
}

func TestDecodeText_Latin1(t *testing.T) {
	s, err := decodeText([]byte{0xe9, ' '}, encodingLatin1)
	require.NoError(t, err)
	require.Equal(t, "é", s)
}

func TestDecodeText_Windows1252HighByte(t *testing.T) {
	s, err := decodeText([]byte{0x80}, encodingWindows1252) // euro sign
	require.NoError(t, err)
	require.Equal(t, "€", s)
}

func TestDecodeText_CJKFallsBackToLatin1(t *testing.T) {
	s, err := decodeText([]byte{0x41, 0x42}, encodingShiftJIS)
	require.NoError(t, err)
	require.Equal(t, "AB", s)
}

func TestDecodeText_UnsupportedEncoding(t *testing.T) {
	_, err := decodeText([]byte("x"), 250)
	require.Error(t, err)
}

func TestDecodeText_Undefined(t *testing.T) {
	s, err := decodeText([]byte("abc "), encodingUndefined)
	require.NoError(t, err)
	require.Equal(t, "abc", s)
}
