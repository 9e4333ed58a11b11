package sas7bdat

import (
	"encoding/binary"
	"testing"

	"github.com/lophi-data/lophi/endian"
	"github.com/stretchr/testify/require"
)

func TestMetaAccumulator_ColumnTextAndCompressionMarker(t *testing.T) {
	m := newMetaAccumulator()
	e := endian.GetLittleEndianEngine()

	text := append([]byte(compressionMarkerRLE), []byte("income")...)
	block := make([]byte, 4+2+len(text))
	binary.LittleEndian.PutUint16(block[4:], uint16(len(text)))
	copy(block[6:], text)

	require.NoError(t, m.consumeColumnText(block, 4, e))
	require.Equal(t, compressionMarkerRLE, m.compressionMarker)
	require.Len(t, m.textBlocks, 1)
}

func TestMetaAccumulator_ColumnNameAndAttrsResolve(t *testing.T) {
	m := newMetaAccumulator()
	e := endian.GetLittleEndianEngine()

	m.textBlocks = [][]byte{[]byte("income  debt_ratio")}

	nameBlock := make([]byte, 4+8+2*8)
	writeNameEntry := func(off, blockIdx, textOffset, length int) {
		binary.LittleEndian.PutUint16(nameBlock[off:], uint16(blockIdx))
		binary.LittleEndian.PutUint16(nameBlock[off+2:], uint16(textOffset))
		binary.LittleEndian.PutUint16(nameBlock[off+4:], uint16(length))
	}
	writeNameEntry(12, 0, 0, 6)  // "income"
	writeNameEntry(20, 0, 8, 10) // "debt_ratio"
	require.NoError(t, m.consumeColumnName(nameBlock, 4, e))
	require.Len(t, m.nameRefs, 2)

	attrsEntrySize := attrEntrySize(4)
	attrsBlock := make([]byte, 4+8+2*attrsEntrySize)
	off := 12
	binary.LittleEndian.PutUint32(attrsBlock[off:], 0)
	binary.LittleEndian.PutUint16(attrsBlock[off+4:], 8)
	attrsBlock[off+4+6] = columnTypeNumeric
	off += attrsEntrySize
	binary.LittleEndian.PutUint32(attrsBlock[off:], 8)
	binary.LittleEndian.PutUint16(attrsBlock[off+4:], 8)
	attrsBlock[off+4+6] = columnTypeNumeric
	require.NoError(t, m.consumeColumnAttrs(attrsBlock, 4, e))
	require.Len(t, m.attrs, 2)

	cols, err := assembleColumns(m)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, "income", cols[0].Name)
	require.Equal(t, "debt_ratio", cols[1].Name)
	require.Equal(t, 0, cols[0].RowOffset)
	require.Equal(t, 8, cols[1].RowOffset)
	require.True(t, cols[0].Numeric)
}

func TestMetaAccumulator_RowSizeFields(t *testing.T) {
	m := newMetaAccumulator()
	e := endian.GetLittleEndianEngine()

	block := make([]byte, 16*4)
	binary.LittleEndian.PutUint32(block[5*4:], 40)  // row_length
	binary.LittleEndian.PutUint32(block[6*4:], 100) // row_count
	binary.LittleEndian.PutUint32(block[15*4:], 25) // max_rows_on_mix_page

	require.NoError(t, m.consumeRowSize(block, 4, e))
	require.Equal(t, 40, m.rowLength)
	require.Equal(t, 100, m.rowCount)
	require.Equal(t, 25, m.maxRowsOnMixPage)
}

func TestMetaAccumulator_ResolveTextOutOfRange(t *testing.T) {
	m := newMetaAccumulator()
	_, err := m.resolveText(textRef{blockIdx: 3})
	require.Error(t, err)
}
