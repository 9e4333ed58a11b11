package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/compress"
)

// writeParquetColumn serializes one column chunk: name, logical type,
// packed null bitmap, then fixed- or variable-width row data, all
// compressed as a single payload via codec.
func writeParquetColumn(w *bufio.Writer, codec compress.Codec, col *columnstore.Column) error {
	payload := encodeColumnPayload(col)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return err
	}

	writeUint16(w, uint16(len(col.Name)))
	w.WriteString(col.Name)
	w.WriteByte(byte(col.Type))
	writeUint64(w, uint64(col.Len()))
	writeUint64(w, uint64(len(payload)))
	writeUint64(w, uint64(len(compressed)))
	w.Write(compressed)

	return nil
}

func readParquetColumn(r *bufio.Reader, codec compress.Codec, rows int) (*columnstore.Column, error) {
	nameLen, err := readUint16(r)
	if err != nil {
		return nil, err
	}
	nameBuf := make([]byte, nameLen)
	if _, err := readFull(r, nameBuf); err != nil {
		return nil, err
	}

	typeByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	colType := columnstore.LogicalType(typeByte)

	colRows, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	if int(colRows) != rows {
		return nil, fmt.Errorf("column %q: row count %d does not match file header %d", nameBuf, colRows, rows)
	}

	rawSize, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	compSize, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	compressed := make([]byte, compSize)
	if _, err := readFull(r, compressed); err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) != rawSize {
		return nil, fmt.Errorf("column %q: decompressed size %d does not match stored size %d", nameBuf, len(payload), rawSize)
	}

	return decodeColumnPayload(string(nameBuf), colType, rows, payload)
}

func encodeColumnPayload(col *columnstore.Column) []byte {
	n := col.Len()
	buf := make([]byte, 0, n+8*n)
	buf = append(buf, packBitmap(col.Valid)...)

	switch col.Type {
	case columnstore.Float64:
		for i := 0; i < n; i++ {
			v, _ := col.Float64At(i)
			buf = appendUint64(buf, math.Float64bits(v))
		}
	case columnstore.Int64, columnstore.Date, columnstore.Datetime, columnstore.Time:
		for i := 0; i < n; i++ {
			v, _ := col.Int64At(i)
			buf = appendUint64(buf, uint64(v))
		}
	case columnstore.Bool:
		for i := 0; i < n; i++ {
			v, _ := col.BoolAt(i)
			if v {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	case columnstore.Utf8:
		for i := 0; i < n; i++ {
			v, _ := col.Utf8At(i)
			var lenBuf [4]byte
			binary.BigEndian.PutUint32(lenBuf[:], uint32(len(v)))
			buf = append(buf, lenBuf[:]...)
			buf = append(buf, v...)
		}
	}

	return buf
}

func decodeColumnPayload(name string, colType columnstore.LogicalType, rows int, payload []byte) (*columnstore.Column, error) {
	bitmapLen := bitmapBytes(rows)
	if len(payload) < bitmapLen {
		return nil, fmt.Errorf("column %q: payload too short for null bitmap", name)
	}
	valid := unpackBitmap(payload[:bitmapLen], rows)
	body := payload[bitmapLen:]

	switch colType {
	case columnstore.Float64:
		data := make([]float64, rows)
		for i := 0; i < rows; i++ {
			bits := binary.BigEndian.Uint64(body[i*8 : i*8+8])
			data[i] = math.Float64frombits(bits)
		}

		return columnstore.NewFloat64Column(name, data, valid), nil
	case columnstore.Int64:
		data := decodeInt64Body(body, rows)

		return columnstore.NewInt64Column(name, data, valid), nil
	case columnstore.Date:
		data := decodeInt64Body(body, rows)

		return columnstore.NewDateColumn(name, data, valid), nil
	case columnstore.Datetime:
		data := decodeInt64Body(body, rows)

		return columnstore.NewDatetimeColumn(name, data, valid), nil
	case columnstore.Time:
		data := decodeInt64Body(body, rows)

		return columnstore.NewTimeColumn(name, data, valid), nil
	case columnstore.Bool:
		data := make([]bool, rows)
		for i := 0; i < rows; i++ {
			data[i] = body[i] != 0
		}

		return columnstore.NewBoolColumn(name, data, valid), nil
	case columnstore.Utf8:
		data := make([]string, rows)
		pos := 0
		for i := 0; i < rows; i++ {
			strLen := int(binary.BigEndian.Uint32(body[pos : pos+4]))
			pos += 4
			data[i] = string(body[pos : pos+strLen])
			pos += strLen
		}

		return columnstore.NewUtf8Column(name, data, valid), nil
	default:
		return nil, fmt.Errorf("column %q: unknown logical type %d", name, colType)
	}
}

func decodeInt64Body(body []byte, rows int) []int64 {
	data := make([]int64, rows)
	for i := 0; i < rows; i++ {
		data[i] = int64(binary.BigEndian.Uint64(body[i*8 : i*8+8]))
	}

	return data
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)

	return append(buf, b[:]...)
}

func bitmapBytes(rows int) int {
	return (rows + 7) / 8
}

func packBitmap(valid []bool) []byte {
	out := make([]byte, bitmapBytes(len(valid)))
	for i, v := range valid {
		if v {
			out[i/8] |= 1 << uint(i%8)
		}
	}

	return out
}

func unpackBitmap(bitmap []byte, rows int) []bool {
	out := make([]bool, rows)
	for i := 0; i < rows; i++ {
		out[i] = bitmap[i/8]&(1<<uint(i%8)) != 0
	}

	return out
}
