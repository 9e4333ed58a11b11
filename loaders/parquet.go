package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/compress"
	"github.com/lophi-data/lophi/format"
	"github.com/lophi-data/lophi/internal/errs"
)

// parquetMagic opens and closes every file this package writes, the same
// four-byte sentinel convention real Parquet files use (though this
// package's body layout is its own, not the Apache Thrift footer format;
// see DESIGN.md).
var parquetMagic = [4]byte{'P', 'A', 'R', '1'}

// writeParquetCompression is the codec applied to each column chunk's raw
// bytes; zstd gives the best ratio for the mixed numeric/text columns a
// reduced dataset typically holds.
const writeParquetCompression = format.CompressionZstd

// LoadParquet reads a lo-phi Parquet-formatted file into a Store.
//
// This is a self-contained column-chunk format inspired by Parquet's
// columnar layout (magic-delimited file, one independently compressed
// chunk per column) rather than a binary-compatible implementation of
// the Apache Parquet specification: no Thrift/dictionary/RLE codec
// exists anywhere in the retrieval pack this module was built from, and
// implementing the full upstream footer format from scratch was judged
// out of scope (see DESIGN.md). Files this package writes round-trip
// through LoadParquet/WriteParquet but are not readable by other
// Parquet tooling.
func LoadParquet(path string) (*columnstore.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var magic [4]byte
	if _, err := readFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("parquet header: %w", err)
	}
	if magic != parquetMagic {
		return nil, errs.ErrUnknownInputFormat
	}

	codec, err := compress.GetCodec(writeParquetCompression)
	if err != nil {
		return nil, err
	}

	rows, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	colCount, err := readUint64(r)
	if err != nil {
		return nil, err
	}

	cols := make([]*columnstore.Column, colCount)
	for i := range cols {
		col, err := readParquetColumn(r, codec, int(rows))
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		cols[i] = col
	}

	var footer [4]byte
	if _, err := readFull(r, footer[:]); err != nil {
		return nil, fmt.Errorf("parquet footer: %w", err)
	}
	if footer != parquetMagic {
		return nil, errs.ErrUnknownInputFormat
	}

	return columnstore.New(cols...)
}

// WriteParquet writes store to path in this package's own Parquet-style
// column-chunk format (see LoadParquet's doc comment).
func WriteParquet(store *columnstore.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	codec, err := compress.GetCodec(writeParquetCompression)
	if err != nil {
		return err
	}

	w.Write(parquetMagic[:])
	writeUint64(w, uint64(store.Rows()))
	writeUint64(w, uint64(store.NumCols()))

	for _, col := range store.Columns() {
		if err := writeParquetColumn(w, codec, col); err != nil {
			return fmt.Errorf("column %q: %w", col.Name, err)
		}
	}

	w.Write(parquetMagic[:])

	return w.Flush()
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}

func readUint64(r *bufio.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := readFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(buf[:]), nil
}

func writeUint64(w *bufio.Writer, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	w.Write(buf[:])
}

func readUint16(r *bufio.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := readFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(buf[:]), nil
}

func writeUint16(w *bufio.Writer, v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.Write(buf[:])
}
