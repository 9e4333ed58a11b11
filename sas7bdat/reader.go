package sas7bdat

import (
	"fmt"
	"io"
	"os"

	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/internal/errs"
	"github.com/lophi-data/lophi/internal/pool"
)

// Summary describes a file without materialising its row data, the
// result of Open (spec §4.1 "open(path) returns column metadata").
type Summary struct {
	Columns  []ColumnInfo
	RowCount int
}

// ColumnInfo is the externally visible description of one column.
type ColumnInfo struct {
	Name string
	Type columnstore.LogicalType
}

// Reader holds the fully parsed metadata for one SAS7BDAT file, ready to
// extract rows via Load. Construct with Open.
type Reader struct {
	f         *os.File
	header    *Header
	pages     []*page
	columns   []columnMeta
	rowCount  int
	rowLength int

	maxRowsOnMixPage int
	decompressor     rowDecompressor

	// Progress, if set, is invoked once per page during Load with the
	// page's index and the total page count (spec §4.1 "page-based
	// progress signal").
	Progress func(pageIndex, pageCount int)
}

// Open parses a SAS7BDAT file's header and metadata pages, gathering
// enough information to describe its columns without reading row
// bytes. Row data is not decompressed until Load is called.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	hdr, err := readHeader(f)
	if err != nil {
		f.Close()

		return nil, err
	}

	r := &Reader{f: f, header: hdr}

	if err := r.loadPages(); err != nil {
		f.Close()

		return nil, err
	}

	return r, nil
}

func readHeader(f *os.File) (*Header, error) {
	buf := make([]byte, header32Size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrTruncatedHeader, err)
	}

	if len(buf) > align1Offset && buf[align1Offset] == align1Value {
		extra := make([]byte, header64Size-header32Size)
		if _, err := io.ReadFull(f, extra); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrTruncatedHeader, err)
		}
		buf = append(buf, extra...)
	}

	return ParseHeader(buf)
}

func (r *Reader) loadPages() error {
	acc := newMetaAccumulator()
	r.pages = make([]*page, r.header.PageCount)

	for i := 0; i < r.header.PageCount; i++ {
		raw := make([]byte, r.header.PageSize)
		if _, err := io.ReadFull(r.f, raw); err != nil {
			return fmt.Errorf("%w: page %d: %v", errs.ErrTruncatedPage, i, err)
		}

		p, err := parsePage(r.header, raw, i)
		if err != nil {
			return err
		}
		r.pages[i] = p

		if p.kind == pageTypeAMD {
			continue
		}
		if p.kind == pageTypeData {
			continue
		}

		for _, ptr := range p.pointers {
			if ptr.offset < 0 || ptr.offset+ptr.length > len(raw) {
				return fmt.Errorf("%w: page %d subheader out of range", errs.ErrTruncatedPage, i)
			}
			block := raw[ptr.offset : ptr.offset+ptr.length]
			if err := acc.consumeSubheader(r.header, block, ptr); err != nil {
				return err
			}
		}
	}

	if acc.rowCount == 0 {
		return errs.ErrZeroRows
	}

	cols, err := assembleColumns(acc)
	if err != nil {
		return err
	}

	decomp, err := pickRowDecompressor(acc.compressionMarker)
	if err != nil {
		return err
	}

	r.columns = cols
	r.rowCount = acc.rowCount
	r.rowLength = acc.rowLength
	r.maxRowsOnMixPage = acc.maxRowsOnMixPage
	r.decompressor = decomp

	return nil
}

// Summary returns the file's column metadata and row count without
// decoding any row bytes.
func (r *Reader) Summary() Summary {
	out := Summary{RowCount: r.rowCount, Columns: make([]ColumnInfo, len(r.columns))}
	for i, c := range r.columns {
		out.Columns[i] = ColumnInfo{Name: c.Name, Type: logicalTypeOf(c)}
	}

	return out
}

func logicalTypeOf(c columnMeta) columnstore.LogicalType {
	if !c.Numeric {
		return columnstore.Utf8
	}

	switch c.FormatFamily {
	case "DATE":
		return columnstore.Date
	case "DATETIME":
		return columnstore.Datetime
	case "TIME":
		return columnstore.Time
	default:
		return columnstore.Float64
	}
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Load decodes every page's row bytes and materialises a columnstore.Store
// (spec §4.1 "load(path) returns a fully-materialised Column Store").
func (r *Reader) Load() (*columnstore.Store, error) {
	builders := make([]columnBuilder, len(r.columns))
	for i, c := range r.columns {
		builders[i] = newColumnBuilder(c, r.rowCount)
	}

	rowIdx := 0
	for _, p := range r.pages {
		if r.Progress != nil {
			r.Progress(p.index, len(r.pages))
		}

		if p.kind != pageTypeData && p.kind != pageTypeMix && p.kind != pageTypeComp {
			continue
		}
		if rowIdx >= r.rowCount {
			break
		}

		rowsOnPage := p.blockRows
		if p.kind == pageTypeMix && r.maxRowsOnMixPage > 0 && rowsOnPage > r.maxRowsOnMixPage {
			rowsOnPage = r.maxRowsOnMixPage
		}
		if rowIdx+rowsOnPage > r.rowCount {
			rowsOnPage = r.rowCount - rowIdx
		}
		if rowsOnPage <= 0 {
			continue
		}

		rowLength := r.rowLength
		region := p.body[p.dataStart:]

		var rowBytes []byte
		var rowBuf *pool.ByteBuffer
		if r.decompressor != nil {
			need := rowLength * rowsOnPage
			rowBuf = pool.GetRowBuffer()
			rowBuf.Grow(need)
			rowBuf.SetLength(need)
			if err := r.decompressor.Decompress(region, rowBuf.Bytes()); err != nil {
				pool.PutRowBuffer(rowBuf)

				return nil, fmt.Errorf("page %d: %w", p.index, err)
			}
			rowBytes = rowBuf.Bytes()
		} else {
			need := rowLength * rowsOnPage
			if len(region) < need {
				return nil, fmt.Errorf("%w: page %d has %d bytes, need %d", errs.ErrTruncatedPage, p.index, len(region), need)
			}
			rowBytes = region[:need]
		}

		for rr := 0; rr < rowsOnPage; rr++ {
			row := rowBytes[rr*rowLength : (rr+1)*rowLength]
			for ci, col := range r.columns {
				if col.RowOffset+col.Length > len(row) {
					if rowBuf != nil {
						pool.PutRowBuffer(rowBuf)
					}

					return nil, fmt.Errorf("%w: row %d column %q exceeds row length", errs.ErrTruncatedPage, rowIdx, col.Name)
				}
				if err := builders[ci].set(rowIdx, row[col.RowOffset:col.RowOffset+col.Length], r.header); err != nil {
					if rowBuf != nil {
						pool.PutRowBuffer(rowBuf)
					}

					return nil, fmt.Errorf("row %d column %q: %w", rowIdx, col.Name, err)
				}
			}
			rowIdx++
		}

		if rowBuf != nil {
			pool.PutRowBuffer(rowBuf)
		}
	}

	cols := make([]*columnstore.Column, len(builders))
	for i, b := range builders {
		cols[i] = b.finish()
	}

	return columnstore.New(cols...)
}

// Load opens path and fully materialises it in one call.
func Load(path string) (*columnstore.Store, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Load()
}
