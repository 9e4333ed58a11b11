package report

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lophi-data/lophi/compress"
	"github.com/lophi-data/lophi/format"
	"github.com/lophi-data/lophi/internal/errs"
)

// archiveMagic identifies a lo-phi report archive; it is the first four
// bytes (big-endian) of every serialized Archive.
const archiveMagic uint32 = 0x4C504831 // "LPH1"

// entry is one compressed document inside the archive: its name, the
// codec that compressed it, and its original/compressed lengths.
type entry struct {
	name       string
	codec      format.CompressionType
	rawSize    uint64
	compressed []byte
}

// Archive bundles gini_analysis.json, reduction_report.json and
// reduction_report.csv into a single compressed artifact (spec.md §6 "a
// report archive containing..."). Each document is compressed
// independently with the same codec so any one document can be read
// back without decompressing the whole archive.
type Archive struct {
	codec   compress.Codec
	ctype   format.CompressionType
	entries []entry
}

// NewArchive builds an empty Archive using the given compression type.
func NewArchive(ctype format.CompressionType) (*Archive, error) {
	codec, err := compress.CreateCodec(ctype, "report archive")
	if err != nil {
		return nil, err
	}

	return &Archive{codec: codec, ctype: ctype}, nil
}

// AddFile compresses data and appends it to the archive under name.
func (a *Archive) AddFile(name string, data []byte) error {
	compressed, err := a.codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %q: %w", name, err)
	}

	a.entries = append(a.entries, entry{name: name, codec: a.ctype, rawSize: uint64(len(data)), compressed: compressed})

	return nil
}

// WriteTo serializes the archive: a fixed header (magic, codec byte,
// entry count) followed by one length-prefixed record per entry (name,
// raw size, compressed size, compressed bytes).
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	var header [6]byte
	binary.BigEndian.PutUint32(header[0:4], archiveMagic)
	header[4] = byte(a.ctype)
	header[5] = byte(len(a.entries))
	buf.Write(header[:])

	for _, e := range a.entries {
		writeUint16(&buf, uint16(len(e.name)))
		buf.WriteString(e.name)
		writeUint64(&buf, e.rawSize)
		writeUint64(&buf, uint64(len(e.compressed)))
		buf.Write(e.compressed)
	}

	return buf.WriteTo(w)
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// ReadArchive parses a serialized Archive and returns its documents,
// decompressed, indexed by name.
func ReadArchive(r io.Reader) (map[string][]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < 6 {
		return nil, errs.ErrArchiveTruncated
	}
	if binary.BigEndian.Uint32(data[0:4]) != archiveMagic {
		return nil, errs.ErrArchiveBadMagic
	}

	ctype := format.CompressionType(data[4])
	count := int(data[5])
	codec, err := compress.GetCodec(ctype)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, count)
	pos := 6
	for i := 0; i < count; i++ {
		if pos+2 > len(data) {
			return nil, errs.ErrArchiveTruncated
		}
		nameLen := int(binary.BigEndian.Uint16(data[pos : pos+2]))
		pos += 2
		if pos+nameLen > len(data) {
			return nil, errs.ErrArchiveTruncated
		}
		name := string(data[pos : pos+nameLen])
		pos += nameLen

		if pos+16 > len(data) {
			return nil, errs.ErrArchiveTruncated
		}
		_ = binary.BigEndian.Uint64(data[pos : pos+8]) // raw size, informational
		pos += 8
		compSize := int(binary.BigEndian.Uint64(data[pos : pos+8]))
		pos += 8
		if pos+compSize > len(data) {
			return nil, errs.ErrArchiveTruncated
		}
		compressed := data[pos : pos+compSize]
		pos += compSize

		raw, err := codec.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("decompress %q: %w", name, err)
		}
		out[name] = raw
	}

	return out, nil
}
