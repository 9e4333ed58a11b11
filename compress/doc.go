// Package compress provides compression codecs for the lo-phi report archive.
//
// The reduction pipeline produces a report archive bundling gini_analysis.json,
// reduction_report.json and reduction_report.csv; the reduced dataset itself
// is written as a separate file. This package compresses that bundle, supporting multiple
// algorithms with different space/speed tradeoffs:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
// Returns input unchanged. Useful for debugging report contents without
// decompressing, or when the archive will be compressed again downstream
// (e.g. placed into an already-compressed zip bundle by the caller).
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
// Best compression ratio for verbose JSON/CSV report text; the default for
// archived runs kept for audit purposes.
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
// Balanced choice between compression ratio and speed.
//
// **LZ4** (format.CompressionLZ4)
//
// Fastest decompression; useful when an archive is re-read frequently.
//
// # Thread Safety
//
// All codec implementations are thread-safe and can be safely shared across
// goroutines. report.NewArchive creates one codec per archive; callers needing to compress many archives concurrently may share a
// single codec instance.
//
// # Error Handling
//
// Compression errors are rare but can occur on memory allocation failure.
// Decompression errors are more common: corrupted archive data, wrong
// algorithm selected, or truncated reads. All errors are wrapped with
// context for debugging.
//
// # Extending
//
// Custom codecs implement the Compressor/Decompressor interfaces directly;
// CreateCodec and GetCodec only dispatch over the four built-in algorithms
// above.
package compress
