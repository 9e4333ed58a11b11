// Package loaders auto-detects a tabular input's format by file extension
// (spec.md §6 "CSV, Parquet, or SAS7BDAT files, auto-detected by
// extension") and materializes it into a columnstore.Store, and writes a
// reduced Store back out in the matching format.
package loaders
