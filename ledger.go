// Package ledger extracts tax-collection ledger rows from the text of a
// single-page collection report and converts them to typed records.
//
// The pipeline locates fixed anchor markers in the page text, isolates the
// reporting period and the data table, normalizes typesetting noise, splits
// rows into fixed-width fields and coerces each field to a typed value.
// Any failure aborts the whole document: a malformed report yields no rows
// and a descriptive *Error.
//
// This package contains domain types, interfaces and the pure parsing
// pipeline following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g., pdf/,
// sqlite/, slog/).
package ledger
