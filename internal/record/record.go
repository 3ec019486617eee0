// Package record defines the flat per-document output of an extraction run.
package record

import "sort"

// FileNameKey is the reserved document-identifier key present in every record.
const FileNameKey = "file_name"

// Record maps field names to their normalized values for one document.
// Values are nil, string, []string, or a parsed JSON value.
type Record map[string]any

// ResultSet is one run's full output in document-processing order. It is
// appended to by the single processing loop and read-only once handed to
// the export writers.
type ResultSet []Record

// Columns returns the union of keys across all records, with FileNameKey
// first and the rest sorted, for tabular export headers.
func Columns(rs ResultSet) []string {
	seen := map[string]struct{}{}
	var rest []string
	for _, r := range rs {
		for k := range r {
			if k == FileNameKey {
				continue
			}
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	return append([]string{FileNameKey}, rest...)
}
