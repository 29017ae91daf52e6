// Package exporter writes cleaned datasets back to disk as delimited text.
//
// Cleaned files carry the original column order, no row-index column, and the
// literal token "NA" for absent cells. Files that end up with no usable data
// are persisted as explicit empty placeholders so a missing output can always
// be told apart from a never-processed input.
package exporter
