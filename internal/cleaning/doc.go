// Package cleaning implements the per-dataset cleaning stages: header
// normalization, heuristic numeric extraction from mixed-type columns,
// pruning of non-numeric columns, missing-value reporting, and mean
// imputation.
//
// The stages operate on dataset.Dataset values and are sequenced by the
// pipeline package; each stage mutates the dataset in place.
package cleaning
