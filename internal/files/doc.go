// Package files provides file system discovery and management utilities.
//
// Discovery walks an input tree and selects delimited files by extension;
// Manager covers the small set of directory operations the pipeline needs,
// such as ensuring output directories exist before a batch starts.
package files
