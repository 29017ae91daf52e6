package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrNoData indicates a file with no header row at all.
var ErrNoData = errors.New("file contains no data")

// naTokens are treated as missing on load, mirroring common CSV conventions
// (and our own cleaned output, which writes absent cells as "NA").
var naTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
}

// Load reads a comma-delimited file into a Dataset. The file is decoded as
// UTF-8; if the content is not valid UTF-8 it is re-decoded once as Latin-1
// (ISO 8859-1) before parsing, and usedFallback reports that retry. The first
// record is the header row. Columns whose non-missing values all parse as
// numbers are stored as numeric; everything else is kept as text with
// empty/NA tokens mapped to absent.
func Load(path string) (ds *Dataset, usedFallback bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(raw) {
		usedFallback = true
		decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
		if err != nil {
			return nil, true, fmt.Errorf("decode %s with fallback encoding: %w", path, err)
		}
		raw = decoded
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = false

	records, err := reader.ReadAll()
	if err != nil {
		return nil, usedFallback, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, usedFallback, fmt.Errorf("%s: %w", path, ErrNoData)
	}

	header := records[0]
	rows := records[1:]

	ds = &Dataset{Columns: make([]Column, len(header))}
	for i, label := range header {
		ds.Columns[i] = Column{Label: label, Cells: make([]Cell, len(rows))}
	}

	for r, row := range rows {
		for c := range header {
			// Ragged rows are padded with absent markers.
			if c >= len(row) {
				ds.Columns[c].Cells[r] = Absent()
				continue
			}
			ds.Columns[c].Cells[r] = Text(row[c])
		}
	}

	for i := range ds.Columns {
		inferColumn(&ds.Columns[i])
	}

	return ds, usedFallback, nil
}

// inferColumn converts a freshly loaded text column in place: NA tokens become
// absent, and if every remaining value parses as a number the whole column is
// converted to numeric cells.
func inferColumn(col *Column) {
	numeric := true
	for i, cell := range col.Cells {
		if cell.Kind != KindText {
			continue
		}
		if _, ok := naTokens[strings.TrimSpace(cell.Text)]; ok {
			col.Cells[i] = Absent()
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell.Text), 64); err != nil {
			numeric = false
		}
	}
	if !numeric {
		return
	}
	for i, cell := range col.Cells {
		if cell.Kind != KindText {
			continue
		}
		v, _ := strconv.ParseFloat(strings.TrimSpace(cell.Text), 64)
		col.Cells[i] = Number(v)
	}
}
