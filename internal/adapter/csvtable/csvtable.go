// Package csvtable persists and loads the isotope table as a flat CSV file
// with a header row: element,symbol,A,mass_u,abundance_percent,stable.
// Column order is immaterial; columns are mapped by header name.
package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/couchcryptid/isotope-weight-service/internal/domain"
)

// Column names of the persisted table. symbol, mass_u and abundance_percent
// are required; the rest are optional.
const (
	colElement    = "element"
	colSymbol     = "symbol"
	colMassNumber = "A"
	colMass       = "mass_u"
	colAbundance  = "abundance_percent"
	colStable     = "stable"
)

var requiredColumns = []string{colSymbol, colMass, colAbundance}

// DataSourceError reports a table file that is missing or unreadable.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("isotope table %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// ParseError reports a malformed header or row. Any bad row fails the whole
// load: a partially loaded table would silently skew weighted means, so the
// policy is load-level rejection.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("isotope table %s: line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the CSV at path into a [domain.Table], grouping rows by
// normalized symbol and sorting each group by mass number. Rows whose stable
// column is not truthy are skipped. Returns [*DataSourceError] when the file
// cannot be opened and [*ParseError] on malformed content.
func Load(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: fmt.Errorf("missing header row: %w", err)}
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &ParseError{Path: path, Line: 1, Err: fmt.Errorf("missing column %q", col)}
		}
	}

	table := domain.Table{}
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Err: err}
		}

		iso, skip, err := parseRow(row, idx)
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Err: err}
		}
		if skip {
			continue
		}
		sym := domain.NormalizeSymbol(iso.Symbol)
		table[sym] = append(table[sym], iso)
	}

	for sym := range table {
		records := table[sym]
		sort.Slice(records, func(i, j int) bool { return records[i].MassNumber < records[j].MassNumber })
	}
	return table, nil
}

func parseRow(row []string, idx map[string]int) (domain.Isotope, bool, error) {
	field := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	// The stable flag filters out rows a builder may emit for bookkeeping;
	// only truthy rows participate in the natural atomic weight.
	if s := field(colStable); s != "" && !truthy(s) {
		return domain.Isotope{}, true, nil
	}

	symbol := field(colSymbol)
	if symbol == "" {
		return domain.Isotope{}, false, errors.New("empty symbol")
	}

	mass, err := strconv.ParseFloat(field(colMass), 64)
	if err != nil {
		return domain.Isotope{}, false, fmt.Errorf("bad %s value %q", colMass, field(colMass))
	}

	abundance, err := strconv.ParseFloat(field(colAbundance), 64)
	if err != nil {
		return domain.Isotope{}, false, fmt.Errorf("bad %s value %q", colAbundance, field(colAbundance))
	}

	// Mass number is informational; tolerate its absence.
	var massNumber int
	if a := field(colMassNumber); a != "" {
		massNumber, err = strconv.Atoi(a)
		if err != nil {
			return domain.Isotope{}, false, fmt.Errorf("bad %s value %q", colMassNumber, a)
		}
	}

	return domain.Isotope{
		Element:    field(colElement),
		Symbol:     symbol,
		MassNumber: massNumber,
		Mass:       mass,
		Abundance:  abundance,
		Stable:     true,
	}, false, nil
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

// Write serializes isotope rows to a CSV file at path, creating parent
// directories as needed. The column order matches the builder output of the
// original tooling so existing files stay diffable.
func Write(path string, rows []domain.Isotope) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create table directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create isotope table %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	record := []string{colElement, colSymbol, colMassNumber, colMass, colAbundance, colStable}
	if err := w.Write(record); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, iso := range rows {
		record = []string{
			iso.Element,
			iso.Symbol,
			strconv.Itoa(iso.MassNumber),
			strconv.FormatFloat(iso.Mass, 'g', -1, 64),
			strconv.FormatFloat(iso.Abundance, 'g', -1, 64),
			strconv.FormatBool(iso.Stable),
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush isotope table: %w", err)
	}
	return f.Close()
}

// FileSink adapts Write to the pipeline's Sink interface.
type FileSink struct {
	Path string
}

func (s FileSink) WriteTable(rows []domain.Isotope) error {
	return Write(s.Path, rows)
}
