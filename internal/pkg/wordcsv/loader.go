// Package wordcsv parses vocabulary CSV files into word records.
package wordcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/evandrarf/wordbook-be/internal/pkg/mapper"
)

var ErrMissingColumn = errors.New("missing required column")

// Result of parsing one file
type Result struct {
	Records []entity.WordRecord
	Skipped int
}

// LoadFile opens path and parses it with Parse.
func LoadFile(path string, cols entity.WordColumns) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	res, err := Parse(f, cols)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

// Parse reads a header row followed by data rows. Blank lines are skipped,
// rows that cannot become a record are counted in Skipped. An input with no
// header at all yields an empty result.
func Parse(r io.Reader, cols entity.WordColumns) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return &Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	for _, required := range []string{cols.ID, cols.Term, cols.Definition} {
		if !contains(header, required) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	res := &Result{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlank(row) {
			continue
		}

		rec, err := mapper.ConvertRowToWordRecord(header, row, cols)
		if err != nil {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
