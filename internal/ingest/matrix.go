package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/davidleathers/credit-memo-compliance/internal/domain/errors"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/matrix"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

// Matrix columns and their accepted header synonyms.
var matrixColumns = map[string][]string{
	"amount range": {"amount range", "amount", "range"},
	"level":        {"approver level", "level", "approval level"},
	"designation":  {"designation", "approver designation"},
}

var firstInteger = regexp.MustCompile(`\d+`)

// ReadMatrix parses one approval-matrix table. Rows whose level cell
// carries no integer are skipped; the ceiling column accepts the full
// range grammar ("Up to 10,000", "10,001 – 50,000", "Above 50,000").
func ReadMatrix(r io.Reader) (matrix.Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return matrix.Matrix{}, apperrors.NewIngestionError("MATRIX_HEADER", "reading matrix header").WithCause(err)
	}

	cols := mapColumns(header, matrixColumns)
	for _, required := range []string{"amount range", "level", "designation"} {
		if _, ok := cols[required]; !ok {
			return matrix.Matrix{}, apperrors.NewIngestionError("MATRIX_COLUMNS",
				"matrix file is missing a required column: "+required)
		}
	}

	var entries []matrix.Entry
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return matrix.Matrix{}, apperrors.NewIngestionError("MATRIX_ROW", "reading matrix row").WithCause(err)
		}

		cell := func(name string) string {
			idx := cols[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		digits := firstInteger.FindString(cell("level"))
		if digits == "" {
			continue
		}
		level, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}

		entries = append(entries, matrix.Entry{
			Level:       level,
			Designation: cell("designation"),
			UpperLimit:  values.ParseAmountCeiling(cell("amount range")),
		})
	}
	return matrix.New(entries), nil
}

// LoadMatrixSet scans a directory for matrix CSVs and classifies each by
// file name: a name containing "promotional" (or "promotion") feeds the
// promotional category, "contract" the contract category, "other" the
// fallback. Files matching no category, and files whose headers do not
// line up, are skipped so one stray export cannot block a run.
func LoadMatrixSet(dir string) (matrix.Set, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, apperrors.NewIngestionError("MATRIX_DIR", "scanning matrix directory").WithCause(err)
	}

	set := matrix.Set{}
	for _, path := range paths {
		category := classifyMatrixFile(filepath.Base(path))
		if category == "" {
			continue
		}
		if _, taken := set[category]; taken {
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, apperrors.NewIngestionError("MATRIX_OPEN", "opening matrix file "+path).WithCause(err)
		}
		m, err := ReadMatrix(f)
		f.Close()
		if err != nil {
			continue
		}
		set[category] = m
	}
	return set, nil
}

func classifyMatrixFile(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "promotional"), strings.Contains(lower, "promotion"):
		return "promotional"
	case strings.Contains(lower, "contract"):
		return "contract"
	case strings.Contains(lower, "other"):
		return "other"
	}
	return ""
}
