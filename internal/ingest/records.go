// Package ingest reads the normalized credit-memo table and the approval
// matrices from fixed-layout CSV files, and writes the augmented result
// table back out. The engine itself never touches files; everything here
// sits at its boundary.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/davidleathers/credit-memo-compliance/internal/domain/errors"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/memo"
	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

// Canonical record columns and their accepted header synonyms.
var recordColumns = map[string][]string{
	"memo":                 {"memo", "memo id", "memoid"},
	"customer name":        {"customer name"},
	"cm date":              {"cm date", "credit memo date"},
	"created by":           {"created by", "creator"},
	"amount":               {"amount"},
	"reason":               {"reason"},
	"date of approval":     {"date of approval", "approval date"},
	"approver":             {"approver"},
	"approver designation": {"approver designation", "designation"},
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeHeader lower-cases and collapses punctuation so "Memo ID",
// "memo_id" and "Memo Id" all compare equal.
func normalizeHeader(s string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(s), " "))
}

// LoadRecords reads a credit-memo CSV from disk
func LoadRecords(path string) ([]memo.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewIngestionError("RECORDS_OPEN", "opening records file").WithCause(err)
	}
	defer f.Close()
	return ReadRecords(f)
}

// ReadRecords parses the credit-memo table. The header row is matched
// case-insensitively against the known synonyms; Memo and Amount columns
// are required, everything else degrades to empty values. Cell-level
// problems (bad amounts, bad dates) never fail the read: they become
// undefined values and, downstream, compliance violations.
func ReadRecords(r io.Reader) ([]memo.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, apperrors.NewIngestionError("RECORDS_HEADER", "reading records header").WithCause(err)
	}

	cols := mapColumns(header, recordColumns)
	for _, required := range []string{"memo", "amount"} {
		if _, ok := cols[required]; !ok {
			return nil, apperrors.NewIngestionError("RECORDS_COLUMNS",
				"records file is missing a required column: "+required)
		}
	}

	var records []memo.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewIngestionError("RECORDS_ROW", "reading records row").WithCause(err)
		}

		cell := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, memo.Record{
			Memo:                cell("memo"),
			CustomerName:        cell("customer name"),
			CMDate:              parseDate(cell("cm date")),
			CreatedBy:           cell("created by"),
			Amount:              values.ParseAmount(cell("amount")),
			Reason:              cell("reason"),
			ApprovalDate:        parseDate(cell("date of approval")),
			Approver:            cell("approver"),
			ApproverDesignation: cell("approver designation"),
		})
	}
	return records, nil
}

// mapColumns resolves canonical names to column indexes. The first header
// matching any synonym wins.
func mapColumns(header []string, synonyms map[string][]string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}

	cols := make(map[string]int, len(synonyms))
	for canonical, syns := range synonyms {
		for _, syn := range syns {
			for i, h := range normalized {
				if h == syn {
					cols[canonical] = i
					break
				}
			}
			if _, ok := cols[canonical]; ok {
				break
			}
		}
	}
	return cols
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}
