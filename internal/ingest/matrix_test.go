package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidleathers/credit-memo-compliance/internal/domain/values"
)

const contractMatrixCSV = "Amount Range,Approver Level,Designation\n" +
	`"Up to 10,000",Level 1,Sales Manager` + "\n" +
	`"10,001 – 100,000",Level 2,Finance Controller` + "\n" +
	`"Above 100,000",Level 3,Finance Director` + "\n"

func TestReadMatrix(t *testing.T) {
	m, err := ReadMatrix(strings.NewReader(contractMatrixCSV))
	require.NoError(t, err)

	entries := m.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Level)
	assert.Equal(t, "Sales Manager", entries[0].Designation)
	assert.Equal(t, 3, entries[2].Level)
	assert.True(t, entries[2].UpperLimit.Unbounded(), "open range sorts last")

	level, ok := m.RequiredLevel(values.ParseAmount("25,000"))
	require.True(t, ok)
	assert.Equal(t, 2, level)
}

func TestReadMatrix_SkipsRowsWithoutLevel(t *testing.T) {
	input := "Amount Range,Level,Designation\n" +
		"Up to 5000,Level 1,Team Lead\n" +
		"Above 5000,n/a,Department Head\n"

	m, err := ReadMatrix(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, m.Entries(), 1)
}

func TestReadMatrix_MissingColumn(t *testing.T) {
	_, err := ReadMatrix(strings.NewReader("Amount Range,Level\nUp to 100,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "designation")
}

func TestLoadMatrixSet(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	write("contract_matrix.csv", contractMatrixCSV)
	write("promotional_matrix.csv",
		"Amount Range,Level,Designation\nUp to 5000,1,Marketing Manager\n")
	write("quarterly_report.csv", "Region,Total\nWest,12000\n")
	write("other_matrix.csv", "Wrong,Headers\nx,y\n")

	set, err := LoadMatrixSet(dir)
	require.NoError(t, err)

	_, ok := set.ForCategory("contract")
	assert.True(t, ok)
	_, ok = set.ForCategory("promotional")
	assert.True(t, ok)
	_, ok = set.ForCategory("other")
	assert.False(t, ok, "files with unusable headers are skipped")
	assert.Len(t, set, 2, "unclassifiable files are ignored")
}

func TestClassifyMatrixFile(t *testing.T) {
	assert.Equal(t, "promotional", classifyMatrixFile("2024_Promotion_DoA.csv"))
	assert.Equal(t, "contract", classifyMatrixFile("CONTRACT-matrix.csv"))
	assert.Equal(t, "other", classifyMatrixFile("other_credits.csv"))
	assert.Equal(t, "", classifyMatrixFile("summary.csv"))
}
