package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"club-hub/internal/model"
)

func TestBuildLedgerXLSX(t *testing.T) {
	entries := []model.AccountingEntry{
		{Date: "2024-01-10", Manager: "Bob", Description: "venue", Amount: -20000},
		{Date: "2024-03-01", Manager: "Alice", Description: "fees", Amount: 50000},
	}

	buf, err := BuildLedgerXLSX(entries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(LedgerSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"date", "manager", "description", "amount"}, rows[0])
	assert.Equal(t, []string{"2024-01-10", "Bob", "venue", "-20000"}, rows[1])
	assert.Equal(t, []string{"2024-03-01", "Alice", "fees", "50000"}, rows[2])
}
