package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
	"github.com/KirkDiggler/statblock-api/internal/testutils"
)

func TestBuild(t *testing.T) {
	result, err := statblock.Parse(testutils.GoblinStatBlock)
	require.NoError(t, err)

	f, err := Build(result)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetSummary, SheetLedger, SheetActions, SheetWarnings}, f.GetSheetList())

	t.Run("summary", func(t *testing.T) {
		name, err := f.GetCellValue(SheetSummary, "B1")
		require.NoError(t, err)
		assert.Equal(t, "Goblin", name)

		accuracy, err := f.GetCellValue(SheetSummary, "B2")
		require.NoError(t, err)
		assert.Equal(t, "87%", accuracy)
	})

	t.Run("ledger has one row per field", func(t *testing.T) {
		rows, err := f.GetRows(SheetLedger)
		require.NoError(t, err)
		require.Len(t, rows, len(statblock.LedgerFields)+1)
		assert.Equal(t, []string{"Field", "Raw Value", "Method", "Confidence"}, rows[0])
		assert.Equal(t, []string{"name", "Goblin", "exact", "1"}, rows[1])
	})

	t.Run("actions", func(t *testing.T) {
		rows, err := f.GetRows(SheetActions)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "traits", rows[1][0])
		assert.Equal(t, "Nimble Escape", rows[1][1])
		assert.Equal(t, []string{"actions", "Scimitar", "+4", "reach 5 ft.", "1d6+2", "5", "slashing"}, rows[2])
		assert.Equal(t, "80/320 ft.", rows[3][3])
	})

	t.Run("warnings", func(t *testing.T) {
		rows, err := f.GetRows(SheetWarnings)
		require.NoError(t, err)
		assert.Len(t, rows, len(result.Warnings)+1)
	})
}

func TestWrite(t *testing.T) {
	result, err := statblock.Parse(testutils.KnightStatBlock)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetActions)
	require.NoError(t, err)

	var parry []string
	for _, row := range rows {
		if len(row) > 1 && row[1] == "Parry" {
			parry = row
		}
	}
	require.NotNil(t, parry)
	assert.Equal(t, "reactions", parry[0])
}

func TestBuild_NilResult(t *testing.T) {
	_, err := Build(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
