package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_CSV(t *testing.T) {
	path := writeFile(t, "rivers.csv", "Category,Name,Answer\n"+
		"Europe,Danube,Black Sea\n"+
		",,\n"+
		"Africa,Nile,Mediterranean Sea\n"+
		"Asia,,Bay of Bengal\n"+
		"Asia,Ganges,\n")

	res, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, Custom, res.Definition.Type)
	assert.Equal(t, "rivers", res.Definition.Title)
	assert.Equal(t, 4, res.Processed)
	require.Len(t, res.Definition.Items, 2)
	assert.Equal(t, Item{ID: "Danube", DisplayName: "Danube", Answer: "Black Sea", Category: "Europe"}, res.Definition.Items[0])
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, SkippedRow{Row: 5, Reason: "missing name"}, res.Skipped[0])
	assert.Equal(t, SkippedRow{Row: 6, Reason: "missing answer"}, res.Skipped[1])
}

func TestLoadFile_CSVExplicitIDs(t *testing.T) {
	path := writeFile(t, "ids.csv", "id,name,answer\nx1,Same,A\nx2,Same,B\nx1,Other,C\n")

	res, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, res.Definition.Items, 2)
	assert.Equal(t, "x2", res.Definition.Items[1].ID)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 4, res.Skipped[0].Row)
}

func TestLoadFile_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"name", "answer", "category"},
		{"Everest", "Nepal", "Asia"},
		{"Kilimanjaro", "Tanzania", "Africa"},
		{"Mont Blanc", "France", "Europe"},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	path := filepath.Join(t.TempDir(), "peaks.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	res, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, res.Definition.Items, 3)
	assert.Equal(t, "Tanzania", res.Definition.Items[1].Answer)
	assert.Empty(t, res.Skipped)

	r, err := NewRegistry(res.Definition)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asia", "Africa", "Europe"}, r.Categories(Custom))
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "x.txt", "name,answer\na,b\n"))
		assert.Error(t, err)
	})
	t.Run("missing columns", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "x.csv", "name,capital\na,b\n"))
		assert.Error(t, err)
	})
	t.Run("no valid rows", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "x.csv", "name,answer\n,b\n"))
		assert.True(t, errors.Is(err, ErrEmptyCatalog))
	})
	t.Run("empty file", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "x.csv", ""))
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}
