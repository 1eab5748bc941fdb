package simpleexcel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadTable_XLSX(t *testing.T) {
	data := workbook(t, [][]interface{}{
		{" Emp_ID ", "Name", "Designation", "Salary"},
		{1, "Alice", "Developer", 1000.5},
		{},
		{2, "Bob"},
	})

	table, err := ReadTable(bytes.NewReader(data), "staff.XLSX")
	require.NoError(t, err)

	assert.Equal(t, []string{"emp_id", "name", "designation", "salary"}, table.Headers)
	require.Equal(t, 2, table.Len())

	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"emp_id": "1", "name": "Alice", "designation": "Developer", "salary": "1000.5"}, row)

	row, err = table.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", row["name"])
	assert.Equal(t, "", row["salary"])
}

func TestReadTable_CSV(t *testing.T) {
	input := "\ufeffemp_id,name,salary\n7, Carol ,1500\n\n8,Dan\n"

	table, err := ReadTable(strings.NewReader(input), "staff.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"emp_id", "name", "salary"}, table.Headers)
	records := table.Records()
	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{"emp_id": "7", "name": "Carol", "salary": "1500"}, records[0])
	assert.Equal(t, map[string]string{"emp_id": "8", "name": "Dan", "salary": ""}, records[1])
}

func TestReadTable_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ReadTable(strings.NewReader("x"), "staff.pdf")
		assert.ErrorIs(t, err, ErrUnsupportedFile)
	})

	t.Run("corrupt workbook", func(t *testing.T) {
		_, err := ReadTable(strings.NewReader("not a zip"), "staff.xlsx")
		assert.Error(t, err)
	})

	t.Run("row out of range", func(t *testing.T) {
		table, err := ReadTable(strings.NewReader("emp_id\n1\n"), "staff.csv")
		require.NoError(t, err)

		_, err = table.Row(1)
		assert.ErrorIs(t, err, ErrRowOutOfRange)
		_, err = table.Row(-1)
		assert.ErrorIs(t, err, ErrRowOutOfRange)
	})

	t.Run("empty csv", func(t *testing.T) {
		table, err := ReadTable(strings.NewReader(""), "staff.csv")
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})
}
