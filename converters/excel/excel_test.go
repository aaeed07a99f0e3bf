package excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/darianmavgo/jobrolesql/converters/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, sheets map[string][][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range rows {
			for c, val := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, cell, val))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestExcelConverterReadsFirstSheet(t *testing.T) {
	buf := workbook(t, map[string][][]string{
		"jobroles": {
			{"name", "createdAt", "updatedAt", "alternate_roles", "keywords", "jobTitlesToApplyFor"},
			{"O'Brien", "2024-01-01", "2024-01-01", "", "eng", "SWE"},
		},
	})

	c, err := NewExcelConverter(buf)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "jobroles", c.sheetName)
	assert.Equal(t, []string{"name", "createdAt", "updatedAt", "alternate_roles", "keywords", "jobTitlesToApplyFor"}, c.Headers())

	var rows [][]string
	require.NoError(t, c.ScanRows(context.Background(), func(row []string) error {
		rows = append(rows, row)
		return nil
	}))
	require.Len(t, rows, 1)
	assert.Equal(t, "O'Brien", rows[0][0])
	assert.Equal(t, "SWE", rows[0][5])
}

func TestExcelConverterSelectsSheet(t *testing.T) {
	buf := workbook(t, map[string][][]string{
		"first":  {{"x"}, {"1"}},
		"second": {{"name"}, {"Engineer"}, {"Designer"}},
	})

	c, err := NewExcelConverterWithConfig(buf, &common.ConversionConfig{Sheet: "second"})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, []string{"name"}, c.Headers())
	var names []string
	require.NoError(t, c.ScanRows(context.Background(), func(row []string) error {
		names = append(names, row[0])
		return nil
	}))
	assert.Equal(t, []string{"Engineer", "Designer"}, names)
}

func TestExcelConverterMissingSheet(t *testing.T) {
	buf := workbook(t, map[string][][]string{"only": {{"name"}}})

	_, err := NewExcelConverterWithConfig(buf, &common.ConversionConfig{Sheet: "nope"})
	assert.ErrorContains(t, err, `sheet "nope" not found`)
}
