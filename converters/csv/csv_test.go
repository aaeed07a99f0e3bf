package csv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/darianmavgo/jobrolesql/converters/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, c *CSVConverter) [][]string {
	t.Helper()
	var rows [][]string
	err := c.ScanRows(context.Background(), func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	require.NoError(t, err)
	return rows
}

func TestCSVConverterReadsHeaderAndRows(t *testing.T) {
	input := "name,createdAt,updatedAt,alternate_roles,keywords,jobTitlesToApplyFor\n" +
		"O'Brien,2024-01-01,2024-01-01,,eng,SWE\n" +
		"\"Data, Analyst\",2024-02-01,2024-02-02,\"BI\nAnalyst\",sql,Analyst\n"

	c, err := NewCSVConverter(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "createdAt", "updatedAt", "alternate_roles", "keywords", "jobTitlesToApplyFor"}, c.Headers())
	assert.Equal(t, ',', c.Config.Delimiter)

	rows := scanAll(t, c)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"O'Brien", "2024-01-01", "2024-01-01", "", "eng", "SWE"}, rows[0])
	assert.Equal(t, "Data, Analyst", rows[1][0])
	assert.Equal(t, "BI\nAnalyst", rows[1][3])
}

func TestCSVConverterDetectsTab(t *testing.T) {
	input := "name\tcreatedAt\nEngineer\t2024-01-01\n"

	c, err := NewCSVConverter(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, '\t', c.Config.Delimiter)
	assert.Equal(t, [][]string{{"Engineer", "2024-01-01"}}, scanAll(t, c))
}

func TestCSVConverterConfiguredDelimiter(t *testing.T) {
	// The header alone would detect a comma.
	input := "name,title;keywords\nA,B;C\n"

	c, err := NewCSVConverterWithConfig(strings.NewReader(input), &common.ConversionConfig{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"name,title", "keywords"}, c.Headers())
	assert.Equal(t, [][]string{{"A,B", "C"}}, scanAll(t, c))
}

func TestCSVConverterShortRows(t *testing.T) {
	input := "a,b,c\n1\n1,2,3,4\n"

	c, err := NewCSVConverter(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}, {"1", "2", "3", "4"}}, scanAll(t, c))
}

func TestCSVConverterEmptyInput(t *testing.T) {
	_, err := NewCSVConverter(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestCSVConverterHeaderOnly(t *testing.T) {
	c, err := NewCSVConverter(strings.NewReader("name,createdAt\n"))
	require.NoError(t, err)
	assert.Empty(t, scanAll(t, c))
}

func TestCSVConverterStopsOnYieldError(t *testing.T) {
	c, err := NewCSVConverter(strings.NewReader("a\n1\n2\n3\n"))
	require.NoError(t, err)

	stop := errors.New("stop")
	seen := 0
	err = c.ScanRows(context.Background(), func(row []string) error {
		seen++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, seen)
}

func TestCSVConverterCancelled(t *testing.T) {
	c, err := NewCSVConverter(strings.NewReader("a\n1\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = c.ScanRows(ctx, func([]string) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
