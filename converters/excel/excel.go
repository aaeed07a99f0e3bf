package excel

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/darianmavgo/jobrolesql/converters"
	"github.com/darianmavgo/jobrolesql/converters/common"

	"github.com/xuri/excelize/v2"
)

func init() {
	converters.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowProvider, error) {
	return NewExcelConverterWithConfig(source, config)
}

// ExcelConverter reads one worksheet of an .xlsx workbook. Its first row is the header.
type ExcelConverter struct {
	file      *excelize.File
	sheetName string
	headers   []string
}

// Ensure ExcelConverter implements RowProvider
var _ common.RowProvider = (*ExcelConverter)(nil)

// Ensure ExcelConverter implements io.Closer
var _ io.Closer = (*ExcelConverter)(nil)

// NewExcelConverter creates a new ExcelConverter from an io.Reader
func NewExcelConverter(r io.Reader) (*ExcelConverter, error) {
	return NewExcelConverterWithConfig(r, nil)
}

// NewExcelConverterWithConfig opens the workbook and reads the header of the configured
// sheet, or of the first sheet when none is configured.
func NewExcelConverterWithConfig(r io.Reader, config *common.ConversionConfig) (*ExcelConverter, error) {
	if config == nil {
		config = &common.ConversionConfig{}
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel stream: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	sheetName := sheets[0]
	if config.Sheet != "" {
		if !slices.Contains(sheets, config.Sheet) {
			f.Close()
			return nil, fmt.Errorf("sheet %q not found (have %v)", config.Sheet, sheets)
		}
		sheetName = config.Sheet
	}
	if config.Verbose {
		log.Printf("[JOBROLESQL] Reading sheet %q", sheetName)
	}

	rows, err := f.Rows(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to get rows iterator for sheet %s: %w", sheetName, err)
	}
	defer rows.Close()

	if !rows.Next() {
		f.Close()
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}
	headers, err := rows.Columns()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read header row for sheet %s: %w", sheetName, err)
	}

	return &ExcelConverter{
		file:      f,
		sheetName: sheetName,
		headers:   headers,
	}, nil
}

// Headers implements RowProvider
func (e *ExcelConverter) Headers() []string {
	return e.headers
}

// ScanRows implements RowProvider. Rows with no cells at all are skipped.
func (e *ExcelConverter) ScanRows(ctx context.Context, yield func([]string) error) error {
	rows, err := e.file.Rows(e.sheetName)
	if err != nil {
		return fmt.Errorf("failed to get rows iterator for sheet %s: %w", e.sheetName, err)
	}
	defer rows.Close()

	// Skip header
	if rows.Next() {
		if _, err := rows.Columns(); err != nil {
			return err
		}
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		if err := yield(row); err != nil {
			return err
		}
	}

	return rows.Error()
}

// Close closes the underlying Excel file
func (e *ExcelConverter) Close() error {
	if e.file != nil {
		return e.file.Close()
	}
	return nil
}
