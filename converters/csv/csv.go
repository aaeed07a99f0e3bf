package csv

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/darianmavgo/jobrolesql/converters"
	"github.com/darianmavgo/jobrolesql/converters/common"
)

func init() {
	converters.Register("csv", &csvDriver{})
}

type csvDriver struct{}

func (d *csvDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowProvider, error) {
	return NewCSVConverterWithConfig(source, config)
}

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("csv: input is empty")

// CSVConverter reads delimited text with a header row.
type CSVConverter struct {
	headers   []string
	csvReader *csv.Reader
	Config    common.ConversionConfig
}

// Ensure CSVConverter implements RowProvider
var _ common.RowProvider = (*CSVConverter)(nil)

// NewCSVConverter creates a new CSVConverter from an io.Reader with default options.
func NewCSVConverter(r io.Reader) (*CSVConverter, error) {
	return NewCSVConverterWithConfig(r, nil)
}

// NewCSVConverterWithConfig creates a new CSVConverter from an io.Reader with optional config.
// The header row is read immediately; ScanRows can only be called once.
func NewCSVConverterWithConfig(r io.Reader, config *common.ConversionConfig) (*CSVConverter, error) {
	if config == nil {
		config = &common.ConversionConfig{}
	}
	cfg := *config

	br := bufio.NewReaderSize(r, 65536)

	// Detect delimiter if not set
	if cfg.Delimiter == 0 {
		peekBytes, _ := br.Peek(2048)
		sample := string(peekBytes)
		if idx := strings.IndexAny(sample, "\r\n"); idx != -1 {
			sample = sample[:idx]
		}
		cfg.Delimiter = common.DetectDelimiter(sample)
		if cfg.Verbose {
			log.Printf("[JOBROLESQL] Detected delimiter %q", cfg.Delimiter)
		}
	}

	reader := csv.NewReader(br)
	reader.Comma = cfg.Delimiter
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	return &CSVConverter{
		headers:   headers,
		csvReader: reader,
		Config:    cfg,
	}, nil
}

// Headers implements RowProvider
func (c *CSVConverter) Headers() []string {
	return c.headers
}

// ScanRows implements RowProvider. Blank lines are skipped by encoding/csv.
func (c *CSVConverter) ScanRows(ctx context.Context, yield func([]string) error) error {
	if c.csvReader == nil {
		return fmt.Errorf("CSV reader is not initialized")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := c.csvReader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read CSV row: %w", err)
		}

		if err := yield(row); err != nil {
			return err
		}
	}
}
