package common

import (
	"context"
	"io"
)

// RowProvider yields the header and data rows of one tabular input.
type RowProvider interface {
	// Headers returns the raw header row.
	Headers() []string
	// ScanRows iterates over the data rows in file order.
	// It calls the yield function for each row.
	// If yield returns an error, iteration stops and that error is returned.
	ScanRows(ctx context.Context, yield func(row []string) error) error
}

// Driver defines the interface that must be implemented by an input format package.
type Driver interface {
	// Open reads the header from source and returns a RowProvider for the rest.
	Open(source io.Reader, config *ConversionConfig) (RowProvider, error)
}
