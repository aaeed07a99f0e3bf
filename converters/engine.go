package converters

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/darianmavgo/jobrolesql/converters/common"
	"github.com/darianmavgo/jobrolesql/jobrole"
)

// ImportOptions defines configuration for the conversion.
type ImportOptions struct {
	Table   string                   // Target table; empty means jobrole.DefaultTable
	Input   *common.ConversionConfig // Reader options passed to the driver
	Verify  bool                     // Dry-run the script in SQLite before writing it
	Verbose bool                     // If true, enables detailed logging.
}

// Result summarizes a completed conversion.
type Result struct {
	Rows       int
	OutputPath string
	Verified   bool
}

// BuildScript reads every row from provider and returns the import script.
// The header must carry all required jobrole fields.
func BuildScript(ctx context.Context, provider common.RowProvider, table string) (*jobrole.Script, error) {
	binder, err := jobrole.NewBinder(provider.Headers())
	if err != nil {
		return nil, err
	}

	script := jobrole.NewScript(table)
	err = provider.ScanRows(ctx, func(row []string) error {
		script.Add(binder.Record(row))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return script, nil
}

// ConvertFile reads inputPath and writes the import script to outputPath.
// Nothing is written unless the whole input was read successfully; the output
// replaces any previous file in a single rename.
func ConvertFile(ctx context.Context, inputPath, outputPath string, opts *ImportOptions) (*Result, error) {
	if opts == nil {
		opts = &ImportOptions{}
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer inputFile.Close()

	compression, formatPath := common.DetectCompression(inputPath)
	driverName, err := DriverName(formatPath)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("[JOBROLESQL] Reading %s (driver %s, compression %s)", inputPath, driverName, compression)
	}

	source, closeSource, err := common.Decompress(inputFile, compression)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	cfg := common.ConversionConfig{}
	if opts.Input != nil {
		cfg = *opts.Input
	}
	cfg.Verbose = cfg.Verbose || opts.Verbose

	provider, err := Open(driverName, source, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize converter: %w", err)
	}

	// Clean up converter resources if it implements io.Closer
	if c, ok := provider.(io.Closer); ok {
		defer c.Close()
	}

	script, err := BuildScript(ctx, provider, opts.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	if opts.Verbose {
		log.Printf("[JOBROLESQL] Read %d rows", script.Len())
	}

	result := &Result{Rows: script.Len(), OutputPath: outputPath}

	if opts.Verify {
		if opts.Verbose {
			log.Printf("[JOBROLESQL] Verifying script against in-memory SQLite...")
		}
		if _, err := VerifyScript(ctx, script); err != nil {
			return nil, err
		}
		result.Verified = true
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := WriteScriptFile(outputPath, script); err != nil {
		return nil, err
	}

	if opts.Verbose {
		log.Printf("[JOBROLESQL] Wrote %s", outputPath)
	}
	return result, nil
}

// WriteScriptFile writes script to a temporary file next to path and renames it into place.
func WriteScriptFile(path string, script *jobrole.Script) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".jobrolesql-*.sql")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = script.WriteTo(tmp); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync output: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
