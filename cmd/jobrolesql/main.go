package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/darianmavgo/jobrolesql/config"
	"github.com/darianmavgo/jobrolesql/converters"
	_ "github.com/darianmavgo/jobrolesql/converters/all"
)

// programDir returns the directory holding the running executable.
func programDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// resolve makes path relative to dir unless it is already absolute.
func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func run(ctx context.Context, dir string) (*converters.Result, *config.Config, error) {
	cfg, err := config.LoadOptional(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, err
	}

	input, err := cfg.ConversionConfig()
	if err != nil {
		return nil, nil, err
	}

	res, err := converters.ConvertFile(ctx,
		resolve(dir, cfg.InputFile),
		resolve(dir, cfg.OutputFile),
		&converters.ImportOptions{
			Table:   cfg.TableName,
			Input:   input,
			Verify:  cfg.Verify,
			Verbose: cfg.Verbose,
		})
	return res, cfg, err
}

func main() {
	if len(os.Args) > 1 {
		fmt.Println("Usage: jobrolesql")
		fmt.Println("  Reads the input file next to the executable and writes the import script beside it.")
		fmt.Printf("  Settings are read from %s in the same folder, if present.\n", config.FileName)
		os.Exit(1)
	}

	dir, err := programDir()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	res, cfg, err := run(ctx, dir)
	if err != nil {
		fmt.Printf("Error converting file: %v\n", err)
		cancel()
		os.Exit(1)
	}

	if res.Rows == 0 {
		fmt.Println("⚠️  Input has no rows; the script contains no INSERT statement.")
	}
	fmt.Printf("✅ SQL script created: %s (%d rows)\n", res.OutputPath, res.Rows)
	if res.Verified {
		fmt.Println("🔎 Script verified against an in-memory SQLite database.")
	}
	fmt.Println("📋 Next steps:")
	fmt.Printf("1. Save your CSV data as '%s' in the same folder as this program\n", cfg.InputFile)
	fmt.Println("2. Run: jobrolesql")
	fmt.Printf("3. Copy the generated SQL from %s\n", cfg.OutputFile)
	fmt.Println("4. Paste into Supabase SQL Editor and run")
}
