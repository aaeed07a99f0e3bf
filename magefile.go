//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/darianmavgo/jobrolesql/config"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the project binaries into the bin/ directory.
func Build() error {
	fmt.Println("Building...")
	return sh.Run("go", "build", "-o", "./bin", "./...")
}

// Install copies the jobrolesql binary to /usr/local/bin.
func Install() error {
	mg.Deps(Build)
	fmt.Println("Installing...")
	return sh.Run("cp", "bin/jobrolesql", "/usr/local/bin/jobrolesql")
}

// Test runs all tests in the project with verbose output.
func Test() error {
	fmt.Println("Running Tests...")
	return sh.Run("go", "test", "-v", "./...")
}

// TestRoundTrip runs the tests that execute generated scripts in SQLite.
func TestRoundTrip() error {
	fmt.Println("Running round-trip tests...")
	return sh.Run("go", "test", "-test.fullpath=true", "-timeout", "60s", "-run", "RoundTrip|Verify", "./converters/...", "./jobrole/...")
}

// Config writes a jobrolesql.hcl with default settings into bin/, next to the binary.
func Config() error {
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	path := filepath.Join("bin", config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	fmt.Println("Writing", path)
	return config.Export(path, config.DefaultConfig())
}

// Clean removes the bin directory.
func Clean() error {
	fmt.Println("Cleaning...")
	return os.RemoveAll("bin")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("Running go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Check runs formatting and linting checks (fmt, vet).
func Check() error {
	mg.Deps(Fmt, Vet)
	return nil
}

// Fmt runs go fmt ./...
func Fmt() error {
	fmt.Println("Running go fmt...")
	return sh.Run("go", "fmt", "./...")
}

// Vet runs go vet ./...
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}
