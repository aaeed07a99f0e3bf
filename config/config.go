package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/darianmavgo/jobrolesql/converters/common"
	"github.com/darianmavgo/jobrolesql/jobrole"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// FileName is the config file looked up next to the executable.
const FileName = "jobrolesql.hcl"

// Config represents the application configuration.
type Config struct {
	InputFile  string `hcl:"input_file,optional"`
	OutputFile string `hcl:"output_file,optional"`
	TableName  string `hcl:"table_name,optional"`
	Delimiter  string `hcl:"delimiter,optional"`
	Sheet      string `hcl:"sheet,optional"`
	Verify     bool   `hcl:"verify,optional"`
	Verbose    bool   `hcl:"verbose,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputFile:  "jobroles.csv",
		OutputFile: "IMPORT_ALL_JOBROLES.sql",
		TableName:  jobrole.DefaultTable,
		Verify:     true,
	}
}

// Load reads the configuration from the given HCL file.
// Attributes not set in the file keep their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields DefaultConfig.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Validate checks values that HCL decoding cannot.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input_file must not be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}
	if c.TableName == "" {
		return fmt.Errorf("table_name must not be empty")
	}
	if _, err := common.ParseDelimiter(c.Delimiter); err != nil {
		return err
	}
	return nil
}

// ConversionConfig returns the reader options described by c.
func (c *Config) ConversionConfig() (*common.ConversionConfig, error) {
	delim, err := common.ParseDelimiter(c.Delimiter)
	if err != nil {
		return nil, err
	}
	return &common.ConversionConfig{
		Delimiter: delim,
		Sheet:     c.Sheet,
		Verbose:   c.Verbose,
	}, nil
}

// Export writes the configuration to the specified file in HCL format.
func Export(path string, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("input_file", cty.StringVal(cfg.InputFile))
	root.SetAttributeValue("output_file", cty.StringVal(cfg.OutputFile))
	root.SetAttributeValue("table_name", cty.StringVal(cfg.TableName))
	root.SetAttributeValue("delimiter", cty.StringVal(cfg.Delimiter))
	root.SetAttributeValue("sheet", cty.StringVal(cfg.Sheet))
	root.SetAttributeValue("verify", cty.BoolVal(cfg.Verify))
	root.SetAttributeValue("verbose", cty.BoolVal(cfg.Verbose))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}

	return nil
}
