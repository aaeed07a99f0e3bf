package common

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ConversionConfig stores configuration options for reading an input file.
type ConversionConfig struct {
	Delimiter rune   // Field delimiter for CSV/TSV; 0 means detect from the header line
	Sheet     string // Worksheet to read from .xlsx input; empty means the first sheet
	Verbose   bool   // Enable detailed logging
}

// DetectDelimiter attempts to detect the delimiter from a raw line of text.
// It checks common delimiters and returns the one that produces the most fields.
// Defaults to comma if line is empty or no clear winner.
func DetectDelimiter(line string) rune {
	if line == "" {
		return ','
	}

	delimiters := []rune{',', '\t', ';', '|'}
	maxCount := 0
	winner := ','

	for _, delim := range delimiters {
		count := strings.Count(line, string(delim))
		if count > maxCount {
			maxCount = count
			winner = delim
		}
	}

	return winner
}

// ParseDelimiter converts a configured delimiter into a rune.
// An empty string yields 0 (auto-detect); "\t" and "tab" both mean a tab.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}
