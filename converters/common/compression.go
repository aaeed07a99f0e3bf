package common

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies how an input file is compressed.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGZ
	CompressionZSTD
	CompressionXZ
)

var compressionExts = map[string]Compression{
	".gz":   CompressionGZ,
	".zst":  CompressionZSTD,
	".zstd": CompressionZSTD,
	".xz":   CompressionXZ,
}

// DetectCompression returns the compression implied by path's extension and
// path with that extension removed, so "jobroles.csv.gz" yields (CompressionGZ, "jobroles.csv").
func DetectCompression(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := compressionExts[ext]; ok {
		return c, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return CompressionNone, path
}

func (c Compression) String() string {
	switch c {
	case CompressionGZ:
		return "gzip"
	case CompressionZSTD:
		return "zstd"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

// Decompress wraps r with a reader for c. The returned close func releases
// decoder resources; it does not close r.
func Decompress(r io.Reader, c Compression) (io.Reader, func() error, error) {
	switch c {
	case CompressionNone:
		return r, func() error { return nil }, nil

	case CompressionGZ:
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case CompressionZSTD:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	case CompressionXZ:
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		// xz.Reader has no Close method
		return xzReader, func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression: %v", c)
	}
}
