package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evilsocket/vek/vector"
)

const (
	// DatFileExt holds the default file extension for data files.
	DatFileExt = ".dat"

	lz4FileExt  = ".lz4"
	zstdFileExt = ".zst"
)

// CompressionFor returns the compression used by fileName according to its
// extension and the name of the vector it holds.
func CompressionFor(fileName string) (Compression, string, bool) {
	base := filepath.Base(fileName)
	for _, c := range []Compression{LZ4, Zstd, None} {
		if ext := c.Ext(); strings.HasSuffix(base, ext) && len(base) > len(ext) {
			return c, strings.TrimSuffix(base, ext), true
		}
	}
	return None, "", false
}

// ListPath enumerates data files in a given folder and returns the
// same folder as an absolute path and a map of vector names to files.
func ListPath(dataPath string) (string, map[string]string, error) {
	dataPath, _ = filepath.Abs(dataPath)
	if info, err := os.Stat(dataPath); err != nil {
		return "", nil, err
	} else if !info.IsDir() {
		return "", nil, fmt.Errorf("%s is not a folder", dataPath)
	}

	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return "", nil, err
	}

	loadable := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		if _, name, ok := CompressionFor(fileName); ok {
			loadable[name] = filepath.Join(dataPath, fileName)
		}
	}

	return dataPath, loadable, nil
}

// Load reads, decompresses and deserializes a data file into v, resizing it.
func Load[T vector.Float](fileName string, v *vector.Vector[T]) error {
	c, _, ok := CompressionFor(fileName)
	if !ok {
		return fmt.Errorf("error while reading %s: not a data file", fileName)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("error while reading %s: %w", fileName, err)
	}

	if data, err = decompress(data, c); err != nil {
		return fmt.Errorf("error while decompressing %s: %w", fileName, err)
	} else if err = v.Read(bytes.NewReader(data), true, false); err != nil {
		return fmt.Errorf("error while deserializing %s: %w", fileName, err)
	}
	return nil
}
