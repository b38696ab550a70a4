package spawndata

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Loader reads placement datasets relative to a base directory. Files ending
// in .zst are zstd-compressed.
type Loader struct {
	basePath string
}

func NewLoader(basePath string) *Loader {
	return &Loader{basePath: basePath}
}

// Path returns the on-disk location of a dataset name.
func (l *Loader) Path(name string) string {
	if filepath.IsAbs(name) || l.basePath == "" {
		return name
	}
	return filepath.Join(l.basePath, name)
}

// Load reads and parses a dataset. A missing or unreadable file is returned
// as an error wrapping the underlying os error; malformed records are not.
func (l *Loader) Load(name string) ([]Record, error) {
	path := l.Path(name)

	data, err := readDataset(path)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset %s: %w", path, err)
	}

	text := string(data)
	records := Parse(text)

	log.Printf("Parsed %d placement records from %s (%s format)", len(records), filepath.Base(path), DetectFormat(text))
	return records, nil
}

func readDataset(path string) ([]byte, error) {
	if !strings.HasSuffix(path, ".zst") {
		return os.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return io.ReadAll(dec)
}

// Compress writes src to dst as a zstd stream readable by Load.
func Compress(dst io.Writer, src io.Reader) error {
	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := io.Copy(enc, src); err != nil {
		_ = enc.Close()
		return fmt.Errorf("could not compress dataset: %w", err)
	}
	return enc.Close()
}
