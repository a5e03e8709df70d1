package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSV writes channel tables as UTF-8 comma-separated files under one directory.
type CSV struct {
	dir string
}

// NewCSV creates the output directory if needed and returns a store writing into it.
func NewCSV(dir string) (*CSV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("MkdirAll: %w", err)
	}
	return &CSV{dir: dir}, nil
}

// Dir returns the directory files are written into.
func (s *CSV) Dir() string { return s.dir }

// WriteCSV writes header plus rows to filename inside the store directory,
// replacing any existing file.
func (s *CSV) WriteCSV(filename string, header []string, rows [][]string) error {
	path := filepath.Join(s.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush: %w", err)
	}
	return f.Close()
}
