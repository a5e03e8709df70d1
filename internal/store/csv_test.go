package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	s, err := NewCSV(dir)
	if err != nil {
		t.Fatalf("NewCSV: %v", err)
	}

	header := []string{"name", "country", "group_title", "url"}
	rows := [][]string{
		{"CBC Toronto", "CA", "Canada", "http://example.com/cbc.m3u8"},
		{"Channel, with comma", "US", "United States", "http://example.com/c.m3u8"},
	}
	if err := s.WriteCSV("channels.csv", header, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "channels.csv"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := append([][]string{header}, rows...)
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	s, err := NewCSV(t.TempDir())
	if err != nil {
		t.Fatalf("NewCSV: %v", err)
	}
	if err := s.WriteCSV("empty.csv", []string{"name"}, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir(), "empty.csv"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "name\n" {
		t.Errorf("file = %q, want %q", data, "name\n")
	}
}

func TestWriteCSVReplacesExisting(t *testing.T) {
	s, err := NewCSV(t.TempDir())
	if err != nil {
		t.Fatalf("NewCSV: %v", err)
	}
	if err := s.WriteCSV("out.csv", []string{"name"}, [][]string{{"old"}, {"stale"}}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if err := s.WriteCSV("out.csv", []string{"name"}, [][]string{{"fresh"}}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir(), "out.csv"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "name\nfresh\n" {
		t.Errorf("file = %q, want %q", data, "name\nfresh\n")
	}
}
