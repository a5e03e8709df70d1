package logging

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
)

var reLine = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[(INFO|ERROR|RESULT)\] `)

func TestLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("Starting → %s", "English M3U")
	l.Result("%s → %d channels", "2_english_m3u.csv", 42)
	l.Error("No internet: %s", "connection refused")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), lines)
	}
	for i, line := range lines {
		if !reLine.MatchString(line) {
			t.Errorf("line %d = %q, want timestamp and level prefix", i, line)
		}
	}
	if !strings.HasSuffix(lines[0], "[INFO] LOG FILE CREATED SUCCESSFULLY") {
		t.Errorf("first line = %q, want creation line", lines[0])
	}
	if !strings.HasSuffix(lines[1], "Starting → English M3U") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "[RESULT] 2_english_m3u.csv → 42 channels") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.Contains(lines[3], "[ERROR] No internet: connection refused") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestLoggerFilename(t *testing.T) {
	dir := t.TempDir()
	l, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	if filepath.Dir(l.Path()) != dir {
		t.Errorf("log dir = %q, want %q", filepath.Dir(l.Path()), dir)
	}
	base := filepath.Base(l.Path())
	if ok, _ := regexp.MatchString(`^get_channels_\d{8}_\d{6}\.log\.txt$`, base); !ok {
		t.Errorf("log filename = %q", base)
	}
}

func TestLoggerConcurrent(t *testing.T) {
	l, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Info("worker %d", n)
		}(i)
	}
	wg.Wait()
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 11 {
		t.Errorf("got %d lines, want 11", len(lines))
	}
	for i, line := range lines {
		if !reLine.MatchString(line) {
			t.Errorf("line %d = %q, interleaved write", i, line)
		}
	}
}
