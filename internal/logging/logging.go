package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger mirrors every line to stdout and appends it to a timestamped file
// under the log directory. Safe for concurrent use.
type Logger struct {
	mu   sync.Mutex
	out  io.Writer
	file *os.File
	path string
}

// New creates logDir if needed, opens get_channels_<timestamp>.log.txt inside
// it and records the creation line before anything else can go wrong.
func New(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("MkdirAll: %w", err)
	}
	ts := time.Now().Format("20060102_150405")
	path := filepath.Join(logDir, fmt.Sprintf("get_channels_%s.log.txt", ts))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("OpenFile: %w", err)
	}
	l := &Logger{out: os.Stdout, file: f, path: path}
	l.Info("LOG FILE CREATED SUCCESSFULLY")
	return l, nil
}

// Path returns the log file location.
func (l *Logger) Path() string { return l.path }

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) { l.write("INFO", format, args...) }

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) { l.write("ERROR", format, args...) }

// Result logs a task outcome at RESULT level.
func (l *Logger) Result(format string, args ...interface{}) { l.write("RESULT", format, args...) }

func (l *Logger) write(level, format string, args ...interface{}) {
	line := fmt.Sprintf("[%s] [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, line)
	if l.file != nil {
		l.file.WriteString(line)
	}
}

// Close closes the underlying log file. Later writes still reach stdout.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
