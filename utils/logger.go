package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Logger wraps Go's standard log with console and optional file output
type Logger struct {
	Info    *log.Logger
	Error   *log.Logger
	Console *log.Logger
	File    *os.File
	Path    string
}

// NewLogger initializes loggers for info and error messages.
// With an empty logDir nothing is written to disk.
func NewLogger(logDir string, console io.Writer) (*Logger, error) {
	l := &Logger{
		Console: log.New(console, "", log.LstdFlags),
		Info:    log.New(io.Discard, "", 0),
		Error:   log.New(io.Discard, "", 0),
	}
	if logDir == "" {
		return l, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %v", err)
	}

	// Create timestamped log file
	timestamp := time.Now().Format("20060102_150405")
	logFile := filepath.Join(logDir, "reconcile_"+timestamp+".log")

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %v", logFile, err)
	}

	l.Info = log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	l.Error = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	l.File = file
	l.Path = logFile
	return l, nil
}

// Infof logs informational messages (console + file)
func (l *Logger) Infof(format string, v ...interface{}) {
	l.Console.Printf("[INFO] "+format, v...)
	l.Info.Output(2, fmt.Sprintf(format, v...))
}

// Errorf logs error messages (console + file)
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.Console.Printf("[ERROR] "+format, v...)
	l.Error.Output(2, fmt.Sprintf(format, v...))
}

// Close closes the log file when done
func (l *Logger) Close() {
	if l.File != nil {
		l.File.Close()
	}
}
