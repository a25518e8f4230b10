package utils

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"
)

// CopyFile copies a file from src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %v", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %v", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy from %s to %s: %v", src, dst, err)
	}

	return out.Close()
}

// ScanAnyLines is a bufio.SplitFunc ending lines on "\n", "\r\n" or a lone "\r".
// The terminator is not part of the token.
func ScanAnyLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// "\r" is the last byte read so far; it may start a "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// EachLine calls fn for every line of path, without the line terminator.
// Lines may be of any length.
func EachLine(path string, fn func(line string)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(ScanAnyLines)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %v", path, err)
	}
	return nil
}

// WriteLines overwrites path with one entry per line
func WriteLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %v", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %v", path, err)
	}
	return file.Close()
}

// BackupFile copies src into backupDir with a UTC timestamp suffix.
// A missing src is not an error: there is nothing to preserve yet.
func BackupFile(src, backupDir string) (string, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return "", nil
	}
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup dir: %v", err)
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	dst := filepath.Join(backupDir, filepath.Base(src)+".bak."+ts)
	if err := CopyFile(src, dst); err != nil {
		return "", fmt.Errorf("failed to backup %s -> %s: %v", src, dst, err)
	}
	return dst, nil
}
