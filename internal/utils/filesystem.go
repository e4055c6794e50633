package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindProjectRoot traverses up from start to the first directory containing
// any of the marker files. Returns an empty string if no marker is found
// before the filesystem root.
func FindProjectRoot(start string, markers ...string) (string, error) {
	currentDir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		for _, marker := range markers {
			fileInfo, err := os.Stat(filepath.Join(currentDir, marker))
			// No error means the path exists
			if err == nil {
				if !fileInfo.IsDir() {
					return currentDir, nil
				}
			} else if !os.IsNotExist(err) {
				// Return any error that's not "file not found" (like permission issues)
				return "", fmt.Errorf("error checking for %s at %s: %w", marker, currentDir, err)
			}
		}

		parentDir := filepath.Dir(currentDir)

		// Reached the filesystem root without finding a marker
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// EnsureLine appends line to the file at path unless an identical line
// already exists. The file is created if missing. Reports whether it wrote.
func EnsureLine(path, line string) (bool, error) {
	// #nosec G304 -- path is built from the project root by the caller
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == line {
			return false, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	prefix := ""
	if info.Size() > 0 && !endsWithNewline(f, info.Size()) {
		prefix = "\n"
	}

	if _, err := f.WriteString(prefix + line + "\n"); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

func endsWithNewline(f *os.File, size int64) bool {
	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, size-1); err != nil {
		return false
	}
	return buf[0] == '\n'
}
