package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLines reads path and returns its non-blank lines, trimmed, in file
// order. On failure the returned slice is nil and the error names the path.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open '%s': %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read '%s': %w", path, err)
	}
	return lines, nil
}

// AppendLine opens path in append mode, writes line and closes the file.
func AppendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, line)
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
