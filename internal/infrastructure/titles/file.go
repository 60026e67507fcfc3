package titles

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"WikiCollector/internal/titlesource"
)

// FileSource reads article titles from a plain-text file, one per line.
type FileSource struct{}

var _ titlesource.Source = (*FileSource)(nil)

// NewFileSource builds the file-backed title source.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Name identifies the strategy inside the registry.
func (f *FileSource) Name() string {
	return "file"
}

// Titles returns every non-blank line of the file, in order.
func (f *FileSource) Titles(_ context.Context, location string) ([]string, error) {
	file, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", location, err)
	}
	defer file.Close()

	var result []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result = append(result, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input %s: %w", location, err)
	}

	return result, nil
}
